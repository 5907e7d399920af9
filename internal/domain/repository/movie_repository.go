package repository

import "github.com/movieshelf/movieshelf/internal/domain/entity"

// MovieRepository defines the interface for movie-related database operations.
// Update and Delete report ErrNotFound when the row vanished between the
// caller's read and the write, so a concurrent delete never silently wins.
type MovieRepository interface {
	Create(m *entity.Movie) error
	ListByUser(userID string) ([]entity.Movie, error)
	GetByID(id string) (*entity.Movie, error)
	Update(m *entity.Movie) error
	Delete(id string) error
}
