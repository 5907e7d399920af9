package repository

import (
	"errors"

	"github.com/movieshelf/movieshelf/internal/domain/entity"
)

// ErrNotFound is returned by any repository when the referenced row does
// not exist. Implementations must return it (or wrap it) for missing rows
// so callers can tell "gone" apart from a storage fault.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	List() ([]entity.User, error)
	GetByID(id string) (*entity.User, error)
}
