package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/movieshelf/movieshelf/internal/domain/entity"
	"github.com/movieshelf/movieshelf/internal/domain/repository"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

func (r *MovieRepository) Create(m *entity.Movie) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO movies (user_id, title, director, year, poster_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, m.UserID, m.Title, m.Director, m.Year, m.PosterURL)

	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MovieRepository) ListByUser(userID string) ([]entity.Movie, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, director, year, poster_url, created_at, updated_at
		FROM movies
		WHERE user_id = $1
		ORDER BY title ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []entity.Movie{}
	for rows.Next() {
		var m entity.Movie
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Director, &m.Year,
			&m.PosterURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	return movies, rows.Err()
}

func (r *MovieRepository) GetByID(id string) (*entity.Movie, error) {
	ctx := context.Background()
	m := &entity.Movie{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, director, year, poster_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`, id)

	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Director, &m.Year,
		&m.PosterURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *MovieRepository) Update(m *entity.Movie) error {
	ctx := context.Background()
	m.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE movies
		SET title = $1, director = $2, year = $3, poster_url = $4, updated_at = $5
		WHERE id = $6
	`, m.Title, m.Director, m.Year, m.PosterURL, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *MovieRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		DELETE FROM movies
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
