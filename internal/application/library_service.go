package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/movieshelf/movieshelf/internal/domain/entity"
	repo "github.com/movieshelf/movieshelf/internal/domain/repository"
	"github.com/movieshelf/movieshelf/pkg/omdb"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrTitleRequired = errors.New("title is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
)

// MovieLookup is the outbound metadata capability. *omdb.Client satisfies
// it; tests substitute a stub.
type MovieLookup interface {
	Configured() bool
	Lookup(ctx context.Context, title string, year int) omdb.Result
}

// Service orchestrates the repositories and the metadata lookup for each
// use case. Every method is one atomic transition: exactly one repository
// write per invocation, and a lookup failure never blocks that write.
type Service struct {
	Users  repo.UserRepository
	Movies repo.MovieRepository
	Lookup MovieLookup
	Logger *logrus.Logger
}

func NewService(users repo.UserRepository, movies repo.MovieRepository, lookup MovieLookup, logger *logrus.Logger) *Service {
	return &Service{
		Users:  users,
		Movies: movies,
		Lookup: lookup,
		Logger: logger,
	}
}

// CreateUser persists a new user with the given display name.
func (s *Service) CreateUser(ctx context.Context, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	u := &entity.User{Name: name}
	if err := s.Users.Create(u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user created")
	}
	return u, nil
}

// ListUsers returns all users in display order.
func (s *Service) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user by id.
func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUserMovies returns the movies owned by the given user.
func (s *Service) ListUserMovies(ctx context.Context, userID string) ([]entity.Movie, error) {
	if _, err := s.Users.GetByID(userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	movies, err := s.Movies.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// AddMovie creates a movie on a user's shelf, enriched from the metadata
// lookup when requested and available.
func (s *Service) AddMovie(ctx context.Context, userID, title string, wantEnrichment bool) (*entity.Movie, EnrichmentOutcome, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, OutcomeSkipped, ErrTitleRequired
	}

	if _, err := s.Users.GetByID(userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, OutcomeSkipped, ErrUserNotFound
		}
		return nil, OutcomeSkipped, fmt.Errorf("get user: %w", err)
	}

	res, outcome := s.lookup(ctx, title, wantEnrichment)

	m := &entity.Movie{UserID: userID, Title: title}
	if outcome == OutcomeApplied {
		if canonical := resolveTitle(title, res); canonical != "" {
			m.Title = canonical
		}
		m.Apply(enrichmentFields(res))
	}

	if err := s.Movies.Create(m); err != nil {
		return nil, outcome, fmt.Errorf("create movie: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"movie_id":   m.ID,
			"user_id":    userID,
			"enrichment": string(outcome),
		}).Info("movie added")
	}
	return m, outcome, nil
}

// RenameMovie changes a movie's title and, when requested, re-enriches it
// from the new title. If the lookup does not produce a match the previous
// enrichment fields are retained and only the title changes.
func (s *Service) RenameMovie(ctx context.Context, movieID, newTitle string, wantEnrichment bool) (*entity.Movie, EnrichmentOutcome, error) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return nil, OutcomeSkipped, ErrTitleRequired
	}

	m, err := s.Movies.GetByID(movieID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, OutcomeSkipped, ErrMovieNotFound
		}
		return nil, OutcomeSkipped, fmt.Errorf("get movie: %w", err)
	}

	res, outcome := s.lookup(ctx, newTitle, wantEnrichment)

	m.Title = newTitle
	if outcome == OutcomeApplied {
		if canonical := resolveTitle(newTitle, res); canonical != "" {
			m.Title = canonical
		}
		m.Apply(enrichmentFields(res))
	}

	if err := s.Movies.Update(m); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, outcome, ErrMovieNotFound
		}
		return nil, outcome, fmt.Errorf("update movie: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"movie_id":   m.ID,
			"enrichment": string(outcome),
		}).Info("movie renamed")
	}
	return m, outcome, nil
}

// DeleteMovie removes a movie permanently. Deleting an already deleted id
// reports ErrMovieNotFound.
func (s *Service) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.Movies.Delete(movieID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("movie_id", movieID).Info("movie deleted")
	}
	return nil
}

// lookup performs the optional outbound call for a write operation.
func (s *Service) lookup(ctx context.Context, title string, wantEnrichment bool) (omdb.Result, EnrichmentOutcome) {
	if !wantEnrichment || s.Lookup == nil || !s.Lookup.Configured() {
		return omdb.Result{Status: omdb.StatusUnavailable}, OutcomeSkipped
	}
	res := s.Lookup.Lookup(ctx, title, 0)
	return res, outcomeFor(res)
}
