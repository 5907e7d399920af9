package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieshelf/movieshelf/internal/domain/entity"
	repo "github.com/movieshelf/movieshelf/internal/domain/repository"
	"github.com/movieshelf/movieshelf/pkg/omdb"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	seq   int
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.seq++
	u.ID = "u-" + strconv.Itoa(f.seq)
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) List() ([]entity.User, error) {
	out := []entity.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

// fakeMovieRepo is an in-memory MovieRepository.
type fakeMovieRepo struct {
	seq    int
	movies map[string]entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[string]entity.Movie{}}
}

func (f *fakeMovieRepo) Create(m *entity.Movie) error {
	f.seq++
	m.ID = "m-" + strconv.Itoa(f.seq)
	f.movies[m.ID] = *m
	return nil
}

func (f *fakeMovieRepo) ListByUser(userID string) ([]entity.Movie, error) {
	out := []entity.Movie{}
	for _, m := range f.movies {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) GetByID(id string) (*entity.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMovieRepo) Update(m *entity.Movie) error {
	if _, ok := f.movies[m.ID]; !ok {
		return repo.ErrNotFound
	}
	f.movies[m.ID] = *m
	return nil
}

func (f *fakeMovieRepo) Delete(id string) error {
	if _, ok := f.movies[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

// stubLookup returns a scripted result and records calls.
type stubLookup struct {
	configured bool
	result     omdb.Result
	calls      []string
}

func (s *stubLookup) Configured() bool { return s.configured }

func (s *stubLookup) Lookup(ctx context.Context, title string, year int) omdb.Result {
	s.calls = append(s.calls, title)
	return s.result
}

func newTestService(lookup MovieLookup) (*Service, *fakeUserRepo, *fakeMovieRepo) {
	users := newFakeUserRepo()
	movies := newFakeMovieRepo()
	return NewService(users, movies, lookup, nil), users, movies
}

func TestCreateUserAndList(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "  Ana  ")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana", u.Name)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, u.ID, list[0].ID)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestCreateUserEmptyName(t *testing.T) {
	svc, _, _ := newTestService(nil)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateUser(context.Background(), name)
		assert.ErrorIs(t, err, ErrNameRequired, "name %q", name)
	}

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.GetUser(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddMovieWithoutEnrichment(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	m, outcome, err := svc.AddMovie(ctx, u.ID, "Inception", false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, u.ID, m.UserID)
	assert.Equal(t, "Inception", m.Title)
	assert.Empty(t, m.Director)
	assert.Zero(t, m.Year)
	assert.Empty(t, m.PosterURL)

	list, err := svc.ListUserMovies(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestAddMovieEnrichmentFound(t *testing.T) {
	lookup := &stubLookup{configured: true, result: omdb.Result{
		Status:    omdb.StatusFound,
		Title:     "The Matrix",
		Year:      1999,
		Director:  "X",
		PosterURL: "http://posters.example/matrix.jpg",
	}}
	svc, _, _ := newTestService(lookup)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	m, outcome, err := svc.AddMovie(ctx, u.ID, "matrix", true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, []string{"matrix"}, lookup.calls)

	// canonical title plus the full enrichment set, never a subset
	assert.Equal(t, "The Matrix", m.Title)
	assert.Equal(t, "X", m.Director)
	assert.Equal(t, 1999, m.Year)
	assert.Equal(t, "http://posters.example/matrix.jpg", m.PosterURL)
}

func TestAddMovieEnrichmentNoMatchStillWrites(t *testing.T) {
	for _, tc := range []struct {
		status  omdb.Status
		outcome EnrichmentOutcome
	}{
		{omdb.StatusNotFound, OutcomeNoMatch},
		{omdb.StatusUnavailable, OutcomeUnavailable},
	} {
		lookup := &stubLookup{configured: true, result: omdb.Result{Status: tc.status}}
		svc, _, _ := newTestService(lookup)
		ctx := context.Background()

		u, err := svc.CreateUser(ctx, "Ana")
		require.NoError(t, err)

		m, outcome, err := svc.AddMovie(ctx, u.ID, "Obscure Film", true)
		require.NoError(t, err, "status %s", tc.status)
		assert.Equal(t, tc.outcome, outcome)
		assert.Equal(t, "Obscure Film", m.Title)
		assert.Empty(t, m.Director)
		assert.Zero(t, m.Year)
		assert.Empty(t, m.PosterURL)
	}
}

func TestAddMovieUnconfiguredLookupSkips(t *testing.T) {
	lookup := &stubLookup{configured: false}
	svc, _, _ := newTestService(lookup)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	_, outcome, err := svc.AddMovie(ctx, u.ID, "Inception", true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Empty(t, lookup.calls, "unconfigured client must not be called")
}

func TestAddMovieUnknownUser(t *testing.T) {
	svc, _, movies := newTestService(nil)

	_, _, err := svc.AddMovie(context.Background(), "nope", "Inception", false)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, movies.movies)
}

func TestAddMovieEmptyTitle(t *testing.T) {
	svc, _, movies := newTestService(nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	_, _, err = svc.AddMovie(ctx, u.ID, "   ", false)
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, movies.movies, "no row may be written for invalid input")
}

func TestRenameMovieUsesNewTitleForLookup(t *testing.T) {
	lookup := &stubLookup{configured: true, result: omdb.Result{
		Status:    omdb.StatusFound,
		Title:     "Heat",
		Year:      1995,
		Director:  "Michael Mann",
		PosterURL: "http://posters.example/heat.jpg",
	}}
	svc, _, _ := newTestService(lookup)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	m, _, err := svc.AddMovie(ctx, u.ID, "Het", false)
	require.NoError(t, err)

	renamed, outcome, err := svc.RenameMovie(ctx, m.ID, "heat", true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, []string{"heat"}, lookup.calls, "lookup must use the new title")
	assert.Equal(t, "Heat", renamed.Title)
	assert.Equal(t, "Michael Mann", renamed.Director)
	assert.Equal(t, 1995, renamed.Year)
}

func TestRenameMovieRetainsEnrichmentWhenLookupFails(t *testing.T) {
	lookup := &stubLookup{configured: true, result: omdb.Result{
		Status:    omdb.StatusFound,
		Title:     "Inception",
		Year:      2010,
		Director:  "Christopher Nolan",
		PosterURL: "http://posters.example/inception.jpg",
	}}
	svc, _, _ := newTestService(lookup)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	m, _, err := svc.AddMovie(ctx, u.ID, "Inception", true)
	require.NoError(t, err)
	require.Equal(t, "Christopher Nolan", m.Director)

	lookup.result = omdb.Result{Status: omdb.StatusUnavailable}
	renamed, outcome, err := svc.RenameMovie(ctx, m.ID, "Inception (2010)", true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnavailable, outcome)

	// only the title changes; earlier enrichment survives
	assert.Equal(t, "Inception (2010)", renamed.Title)
	assert.Equal(t, "Christopher Nolan", renamed.Director)
	assert.Equal(t, 2010, renamed.Year)
	assert.Equal(t, "http://posters.example/inception.jpg", renamed.PosterURL)
}

func TestRenameMovieNotFound(t *testing.T) {
	svc, _, movies := newTestService(nil)

	_, _, err := svc.RenameMovie(context.Background(), "nope", "Whatever", false)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Empty(t, movies.movies)
}

func TestRenameMovieEmptyTitle(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	m, _, err := svc.AddMovie(ctx, u.ID, "Inception", false)
	require.NoError(t, err)

	_, _, err = svc.RenameMovie(ctx, m.ID, "", false)
	assert.ErrorIs(t, err, ErrTitleRequired)

	list, err := svc.ListUserMovies(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", list[0].Title)
}

func TestDeleteMovieTwice(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	m, _, err := svc.AddMovie(ctx, u.ID, "Inception", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(ctx, m.ID))
	assert.ErrorIs(t, svc.DeleteMovie(ctx, m.ID), ErrMovieNotFound)
}

func TestListUserMoviesUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.ListUserMovies(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// Full lifecycle: create a user, add a plain movie, list, delete, list again.
func TestUserMovieLifecycle(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	ana, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	m, outcome, err := svc.AddMovie(ctx, ana.ID, "Inception", false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, ana.ID, m.UserID)
	assert.Equal(t, "Inception", m.Title)
	assert.Empty(t, m.Director)
	assert.Zero(t, m.Year)
	assert.Empty(t, m.PosterURL)

	list, err := svc.ListUserMovies(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)

	require.NoError(t, svc.DeleteMovie(ctx, m.ID))

	list, err = svc.ListUserMovies(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
