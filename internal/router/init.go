package router

import (
	"github.com/movieshelf/movieshelf/internal/application"
	"github.com/movieshelf/movieshelf/internal/container"
	repo "github.com/movieshelf/movieshelf/internal/domain/repository"
	pginfra "github.com/movieshelf/movieshelf/internal/infrastructure/postgres"
	handlers "github.com/movieshelf/movieshelf/internal/interface/http"
	"github.com/movieshelf/movieshelf/internal/router/modules"
)

type LibraryDeps struct {
	Users        repo.UserRepository
	Movies       repo.MovieRepository
	Service      *application.Service
	UserHandler  *handlers.UserHandler
	MovieHandler *handlers.MovieHandler
}

func buildLibraryDeps() LibraryDeps {
	users := pginfra.NewUserRepository(container.GetPGPool())
	movies := pginfra.NewMovieRepository(container.GetPGPool())

	service := application.NewService(
		users,
		movies,
		container.GetOMDb(),
		container.GetLogger(),
	)

	userHandler := handlers.NewUserHandler(service, container.GetLogger())
	movieHandler := handlers.NewMovieHandler(service, container.GetLogger())

	return LibraryDeps{
		Users:        users,
		Movies:       movies,
		Service:      service,
		UserHandler:  userHandler,
		MovieHandler: movieHandler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildLibraryDeps()
	r.Add(modules.NewUsersModule(deps.UserHandler, deps.MovieHandler))
	r.Add(modules.NewMoviesModule(deps.MovieHandler))
	r.Add(modules.NewDebugModule())
}
