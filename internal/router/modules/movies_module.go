package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/movieshelf/movieshelf/internal/container"
	handlers "github.com/movieshelf/movieshelf/internal/interface/http"
	"github.com/movieshelf/movieshelf/internal/interface/middleware"
)

// MoviesModule wires the movie-id endpoints.
// PUT    /api/movies/:id rename (optionally re-enriched)
// DELETE /api/movies/:id delete

type MoviesModule struct {
	Movies *handlers.MovieHandler
}

func NewMoviesModule(movies *handlers.MovieHandler) *MoviesModule {
	return &MoviesModule{Movies: movies}
}

func (m *MoviesModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.PUT("/movies/:id", writeLimiter, m.Movies.Rename)
	rg.DELETE("/movies/:id", writeLimiter, m.Movies.Delete)
}
