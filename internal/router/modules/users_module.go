package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/movieshelf/movieshelf/internal/container"
	handlers "github.com/movieshelf/movieshelf/internal/interface/http"
	"github.com/movieshelf/movieshelf/internal/interface/middleware"
)

// UsersModule wires the user endpoints and the per-user movie collection.
// GET  /api/users            list users
// POST /api/users            create user
// GET  /api/users/:id        fetch one user
// GET  /api/users/:id/movies list the user's movies
// POST /api/users/:id/movies add a movie (optionally enriched)

type UsersModule struct {
	Users  *handlers.UserHandler
	Movies *handlers.MovieHandler
}

func NewUsersModule(users *handlers.UserHandler, movies *handlers.MovieHandler) *UsersModule {
	return &UsersModule{Users: users, Movies: movies}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	readLimiter := middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/users", readLimiter, m.Users.List)
	rg.POST("/users", writeLimiter, m.Users.Create)
	rg.GET("/users/:id", readLimiter, m.Users.Get)
	rg.GET("/users/:id/movies", readLimiter, m.Movies.ListForUser)
	rg.POST("/users/:id/movies", writeLimiter, m.Movies.Add)
}
