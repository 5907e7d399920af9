package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/movieshelf/movieshelf/internal/application"
	"github.com/movieshelf/movieshelf/pkg/response"
	"github.com/movieshelf/movieshelf/pkg/validation"
)

type MovieHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.Service, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

type movieRequest struct {
	Title  string `json:"title" binding:"required"`
	Enrich bool   `json:"enrich"`
}

// enrichmentMeta reports what the lookup did alongside the written movie.
func enrichmentMeta(outcome application.EnrichmentOutcome) map[string]any {
	return map[string]any{"enrichment": string(outcome)}
}

// ListForUser handles GET /users/:id/movies.
func (h *MovieHandler) ListForUser(c *gin.Context) {
	movies, err := h.Svc.ListUserMovies(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("list movies failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusOK, movies, "movies", nil)
}

// Add handles POST /users/:id/movies.
func (h *MovieHandler) Add(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, outcome, err := h.Svc.AddMovie(c.Request.Context(), c.Param("id"), req.Title, req.Enrich)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTitleRequired):
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"title": "is required"})
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		default:
			h.Logger.WithError(err).Error("add movie failed")
			response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, m, "movie added", enrichmentMeta(outcome))
}

// Rename handles PUT /movies/:id.
func (h *MovieHandler) Rename(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, outcome, err := h.Svc.RenameMovie(c.Request.Context(), c.Param("id"), req.Title, req.Enrich)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTitleRequired):
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"title": "is required"})
		case errors.Is(err, application.ErrMovieNotFound):
			response.Error[any](c, http.StatusNotFound, "movie not found", nil)
		default:
			h.Logger.WithError(err).Error("rename movie failed")
			response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, m, "movie updated", enrichmentMeta(outcome))
}

// Delete handles DELETE /movies/:id.
func (h *MovieHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteMovie(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrMovieNotFound) {
			response.Error[any](c, http.StatusNotFound, "movie not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete movie failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "movie deleted", nil)
}
