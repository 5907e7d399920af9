package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/movieshelf/movieshelf/internal/container"
	"github.com/movieshelf/movieshelf/internal/interface/middleware"
	"github.com/movieshelf/movieshelf/pkg/response"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		response.Success[any](c, http.StatusOK, map[string]any{"status": "ok"}, "healthy", nil)
	})

	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		// Public metrics endpoint (expvar), rate-limited per IP
		rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
		rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	}
}
