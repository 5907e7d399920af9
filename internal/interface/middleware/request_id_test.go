package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDInjectsAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxID string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		ctxID = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if ctxID == "" {
		t.Fatal("expected request_id in context")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Fatalf("request_id is not a uuid: %v", err)
	}
	if got := w.Header().Get("X-Request-ID"); got != ctxID {
		t.Fatalf("header mismatch: context %q, header %q", ctxID, got)
	}
}

func TestRealIPPrefersForwardedHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotIP string
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) {
		gotIP = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if gotIP != "203.0.113.7" {
		t.Fatalf("expected left-most forwarded IP, got %q", gotIP)
	}
}

func TestRateLimitWithoutRedisIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", RateLimit(nil, 1, 0, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}
