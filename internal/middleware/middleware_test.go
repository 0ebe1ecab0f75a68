package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dream-diary-api/config"
	"dream-diary-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Metrics())
	router.POST("/users/:user_id/generate", limiter.PerUser("user_id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func post(router *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w.Code
}

func TestRateLimiter_PerUser(t *testing.T) {
	// 幾乎不補充 token，只看 burst
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{GenerationsPerSecond: 0.001, GenerationBurst: 2})
	router := setupLimitedRouter(limiter)

	assert.Equal(t, http.StatusOK, post(router, "/users/u1/generate"))
	assert.Equal(t, http.StatusOK, post(router, "/users/u1/generate"))
	assert.Equal(t, http.StatusTooManyRequests, post(router, "/users/u1/generate"))

	// 其他使用者不受影響
	assert.Equal(t, http.StatusOK, post(router, "/users/u2/generate"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{GenerationsPerSecond: 1, GenerationBurst: 1})
	router := setupLimitedRouter(limiter)
	assert.Equal(t, http.StatusOK, post(router, "/users/u1/generate"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Cleanup(ctx, 10*time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancel")
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Metrics())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
