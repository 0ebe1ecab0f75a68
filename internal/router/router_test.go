package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dream-diary-api/internal/metrics"
	"dream-diary-api/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingOnly struct{}

func (pingOnly) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/hello", func(c *gin.Context) { c.String(http.StatusOK, "hi") })
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.InitPrometheus()
	r := router.New(pingOnly{})

	t.Run("Ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("Registered handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hello", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})
}
