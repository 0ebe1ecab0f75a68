package router

import (
	"net/http"

	"dream-diary-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteRegistrar 各 handler 自行註冊路由
type RouteRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

func New(handlers ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return r
}
