package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"todoweb/internal/middleware"
	"todoweb/internal/store"
)

// NewRouter builds the gin engine with all middleware and routes
// registered.
func NewRouter(s *store.TaskStore, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	router.SetHTMLTemplate(pageTemplate)

	h := NewHandler(s, log)
	router.GET("/", h.Index)
	router.POST("/add", h.AddTask)
	router.POST("/delete/:id", h.DeleteTask)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
