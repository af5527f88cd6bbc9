package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEventsByCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	ViolateEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Categories
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:category/events", h.ListEventsByCategory)

		// Moderation
		api.PUT("/events/:id/violate", h.ViolateEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
