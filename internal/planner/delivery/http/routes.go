package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route runs inside a session and is rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Session(), mw.RateLimit())
	{
		tasks.POST("", h.Schedule)
		tasks.POST("/parse", h.Parse)
	}

	events := rg.Group("/events", mw.Session(), mw.RateLimit())
	{
		events.GET("/upcoming", h.Upcoming)
	}

	history := rg.Group("/history", mw.Session())
	{
		history.GET("", h.History)
		history.DELETE("", h.ClearHistory)
	}
}

// RegisterHomeRoute mounts the landing endpoint on root.
func RegisterHomeRoute(root gin.IRoutes, h *handler, mw middleware.Middleware) {
	root.GET("/", mw.Session(), h.Home)
}
