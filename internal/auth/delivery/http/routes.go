package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/middleware"
)

const (
	loginPath    = "/login"
	callbackPath = "/oauth2callback"
	logoutPath   = "/logout"
)

// RegisterRoutes mounts the browser flow on root and the status endpoint on api.
func RegisterRoutes(root gin.IRoutes, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	root.GET(loginPath, mw.Session(), mw.RateLimit(), h.Login)
	root.GET(callbackPath, mw.Session(), mw.RateLimit(), h.Callback)
	root.GET(logoutPath, mw.Session(), h.Logout)

	api.GET("/auth/status", mw.Session(), h.Status)
}
