package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "smart-task-planner/internal/auth/delivery/http"
	plannerHTTP "smart-task-planner/internal/planner/delivery/http"
)

// setupPlannerDomain registers /, /api/v1/tasks, /api/v1/events and /api/v1/history.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC, srv.historyContext)

	plannerHTTP.RegisterRoutes(api, h, srv.mw)
	plannerHTTP.RegisterHomeRoute(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}

// setupAuthDomain registers /login, /oauth2callback, /logout and /api/v1/auth/status.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := authHTTP.New(srv.l, srv.authUC, "/")

	authHTTP.RegisterRoutes(srv.gin, api, h, srv.mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
