package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/auth"
	"smart-task-planner/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
	// homePath is where the browser lands after signing in or out.
	homePath string
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, homePath string) *handler {
	if homePath == "" {
		homePath = "/"
	}
	return &handler{
		l:        l,
		uc:       uc,
		homePath: homePath,
	}
}
