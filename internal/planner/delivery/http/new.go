package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	Parse(c *gin.Context)
	Upcoming(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	Home(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
	// historyContext is how many past turns are handed to the use case.
	historyContext int
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase, historyContext int) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		historyContext: historyContext,
	}
}
