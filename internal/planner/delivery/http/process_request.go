package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/middleware"
	"smart-task-planner/internal/session"
)

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, *session.Session, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, errInvalidBody
	}
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return req, nil, errNoSession
	}
	return req, sess, req.validate()
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, *session.Session, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, errInvalidBody
	}
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return req, nil, errNoSession
	}
	return req, sess, req.validate()
}

func (h *handler) processUpcomingReq(c *gin.Context) (upcomingReq, error) {
	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, req.validate()
}
