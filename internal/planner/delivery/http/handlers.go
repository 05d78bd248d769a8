package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/middleware"
	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/internal/session"
	"smart-task-planner/pkg/response"
)

// Schedule godoc
// @Summary     Schedule a task
// @Description Parses a free-text task, picks a start time when none is given, checks for conflicts and duplicates, and creates a Google Calendar event.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Task text"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Calendar not connected"
// @Failure     409  {object} response.Resp "Conflict, duplicate or no free slot"
// @Failure     422  {object} response.Resp "Task could not be understood"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Calendar error"
// @Failure     503  {object} response.Resp "Remote parser unavailable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, sess, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, middleware.ScopeFrom(c), req.toInput(sess.History.Recent(h.historyContext)))
	if err != nil {
		httpErr := h.mapError(err)
		h.l.Warnf(ctx, "uc.Schedule: %v", err)
		h.remember(sess, req.Text, httpErr.Message)
		response.Error(c, httpErr, nil)
		return
	}

	h.remember(sess, req.Text, output.Message)
	response.OK(c, h.newScheduleResp(output))
}

// Parse godoc
// @Summary     Parse a task without scheduling it
// @Description Runs the local extractor and, when needed, the remote parser. The calendar is not touched.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, sess, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, middleware.ScopeFrom(c), req.toInput(sess.History.Recent(h.historyContext)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Upcoming godoc
// @Summary     List upcoming events
// @Description Returns the next events on the connected calendar.
// @Tags        Planner
// @Produce     json
// @Param       limit query int false "Number of events (default 5, max 50)"
// @Success     200 {object} upcomingResp
// @Failure     401 {object} response.Resp "Calendar not connected"
// @Failure     502 {object} response.Resp "Calendar error"
// @Router      /api/v1/events/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Upcoming(ctx, middleware.ScopeFrom(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the session's recent task submissions and replies, oldest first.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/history [GET]
func (h *handler) History(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, errNoSession, nil)
		return
	}
	response.OK(c, h.newHistoryResp(sess.History.All()))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Tags        Planner
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, errNoSession, nil)
		return
	}
	sess.History.Clear()
	response.OK(c, nil)
}

// Home godoc
// @Summary     Landing data
// @Description Returns the next upcoming events, or where to sign in when no calendar is connected.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} homeResp
// @Router      / [GET]
func (h *handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	output, err := h.uc.Upcoming(ctx, sc, planner.UpcomingInput{})
	switch {
	case err == nil:
		response.OK(c, h.newHomeResp(sc, output, true, ""))
	case errors.Is(err, planner.ErrNotAuthenticated):
		response.OK(c, h.newHomeResp(sc, planner.UpcomingOutput{}, false, ""))
	default:
		h.l.Warnf(ctx, "uc.Upcoming: %v", err)
		response.OK(c, h.newHomeResp(sc, planner.UpcomingOutput{}, false, h.mapError(err).Message))
	}
}

func (h *handler) remember(sess *session.Session, input, reply string) {
	sess.History.Append(model.ConversationTurn{
		UserInput:         input,
		AssistantResponse: reply,
		Timestamp:         time.Now(),
	})
}

var _ Handler = (*handler)(nil)
