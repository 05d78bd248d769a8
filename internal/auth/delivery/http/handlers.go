package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/middleware"
	"smart-task-planner/pkg/response"
)

// Login godoc
// @Summary     Sign in with Google
// @Description Redirects to the Google consent screen for calendar access.
// @Tags        Auth
// @Success     302
// @Failure     501 {object} response.Resp "Sign-in not configured"
// @Router      /login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.LoginURL(ctx, middleware.ScopeFrom(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.LoginURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// Callback godoc
// @Summary     OAuth redirect target
// @Description Validates the state, exchanges the code and stores the token in the session.
// @Tags        Auth
// @Param       state query string true  "OAuth state"
// @Param       code  query string false "Authorization code"
// @Param       error query string false "Error returned by Google"
// @Success     302
// @Failure     401 {object} response.Resp "State mismatch or consent denied"
// @Failure     502 {object} response.Resp "Code exchange failed"
// @Router      /oauth2callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Callback(ctx, middleware.ScopeFrom(c), req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, h.homePath)
}

// Logout godoc
// @Summary     Sign out
// @Description Forgets the session's token and conversation history.
// @Tags        Auth
// @Success     302
// @Router      /logout [GET]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, middleware.ScopeFrom(c)); err != nil {
		h.l.Warnf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, h.homePath)
}

// Status godoc
// @Summary     Calendar connection status
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	if _, ok := middleware.SessionFrom(c); !ok {
		response.Error(c, errNoSession, nil)
		return
	}
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context(), middleware.ScopeFrom(c))))
}

var _ Handler = (*handler)(nil)
