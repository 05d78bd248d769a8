package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"smart-task-planner/internal/auth"
	"smart-task-planner/internal/model"
)

// LoginURL returns the Google consent URL. Offline access is requested so
// the session can refresh its token.
func (uc *implUseCase) LoginURL(ctx context.Context, sc model.Scope) (string, error) {
	if uc.oauth == nil {
		return "", auth.ErrOAuthNotConfigured
	}
	sess, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return "", auth.ErrSessionNotFound
	}

	state := uuid.NewString()
	sess.SetOAuthState(state)

	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")), nil
}

func (uc *implUseCase) Callback(ctx context.Context, sc model.Scope, input auth.CallbackInput) error {
	if uc.oauth == nil {
		return auth.ErrOAuthNotConfigured
	}
	sess, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return auth.ErrSessionNotFound
	}
	if !sess.ConsumeOAuthState(input.State) {
		return auth.ErrInvalidState
	}
	if input.Error != "" {
		return fmt.Errorf("%w: %s", auth.ErrConsentDenied, input.Error)
	}
	if input.Code == "" {
		return auth.ErrMissingCode
	}

	tok, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Callback: exchange failed: %v", err)
		return fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	sess.SetToken(tok)
	uc.l.Infof(ctx, "auth.usecase.Callback: session %s connected its calendar", sess.ID)
	return nil
}

func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return auth.ErrSessionNotFound
	}
	uc.sessions.Delete(sc.SessionID)
	uc.l.Infof(ctx, "auth.usecase.Logout: session %s cleared", sc.SessionID)
	return nil
}

func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) auth.StatusOutput {
	out := auth.StatusOutput{Mode: auth.ModeNone, LoginEnabled: uc.oauth != nil}

	if sess, ok := uc.sessions.Get(sc.SessionID); ok && sess.Token() != nil {
		out.Authenticated = true
		out.Mode = auth.ModeSession
		return out
	}
	if uc.shared != nil {
		out.Mode = auth.ModeShared
	}
	return out
}
