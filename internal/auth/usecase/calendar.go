package usecase

import (
	"context"
	"fmt"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
)

// CalendarFor returns the session's own calendar when it signed in, the
// shared calendar otherwise.
func (uc *implUseCase) CalendarFor(ctx context.Context, sc model.Scope) (planner.Calendar, error) {
	if sess, ok := uc.sessions.Get(sc.SessionID); ok && uc.oauth != nil {
		if tok := sess.Token(); tok != nil {
			// Refresh here so the new token is kept in the session.
			fresh, err := uc.oauth.TokenSource(ctx, tok).Token()
			if err != nil {
				uc.l.Warnf(ctx, "auth.usecase.CalendarFor: token refresh failed for session %s: %v", sess.ID, err)
				sess.SetToken(nil)
				return nil, fmt.Errorf("%w: sign in again", planner.ErrNotAuthenticated)
			}
			if fresh.AccessToken != tok.AccessToken {
				sess.SetToken(fresh)
			}

			client, err := gcalendar.NewClientFromToken(ctx, uc.oauth, fresh)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", planner.ErrCalendarUnavailable, err)
			}
			return client, nil
		}
	}

	if uc.shared != nil {
		return uc.shared, nil
	}
	return nil, planner.ErrNotAuthenticated
}
