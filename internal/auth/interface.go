package auth

import (
	"context"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
)

// UseCase runs the Google OAuth flow and hands the planner a calendar for
// each session.
type UseCase interface {
	// LoginURL starts the consent flow and remembers its state in the session.
	LoginURL(ctx context.Context, sc model.Scope) (string, error)

	// Callback validates the state and stores the exchanged token in the session.
	Callback(ctx context.Context, sc model.Scope, input CallbackInput) error

	// Logout drops the session together with its token and history.
	Logout(ctx context.Context, sc model.Scope) error

	Status(ctx context.Context, sc model.Scope) StatusOutput

	planner.CalendarSource
}
