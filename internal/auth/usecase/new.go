package usecase

import (
	"golang.org/x/oauth2"

	"smart-task-planner/internal/planner"
	"smart-task-planner/internal/session"
	pkgLog "smart-task-planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions *session.Store
	oauth    *oauth2.Config
	shared   planner.Calendar
}

// New creates the auth UseCase. oauthCfg is nil when browser sign-in is
// disabled; shared is nil when the server has no calendar of its own.
func New(l pkgLog.Logger, sessions *session.Store, oauthCfg *oauth2.Config, shared planner.Calendar) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		oauth:    oauthCfg,
		shared:   shared,
	}
}
