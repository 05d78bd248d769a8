package usecase

import (
	"time"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/datemath"
	pkgLog "smart-task-planner/pkg/log"
	"smart-task-planner/pkg/taskparse"
)

const (
	defaultMaxInputLength = 500
	defaultWorkdayStart   = 8
	defaultWorkdayEnd     = 20
	defaultSlotSearchDays = 7
	defaultDuplicateWin   = 7 * 24 * time.Hour
	defaultHistoryContext = 3
	defaultUpcomingLimit  = 5
	maxUpcomingLimit      = 50
	duplicateSearchLimit  = 50
)

// Config tunes scheduling. Zero values fall back to the defaults above.
type Config struct {
	CalendarID       string
	Timezone         string
	MaxInputLength   int
	WorkdayStartHour int
	WorkdayEndHour   int
	SlotSearchDays   int
	DuplicateWindow  time.Duration
	HistoryContext   int
	UpcomingLimit    int
	// Now overrides the wall clock in tests.
	Now func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	calendars planner.CalendarSource
	oracle    planner.Oracle
	extractor *taskparse.Extractor
	dateMath  *datemath.Parser
	loc       *time.Location
	cfg       Config
}

// New creates a new planner UseCase instance. oracle may be nil, in which
// case incomplete local extractions are scheduled with their defaults.
func New(
	l pkgLog.Logger,
	calendars planner.CalendarSource,
	oracle planner.Oracle,
	extractor *taskparse.Extractor,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = defaultMaxInputLength
	}
	if cfg.WorkdayStartHour == 0 && cfg.WorkdayEndHour == 0 {
		cfg.WorkdayStartHour, cfg.WorkdayEndHour = defaultWorkdayStart, defaultWorkdayEnd
	}
	if cfg.SlotSearchDays <= 0 {
		cfg.SlotSearchDays = defaultSlotSearchDays
	}
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = defaultDuplicateWin
	}
	if cfg.HistoryContext <= 0 {
		cfg.HistoryContext = defaultHistoryContext
	}
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = defaultUpcomingLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	loc := dateMath.Location()
	if cfg.Timezone == "" {
		cfg.Timezone = loc.String()
	}

	return &implUseCase{
		l:         l,
		calendars: calendars,
		oracle:    oracle,
		extractor: extractor,
		dateMath:  dateMath,
		loc:       loc,
		cfg:       cfg,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.cfg.Now().In(uc.loc)
}
