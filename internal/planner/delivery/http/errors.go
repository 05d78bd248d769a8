package http

import (
	"errors"
	"fmt"
	"math"
	"time"

	"smart-task-planner/internal/planner"
	pkgErrors "smart-task-planner/pkg/errors"
)

var (
	errInvalidBody  = pkgErrors.NewHTTPError(40000, "Request body must be JSON with a \"text\" field")
	errInvalidQuery = pkgErrors.NewHTTPError(40004, "Invalid query parameters")
	errEmptyText    = pkgErrors.NewHTTPError(40001, "Please describe the task you want to schedule")
	errInvalidLimit = pkgErrors.NewHTTPError(40005, "limit must not be negative")
	errNoSession    = pkgErrors.NewHTTPError(50001, "Session is not available")
)

const week = 7 * 24 * time.Hour

// mapError translates planner errors into HTTP errors from pkg/errors.
// Errors the planner does not know about become ErrInternalServerError.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var (
		parseErr    *planner.ParseError
		clarify     *planner.ClarificationError
		conflictErr *planner.ConflictError
		dupErr      *planner.DuplicateError
	)

	switch {
	case errors.Is(err, planner.ErrEmptyInput):
		return errEmptyText
	case errors.Is(err, planner.ErrInputTooLong):
		return pkgErrors.NewHTTPError(40002, "That task description is too long. Please shorten it")
	case errors.As(err, &clarify):
		return pkgErrors.NewHTTPError(42203, clarify.Question)
	case errors.As(err, &parseErr):
		return pkgErrors.NewHTTPError(parseErrorCode(parseErr.Err), parseErr.Reason)
	case errors.Is(err, planner.ErrStartInPast):
		return pkgErrors.NewHTTPError(40003, "That time has already passed. Pick a time in the future")
	case errors.Is(err, planner.ErrNoFreeSlot):
		return pkgErrors.NewHTTPError(40901, "No available time slots found. Try another day or a shorter duration")
	case errors.As(err, &conflictErr):
		return pkgErrors.NewHTTPError(40902, fmt.Sprintf("That time conflicts with '%s' (%s - %s)",
			conflictErr.Existing, conflictErr.Start.Format(time.Kitchen), conflictErr.End.Format(time.Kitchen)))
	case errors.As(err, &dupErr):
		return pkgErrors.NewHTTPError(40903, duplicateMessage(dupErr))
	case errors.Is(err, planner.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(40101, "Connect your Google Calendar first by visiting /login")
	case errors.Is(err, planner.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(50201, "Google Calendar did not respond, please try again")
	}
	return pkgErrors.ErrInternalServerError
}

func parseErrorCode(sentinel error) int {
	switch {
	case errors.Is(sentinel, planner.ErrOracleUnavailable):
		return 50301
	case errors.Is(sentinel, planner.ErrTimeUnresolved):
		return 42202
	}
	return 42201
}

func duplicateMessage(e *planner.DuplicateError) string {
	var when string
	switch {
	case e.Window == week:
		when = "this week"
	case e.Window < 24*time.Hour:
		when = "in the next " + plural(int(math.Ceil(e.Window.Hours())), "hour")
	default:
		when = "in the next " + plural(int(e.Window.Hours()/24), "day")
	}
	return fmt.Sprintf("You already have an event titled '%s' %s. Consider updating it, or resend with confirm_duplicate", e.Title, when)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
