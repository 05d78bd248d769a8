package planner

import (
	"errors"
	"fmt"
	"time"
)

// Domain-specific errors for the planner package.
var (
	ErrEmptyInput          = errors.New("task description is empty")
	ErrInputTooLong        = errors.New("task description is too long")
	ErrUnparsable          = errors.New("could not understand the task")
	ErrTimeUnresolved      = errors.New("could not understand the start time")
	ErrOracleUnavailable   = errors.New("remote parser unavailable")
	ErrNoFreeSlot          = errors.New("no free slot found")
	ErrStartInPast         = errors.New("start time is in the past")
	ErrConflict            = errors.New("time slot is already taken")
	ErrDuplicate           = errors.New("a similar event already exists")
	ErrNeedsClarification  = errors.New("more details needed")
	ErrNotAuthenticated    = errors.New("google calendar is not connected")
	ErrCalendarUnavailable = errors.New("google calendar request failed")
)

// Kind groups errors by how the caller should react to them.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindParse          Kind = "parse"
	KindTimeResolution Kind = "time_resolution"
	KindNetwork        Kind = "network"
	KindScheduling     Kind = "scheduling"
	KindConflict       Kind = "conflict"
	KindDuplicate      Kind = "duplicate"
	KindClarification  Kind = "clarification"
	KindAuth           Kind = "auth"
	KindCalendar       Kind = "calendar"
	KindInternal       Kind = "internal"
)

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInputTooLong):
		return KindValidation
	case errors.Is(err, ErrUnparsable):
		return KindParse
	case errors.Is(err, ErrTimeUnresolved):
		return KindTimeResolution
	case errors.Is(err, ErrOracleUnavailable):
		return KindNetwork
	case errors.Is(err, ErrNoFreeSlot), errors.Is(err, ErrStartInPast):
		return KindScheduling
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrNeedsClarification):
		return KindClarification
	case errors.Is(err, ErrNotAuthenticated):
		return KindAuth
	case errors.Is(err, ErrCalendarUnavailable):
		return KindCalendar
	}
	return KindInternal
}

// ParseError carries the user-facing reason a task could not be parsed.
// Err is ErrUnparsable, ErrTimeUnresolved or ErrOracleUnavailable.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConflictError reports the existing event overlapping the requested slot.
type ConflictError struct {
	Existing string
	Start    time.Time
	End      time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicts with %q (%s - %s)", e.Existing, e.Start.Format(time.Kitchen), e.End.Format(time.Kitchen))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DuplicateError reports an upcoming event with the same title.
type DuplicateError struct {
	Title string
	Start time.Time
	// Window is how far ahead the calendar was searched.
	Window time.Duration
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("event %q already scheduled at %s", e.Title, e.Start.Format(time.RFC3339))
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// ClarificationError carries the question the remote parser asked back.
type ClarificationError struct {
	Question string
}

func (e *ClarificationError) Error() string {
	return "clarification needed: " + e.Question
}

func (e *ClarificationError) Unwrap() error {
	return ErrNeedsClarification
}
