package planner

import (
	"time"

	"smart-task-planner/internal/model"
)

// Source tells which parser produced a task.
type Source string

const (
	SourceLocal  Source = "local"
	SourceOracle Source = "oracle"
)

// ParsedTask is a task ready for scheduling.
type ParsedTask struct {
	Title    string
	Start    time.Time // zero when the free-slot finder must pick one
	DateOnly bool      // Start names a day; the slot within it is searched
	Duration time.Duration
	Source   Source
}

// HasStart reports whether the task carries an explicit start time.
func (t ParsedTask) HasStart() bool {
	return !t.Start.IsZero() && !t.DateOnly
}

// ParseStatus tags the ParseResult variant.
type ParseStatus string

const (
	ParseComplete           ParseStatus = "complete"
	ParseNeedsClarification ParseStatus = "clarification"
	ParseFailed             ParseStatus = "failed"
)

// ParseResult is the outcome of parsing a task. Exactly one of Task,
// Question or Reason is meaningful, depending on Status.
type ParseResult struct {
	Status   ParseStatus
	Task     ParsedTask
	Question string
	Reason   string
	Err      error // sentinel for ParseFailed
}

// Completed builds a ParseComplete result.
func Completed(task ParsedTask) ParseResult {
	return ParseResult{Status: ParseComplete, Task: task}
}

// NeedsClarification builds a ParseNeedsClarification result.
func NeedsClarification(question string) ParseResult {
	return ParseResult{Status: ParseNeedsClarification, Question: question}
}

// Failed builds a ParseFailed result. err should be one of the parse sentinels.
func Failed(err error, reason string) ParseResult {
	return ParseResult{Status: ParseFailed, Reason: reason, Err: err}
}

// AsError converts a non-complete result into the matching error.
func (r ParseResult) AsError() error {
	switch r.Status {
	case ParseComplete:
		return nil
	case ParseNeedsClarification:
		return &ClarificationError{Question: r.Question}
	}
	err := r.Err
	if err == nil {
		err = ErrUnparsable
	}
	return &ParseError{Reason: r.Reason, Err: err}
}

// ScheduledEvent is a calendar event as shown to the user.
type ScheduledEvent struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Link     string
	Location string
	AllDay   bool
}

// ScheduleInput is the input for Schedule.
type ScheduleInput struct {
	Text string
	// History is the session's recent conversation, oldest first.
	History []model.ConversationTurn
	// ConfirmDuplicate schedules even when an event with the same title exists.
	ConfirmDuplicate bool
}

// ScheduleOutput is the result of Schedule.
type ScheduleOutput struct {
	Event   ScheduledEvent
	Task    ParsedTask
	Message string
	// SlotSearched is set when the start time was picked by the free-slot finder.
	SlotSearched bool
}

// ParseInput is the input for Parse.
type ParseInput struct {
	Text    string
	History []model.ConversationTurn
}

// ParseOutput is the result of Parse.
type ParseOutput struct {
	Result ParseResult
}

// UpcomingInput is the input for Upcoming.
type UpcomingInput struct {
	Limit int
}

// UpcomingOutput is the result of Upcoming.
type UpcomingOutput struct {
	Events []ScheduledEvent
}
