package taskparse

import "time"

// Template identifies which sentence shape produced a Result.
type Template int

const (
	// TemplateTimeThenDuration: "<title> at <time> for <N> hours".
	TemplateTimeThenDuration Template = iota + 1
	// TemplateDurationThenTime: "<title> for <N> minutes [<time>]".
	TemplateDurationThenTime
	// TemplateTimeOnly: "<title> at|by|@|on <time>" with the default duration.
	TemplateTimeOnly
	// TemplateFallback: the whole text is the title.
	TemplateFallback
)

func (t Template) String() string {
	switch t {
	case TemplateTimeThenDuration:
		return "time_then_duration"
	case TemplateDurationThenTime:
		return "duration_then_time"
	case TemplateTimeOnly:
		return "time_only"
	case TemplateFallback:
		return "fallback"
	}
	return "unknown"
}

// Result is the outcome of a local extraction.
type Result struct {
	Title    string
	Start    time.Time // zero when no time was given
	DateOnly bool      // Start is midnight of a named day with no clock time
	Duration time.Duration
	Template Template
	TimeExpr string
	// Unresolved is set when a trailing time phrase was present but could not
	// be understood.
	Unresolved bool
}

// HasStart reports whether an explicit start time was extracted.
func (r Result) HasStart() bool {
	return !r.Start.IsZero()
}

// Complete reports whether the result can be scheduled without asking the oracle.
func (r Result) Complete() bool {
	return r.Template != TemplateFallback && !r.Unresolved && r.Title != "" && r.Duration > 0
}
