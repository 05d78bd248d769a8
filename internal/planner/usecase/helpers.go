package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/taskparse"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and surrounding prose
// that LLMs add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

// normalizeTitle folds case, punctuation and spacing so "Study AI!" and
// "study  ai" compare equal.
func normalizeTitle(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

func fromLocal(r taskparse.Result) planner.ParsedTask {
	return planner.ParsedTask{
		Title:    r.Title,
		Start:    r.Start,
		DateOnly: r.DateOnly,
		Duration: r.Duration,
		Source:   planner.SourceLocal,
	}
}

func toScheduledEvent(ev gcalendar.Event, loc *time.Location) planner.ScheduledEvent {
	return planner.ScheduledEvent{
		ID:       ev.ID,
		Title:    ev.Summary,
		Start:    ev.StartTime.In(loc),
		End:      ev.EndTime.In(loc),
		Link:     ev.HtmlLink,
		Location: ev.Location,
		AllDay:   ev.IsAllDay,
	}
}

func successMessage(title string, start time.Time) string {
	return "Scheduled '" + title + "' on " + start.Format("Monday, January 02") + " at " + start.Format("03:04 PM")
}

// lastTurns returns at most n of the newest turns, oldest first.
func lastTurns[T any](turns []T, n int) []T {
	if n <= 0 || len(turns) == 0 {
		return nil
	}
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return turns
}
