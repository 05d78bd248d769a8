package taskparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-task-planner/pkg/datemath"
)

const maxDateSuffixWords = 4

// MaxDuration is the longest task the extractor accepts. Larger amounts
// leave the duration template unmatched.
const MaxDuration = 24 * time.Hour

var (
	durationSuffixRe = regexp.MustCompile(`(?i)^(.+?)\s+for\s+(\d+)\s*(hours?|hrs?|minutes?|mins?)\.?$`)
	durationInfixRe  = regexp.MustCompile(`(?i)^(.+?)\s+for\s+(\d+)\s*(hours?|hrs?|minutes?|mins?)\b[\s,]*(.*)$`)

	clockSeparatorRe = regexp.MustCompile(`(?i)\s+(?:at|by)\s+|\s*@\s*`)
	anySeparatorRe   = regexp.MustCompile(`(?i)\s+(?:at|by|on)\s+|\s*@\s*`)
)

// Extractor pulls a title, start time and duration out of a task sentence.
type Extractor struct {
	resolver        *datemath.Parser
	defaultDuration time.Duration
}

// NewExtractor creates an Extractor. defaultDuration applies when the text
// names no duration.
func NewExtractor(resolver *datemath.Parser, defaultDuration time.Duration) *Extractor {
	if defaultDuration <= 0 {
		defaultDuration = time.Hour
	}
	return &Extractor{
		resolver:        resolver,
		defaultDuration: defaultDuration,
	}
}

// Extract tries each template in order; the first that matches wins.
// ok is false only for blank input.
func (e *Extractor) Extract(text string, now time.Time) (Result, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, false
	}

	if r, ok := e.matchTimeThenDuration(text, now); ok {
		return r, true
	}
	if r, ok := e.matchDurationThenTime(text, now); ok {
		return r, true
	}
	if r, ok := e.matchTimeOnly(text, now); ok {
		return r, true
	}

	return Result{
		Title:    text,
		Duration: e.defaultDuration,
		Template: TemplateFallback,
	}, true
}

func (e *Extractor) matchTimeThenDuration(text string, now time.Time) (Result, bool) {
	m := durationSuffixRe.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	duration, ok := parseDuration(m[2], m[3])
	if !ok {
		return Result{}, false
	}

	head := m[1]
	for _, loc := range clockSeparatorRe.FindAllStringIndex(head, -1) {
		title := strings.TrimSpace(head[:loc[0]])
		if title == "" {
			continue
		}
		title, expr, resolved, ok := e.resolveTime(title, head[loc[1]:], now)
		if !ok {
			continue
		}
		return Result{
			Title:    title,
			Start:    resolved.AbsoluteTime,
			DateOnly: resolved.DateOnly,
			Duration: duration,
			Template: TemplateTimeThenDuration,
			TimeExpr: expr,
		}, true
	}
	return Result{}, false
}

func (e *Extractor) matchDurationThenTime(text string, now time.Time) (Result, bool) {
	m := durationInfixRe.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	duration, ok := parseDuration(m[2], m[3])
	if !ok {
		return Result{}, false
	}

	title, expr, resolved, ok := e.resolveTime(strings.TrimSpace(m[1]), m[4], now)
	r := Result{
		Title:    title,
		Duration: duration,
		Template: TemplateDurationThenTime,
		TimeExpr: expr,
	}
	if ok {
		r.Start = resolved.AbsoluteTime
		r.DateOnly = resolved.DateOnly
	} else {
		r.Unresolved = expr != ""
	}
	return r, true
}

func (e *Extractor) matchTimeOnly(text string, now time.Time) (Result, bool) {
	for _, loc := range anySeparatorRe.FindAllStringIndex(text, -1) {
		title := strings.TrimSpace(text[:loc[0]])
		if title == "" {
			continue
		}
		title, expr, resolved, ok := e.resolveTime(title, text[loc[1]:], now)
		if !ok {
			continue
		}
		return e.timeOnly(title, expr, resolved), true
	}

	// "Call mom tomorrow": no separator, but the sentence ends with a day.
	if title, suffix := e.peelDateSuffix(text, now); suffix != "" {
		if resolved, ok := e.resolver.Resolve(suffix, now); ok {
			return e.timeOnly(title, suffix, resolved), true
		}
	}
	return Result{}, false
}

func (e *Extractor) timeOnly(title, expr string, resolved datemath.ParseResult) Result {
	return Result{
		Title:    title,
		Start:    resolved.AbsoluteTime,
		DateOnly: resolved.DateOnly,
		Duration: e.defaultDuration,
		Template: TemplateTimeOnly,
		TimeExpr: expr,
	}
}

// resolveTime resolves expr, first trying to prepend a date phrase peeled off
// the end of title ("Team sync tomorrow" + "3pm").
func (e *Extractor) resolveTime(title, expr string, now time.Time) (string, string, datemath.ParseResult, bool) {
	expr = strings.TrimSpace(expr)

	if head, suffix := e.peelDateSuffix(title, now); suffix != "" {
		combined := strings.TrimSpace(suffix + " " + expr)
		if resolved, ok := e.resolver.Resolve(combined, now); ok {
			return head, combined, resolved, true
		}
	}

	if expr == "" {
		return title, expr, datemath.ParseResult{}, false
	}
	resolved, ok := e.resolver.Resolve(expr, now)
	return title, expr, resolved, ok
}

// peelDateSuffix splits the longest trailing date phrase off title, keeping
// at least one word of title.
func (e *Extractor) peelDateSuffix(title string, now time.Time) (string, string) {
	words := strings.Fields(title)
	for k := min(maxDateSuffixWords, len(words)-1); k >= 1; k-- {
		suffix := strings.Join(words[len(words)-k:], " ")
		if e.resolver.IsDatePhrase(suffix, now) {
			return strings.Join(words[:len(words)-k], " "), suffix
		}
	}
	return title, ""
}

func parseDuration(amount, unit string) (time.Duration, bool) {
	n, err := strconv.Atoi(amount)
	if err != nil || n <= 0 {
		return 0, false
	}
	step := time.Minute
	unit = strings.ToLower(unit)
	if strings.Contains(unit, "hour") || strings.Contains(unit, "hr") {
		step = time.Hour
	}
	if n > int(MaxDuration/step) {
		return 0, false
	}
	return time.Duration(n) * step, true
}
