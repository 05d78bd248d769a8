package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	twelveHourRe     = regexp.MustCompile(`\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)
	twentyFourHourRe = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	periodRe         = regexp.MustCompile(`\b(noon|midday|midnight|morning|afternoon|evening|tonight)\b`)
	fillerRe         = regexp.MustCompile(`\b(?:in the|at|on|by|this|the|of)\b|@`)
	spacesRe         = regexp.MustCompile(`\s+`)

	hourOffsetRe = regexp.MustCompile(`^in (\d+) (minutes?|mins?|hours?|hrs?)$`)
	dayOffsetRe  = regexp.MustCompile(`^in (\d+) (days?|weeks?|months?)$`)
	isoDateRe    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthDayRe   = regexp.MustCompile(`^(` + monthAlternation + `)\.? (\d{1,2})(?:st|nd|rd|th)?(?: (\d{4}))?$`)
	dayMonthRe   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? (` + monthAlternation + `)\.?(?: (\d{4}))?$`)
)

// maxHourOffset bounds "in N hours" so the offset cannot overflow.
const maxHourOffset = 366 * 24 * time.Hour

const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Abbreviations are ambiguous inside free text ("enjoy the sun"), so they are
// only honoured when resolving an explicit time expression.
var weekdayAbbrev = map[string]time.Weekday{
	"mon": time.Monday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"fri": time.Friday, "sat": time.Saturday, "sun": time.Sunday,
}

var periodClocks = map[string]clock{
	"noon":      {12, 0},
	"midday":    {12, 0},
	"midnight":  {0, 0},
	"morning":   {9, 0},
	"afternoon": {14, 0},
	"evening":   {18, 0},
	"tonight":   {20, 0},
}

// Parser converts natural-language time phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Africa/Lagos"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone phrases are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts phrases like "tomorrow at 5pm", "next monday 10am", "5pm",
// "in 2 hours" or "May 10" into an absolute time relative to now.
// Ambiguous phrases resolve to the nearest future occurrence. ok is false when
// the phrase cannot be understood; callers treat that as "time unknown".
func (p *Parser) Resolve(phrase string, now time.Time) (ParseResult, bool) {
	now = now.In(p.location)

	raw := strings.TrimSpace(phrase)
	if raw == "" {
		return ParseResult{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return ParseResult{AbsoluteTime: t.In(p.location)}, true
	}

	s := normalize(raw)
	if s == "" {
		return ParseResult{}, false
	}

	if t, ok := p.resolveHourOffset(s, now); ok {
		return ParseResult{AbsoluteTime: t}, true
	}

	c, rest, hasClock := extractClock(s)
	rest = stripFillers(rest)

	var day time.Time
	hasDate := false
	if rest != "" {
		d, ok := p.resolveDay(rest, now, true)
		if !ok {
			return ParseResult{}, false
		}
		day, hasDate = d, true
	}

	switch {
	case hasDate && hasClock:
		return ParseResult{AbsoluteTime: p.at(day, c)}, true
	case hasDate:
		return ParseResult{AbsoluteTime: day, DateOnly: true}, true
	case hasClock:
		t := p.at(p.StartOfDay(now), c)
		if !t.After(now) {
			t = p.at(p.StartOfDay(now.AddDate(0, 0, 1)), c)
		}
		return ParseResult{AbsoluteTime: t}, true
	}

	return ParseResult{}, false
}

// IsDatePhrase reports whether phrase names a day without a clock time
// ("tomorrow", "on friday", "next week", "may 10"). Weekday abbreviations
// are not accepted.
func (p *Parser) IsDatePhrase(phrase string, now time.Time) bool {
	s := normalize(phrase)
	if s == "" {
		return false
	}
	if _, _, hasClock := extractClock(s); hasClock {
		return false
	}
	rest := stripFillers(s)
	if rest == "" {
		return false
	}
	_, ok := p.resolveDay(rest, now.In(p.location), false)
	return ok
}

// resolveHourOffset handles "in 30 minutes" and "in 2 hours".
func (p *Parser) resolveHourOffset(s string, now time.Time) (time.Time, bool) {
	matches := hourOffsetRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, false
	}
	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, false
	}
	unit := time.Minute
	if strings.HasPrefix(matches[2], "h") {
		unit = time.Hour
	}
	if amount > int(maxHourOffset/unit) {
		return time.Time{}, false
	}
	return now.Add(time.Duration(amount) * unit).Truncate(time.Minute), true
}

// resolveDay maps a date phrase to midnight of the day it names.
func (p *Parser) resolveDay(s string, now time.Time, allowAbbrev bool) (time.Time, bool) {
	today := p.StartOfDay(now)

	switch s {
	case "today", "tonight":
		return today, true
	case "tomorrow", "tmrw", "tmr":
		return today.AddDate(0, 0, 1), true
	case "day after tomorrow":
		return today.AddDate(0, 0, 2), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	case "next week":
		return today.AddDate(0, 0, 7), true
	}

	if t, ok := p.parseInDuration(s, today); ok {
		return t, true
	}

	if t, ok := p.parseWeekday(s, today, allowAbbrev); ok {
		return t, true
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return p.date(year, time.Month(month), day)
	}

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[2])
		return p.monthDay(today, months[m[1]], day, m[3])
	}
	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		return p.monthDay(today, months[m[2]], day, m[3])
	}

	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(s string, today time.Time) (time.Time, bool) {
	matches := dayOffsetRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, false
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), true
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), true
	case strings.HasPrefix(unit, "month"):
		return today.AddDate(0, amount, 0), true
	}
	return time.Time{}, false
}

// parseWeekday handles "monday" and "next monday". Both resolve to the next
// occurrence strictly after today.
func (p *Parser) parseWeekday(s string, today time.Time, allowAbbrev bool) (time.Time, bool) {
	name := strings.TrimPrefix(s, "next ")

	target, ok := weekdays[name]
	if !ok && allowAbbrev {
		target, ok = weekdayAbbrev[strings.TrimSuffix(name, ".")]
	}
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil), true
}

// monthDay resolves a month/day pair. Without a year the next future
// occurrence is used (today counts as future).
func (p *Parser) monthDay(today time.Time, month time.Month, day int, yearStr string) (time.Time, bool) {
	if yearStr != "" {
		year, _ := strconv.Atoi(yearStr)
		return p.date(year, month, day)
	}
	t, ok := p.date(today.Year(), month, day)
	if !ok {
		// Feb 29 outside a leap year: try the following years.
		for y := today.Year() + 1; y <= today.Year()+4 && !ok; y++ {
			t, ok = p.date(y, month, day)
		}
		return t, ok
	}
	if t.Before(today) {
		if next, ok := p.date(today.Year()+1, month, day); ok {
			return next, true
		}
	}
	return t, true
}

// date builds midnight of year-month-day, rejecting overflowing days like April 31.
func (p *Parser) date(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

func (p *Parser) at(day time.Time, c clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// extractClock finds a clock time in s and returns it with the remainder of s.
func extractClock(s string) (clock, string, bool) {
	if m := twelveHourRe.FindStringSubmatchIndex(s); m != nil {
		hour, _ := strconv.Atoi(s[m[2]:m[3]])
		minute := 0
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(s[m[4]:m[5]])
		}
		if hour < 1 || hour > 12 {
			return clock{}, s, false
		}
		if s[m[6]:m[7]] == "pm" && hour != 12 {
			hour += 12
		} else if s[m[6]:m[7]] == "am" && hour == 12 {
			hour = 0
		}
		return clock{hour, minute}, cut(s, m[0], m[1]), true
	}

	if m := twentyFourHourRe.FindStringSubmatchIndex(s); m != nil {
		hour, _ := strconv.Atoi(s[m[2]:m[3]])
		minute, _ := strconv.Atoi(s[m[4]:m[5]])
		return clock{hour, minute}, cut(s, m[0], m[1]), true
	}

	if m := periodRe.FindStringSubmatchIndex(s); m != nil {
		word := s[m[2]:m[3]]
		rest := cut(s, m[0], m[1])
		if word == "tonight" && strings.TrimSpace(stripFillers(rest)) == "" {
			rest = "today"
		}
		return periodClocks[word], rest, true
	}

	return clock{}, s, false
}

func cut(s string, start, end int) string {
	return strings.TrimSpace(s[:start] + " " + s[end:])
}

func stripFillers(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(fillerRe.ReplaceAllString(s, " "), " "))
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("a.m.", "am", "p.m.", "pm", ",", " ").Replace(s)
	s = strings.TrimRight(s, ".!?")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
