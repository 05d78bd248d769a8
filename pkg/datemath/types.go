package datemath

import "time"

// ParseResult holds the result of resolving a natural-language time phrase.
type ParseResult struct {
	AbsoluteTime time.Time
	// DateOnly is set when the phrase named a day but no clock time.
	// AbsoluteTime is then midnight of that day.
	DateOnly bool
}

type clock struct {
	hour   int
	minute int
}
