package auth

// CallbackInput carries the query parameters Google redirects back with.
type CallbackInput struct {
	State string
	Code  string
	// Error is set when the user declined consent.
	Error string
}

// CalendarMode tells which credentials a session's requests use.
type CalendarMode string

const (
	ModeSession CalendarMode = "session" // the user's own OAuth token
	ModeShared  CalendarMode = "shared"  // the server's default credentials
	ModeNone    CalendarMode = "none"
)

// StatusOutput describes the session's calendar connection.
type StatusOutput struct {
	Authenticated bool
	Mode          CalendarMode
	LoginEnabled  bool
}
