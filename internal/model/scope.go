package model

// Scope identifies who a request acts for.
type Scope struct {
	SessionID     string
	Authenticated bool // the session holds its own Google token
}
