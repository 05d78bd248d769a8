package auth

import "errors"

var (
	ErrOAuthNotConfigured = errors.New("google sign-in is not configured")
	ErrInvalidState       = errors.New("oauth state does not match")
	ErrMissingCode        = errors.New("authorization code is missing")
	ErrConsentDenied      = errors.New("google sign-in was cancelled")
	ErrExchangeFailed     = errors.New("could not exchange authorization code")
	ErrSessionNotFound    = errors.New("session not found")
)
