package http

import (
	"errors"

	"smart-task-planner/internal/auth"
	pkgErrors "smart-task-planner/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(50001, "Session is not available")

func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		return pkgErrors.NewHTTPError(50101, "Google sign-in is not configured on this server")
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(40102, "Your session expired, please reload the page")
	case errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(40103, "Sign-in link expired or was already used. Start again from /login")
	case errors.Is(err, auth.ErrConsentDenied):
		return pkgErrors.NewHTTPError(40104, "Google sign-in was cancelled")
	case errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(40006, "Authorization code is missing")
	case errors.Is(err, auth.ErrExchangeFailed):
		return pkgErrors.NewHTTPError(50202, "Google did not accept the sign-in, please try again")
	}
	return pkgErrors.ErrInternalServerError
}
