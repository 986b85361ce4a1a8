package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rapport-chat/rapport/pkg/services"
	"github.com/rapport-chat/rapport/pkg/session"
)

// mapSubmitError maps session and service errors to an HTTP status.
func mapSubmitError(err error) int {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrShuttingDown):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
