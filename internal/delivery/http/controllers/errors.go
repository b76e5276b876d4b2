package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mentormatch/internal/delivery/http/helpers"
	"mentormatch/internal/domain"
)

// writeServiceError maps domain sentinel errors to HTTP responses. Anything
// unrecognized is logged with request context and surfaced as an opaque
// internal error, so store internals never leak to callers.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidRange, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "mentor not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "booking not found")
	case errors.Is(err, domain.ErrSlotUnavailable):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSlotUnavailable, "requested slot is not available")
	case errors.Is(err, domain.ErrPermissionDenied):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
