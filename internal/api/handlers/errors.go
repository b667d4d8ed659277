package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"trendx-service/internal/repository"
	"trendx-service/internal/validation"
)

// failure maps a service error onto a status code and the message shown to
// the caller. Store errors never leak their cause.
func failure(err error, notFound, fallback string) (int, string) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, notFound
	default:
		return http.StatusInternalServerError, fallback
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, op string, err error, notFound, fallback string) {
	status, message := failure(err, notFound, fallback)

	fields := []any{
		"operation", op,
		"status_code", status,
		"message", message,
		"error", err.Error(),
		"request_id", RequestIDFromContext(ctx),
	}
	if status >= 500 {
		logger.ErrorContext(ctx, "http operation failed", fields...)
	} else {
		logger.WarnContext(ctx, "http operation failed", fields...)
	}

	writeError(w, status, message)
}
