// Package service holds the shop's CRUD operations and the dashboard
// aggregation. Every operation is stateless and makes its store calls
// through the injected repositories.
package service

import (
	"log/slog"
	"time"
)

// Stored timestamps are UTC with millisecond precision, which every backing
// store round-trips exactly.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component, "layer", "service")
}
