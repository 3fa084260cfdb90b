// Package slog provides logging decorators for docnamer services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docnamer"
)

// Ensure LoggingLookup implements docnamer.Lookuper at compile time.
var _ docnamer.Lookuper = (*LoggingLookup)(nil)

// LoggingLookup wraps a Lookuper with debug logging for each lookup.
type LoggingLookup struct {
	next   docnamer.Lookuper
	logger *slog.Logger
}

// NewLoggingLookup creates a new LoggingLookup.
func NewLoggingLookup(next docnamer.Lookuper, logger *slog.Logger) *LoggingLookup {
	return &LoggingLookup{next: next, logger: logger}
}

// ParameterNames delegates to the wrapped Lookuper and logs the outcome.
func (l *LoggingLookup) ParameterNames(ctx context.Context, c *docnamer.Callable, policy docnamer.MissingPolicy) ([]string, error) {
	begin := time.Now()
	names, err := l.next.ParameterNames(ctx, c, policy)
	if err != nil {
		l.logger.Error("parameter name lookup failed",
			"callable", c.String(),
			"code", docnamer.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	l.logger.Info("parameter name lookup",
		"callable", c.String(),
		"names", len(names),
		"duration", time.Since(begin),
	)
	return names, nil
}
