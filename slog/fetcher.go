// Package slog provides logging decorators for the newsgrab domain
// interfaces, built on the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsgrab/newsgrab"
)

// Ensure LoggingFetcher implements newsgrab.Fetcher.
var _ newsgrab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   newsgrab.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newsgrab.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *newsgrab.Response, err error) {
	defer func(begin time.Time) {
		status := 0
		bytes := 0
		if resp != nil {
			status = resp.StatusCode
			bytes = len(resp.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
