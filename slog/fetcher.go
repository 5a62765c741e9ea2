// Package slog provides log/slog decorators for ponsdict services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jiaulislam/ponsdict"
)

// Ensure LoggingFetcher implements ponsdict.Fetcher.
var _ ponsdict.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   ponsdict.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ponsdict.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL, status and body size and delegates to the wrapped fetcher.
// The line carries the call id of a LoggingDictionary found on ctx.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *ponsdict.RawDocument, err error) {
	defer func(begin time.Time) {
		var status, size int
		if doc != nil {
			status, size = doc.StatusCode, len(doc.Body)
		}
		callLogger(ctx, f.logger).Info("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
