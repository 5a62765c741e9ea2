package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jiaulislam/ponsdict"
)

// Ensure LoggingDictionary implements ponsdict.Dictionary.
var _ ponsdict.Dictionary = (*LoggingDictionary)(nil)

// LoggingDictionary wraps a Dictionary with debug logging.
// Each call gets a random id that is carried on the context, so fetches
// made on its behalf by a LoggingFetcher log the same id.
type LoggingDictionary struct {
	next   ponsdict.Dictionary
	logger *slog.Logger
}

// NewLoggingDictionary creates a new LoggingDictionary.
func NewLoggingDictionary(next ponsdict.Dictionary, logger *slog.Logger) *LoggingDictionary {
	return &LoggingDictionary{next: next, logger: logger}
}

// Lookup delegates to the wrapped dictionary and logs the outcome.
func (d *LoggingDictionary) Lookup(ctx context.Context, req ponsdict.LookupRequest) (result *ponsdict.LookupResult, err error) {
	ctx, logger := withCallID(ctx, d.logger)
	defer func(begin time.Time) {
		var count int
		if result != nil {
			count = len(result.Translations)
		}
		logger.Info("lookup",
			"word", req.Word,
			"pair", req.Pair.String(),
			"all", req.All,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Lookup(ctx, req)
}

// LookupMany delegates to the wrapped dictionary and logs the outcome.
func (d *LoggingDictionary) LookupMany(ctx context.Context, words []string, pair ponsdict.LanguagePair, all bool) (results []*ponsdict.LookupResult, err error) {
	ctx, logger := withCallID(ctx, d.logger)
	defer func(begin time.Time) {
		logger.Info("lookup many",
			"words", len(words),
			"pair", pair.String(),
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.LookupMany(ctx, words, pair, all)
}
