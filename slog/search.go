package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/locid"
)

// Ensure LoggingSearchService implements locid.SearchService.
var _ locid.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   locid.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next locid.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the traversal once
// iteration ends, including how many results were consumed.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts locid.SearchOptions) iter.Seq2[locid.SearchResult, error] {
	seq := s.next.Search(ctx, query, opts)
	return func(yield func(locid.SearchResult, error) bool) {
		begin := time.Now()
		count := 0
		var lastErr error
		defer func() {
			s.logger.Info("search",
				"query", query,
				"schemes", len(opts.SchemeURIs),
				"limit", opts.Limit,
				"count", count,
				"duration", time.Since(begin),
				"err", lastErr,
			)
		}()
		for result, err := range seq {
			if err != nil {
				lastErr = err
				yield(result, err)
				return
			}
			if !yield(result, nil) {
				return
			}
			count++
		}
	}
}
