// Package slog provides logging decorators for the locid services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locid"
)

// Ensure LoggingEntityService implements locid.EntityService.
var _ locid.EntityService = (*LoggingEntityService)(nil)

// LoggingEntityService wraps an EntityService with debug logging.
type LoggingEntityService struct {
	next   locid.EntityService
	logger *slog.Logger
}

// NewLoggingEntityService creates a new LoggingEntityService.
func NewLoggingEntityService(next locid.EntityService, logger *slog.Logger) *LoggingEntityService {
	return &LoggingEntityService{next: next, logger: logger}
}

// FetchEntity delegates to the wrapped service and logs the operation.
func (s *LoggingEntityService) FetchEntity(ctx context.Context, uri string) (entity locid.Entity, err error) {
	defer func(begin time.Time) {
		s.logger.Info("entity fetch",
			"uri", uri,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchEntity(ctx, uri)
}
