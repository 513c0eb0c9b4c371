package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locid"
)

// Ensure LoggingSchemeService implements locid.SchemeService.
var _ locid.SchemeService = (*LoggingSchemeService)(nil)

// LoggingSchemeService wraps a SchemeService with debug logging.
type LoggingSchemeService struct {
	next   locid.SchemeService
	logger *slog.Logger
}

// NewLoggingSchemeService creates a new LoggingSchemeService.
func NewLoggingSchemeService(next locid.SchemeService, logger *slog.Logger) *LoggingSchemeService {
	return &LoggingSchemeService{next: next, logger: logger}
}

// DiscoverSchemes delegates to the wrapped service and logs the operation.
func (s *LoggingSchemeService) DiscoverSchemes(ctx context.Context) (schemes map[string]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scheme discovery",
			"count", len(schemes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverSchemes(ctx)
}
