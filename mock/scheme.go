package mock

import (
	"context"

	"github.com/fwojciec/locid"
)

var _ locid.SchemeService = (*SchemeService)(nil)

// SchemeService is a mock implementation of locid.SchemeService.
type SchemeService struct {
	DiscoverSchemesFn func(ctx context.Context) (map[string]string, error)
}

func (s *SchemeService) DiscoverSchemes(ctx context.Context) (map[string]string, error) {
	return s.DiscoverSchemesFn(ctx)
}
