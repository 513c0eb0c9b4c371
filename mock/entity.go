package mock

import (
	"context"

	"github.com/fwojciec/locid"
)

var _ locid.EntityService = (*EntityService)(nil)

// EntityService is a mock implementation of locid.EntityService.
type EntityService struct {
	FetchEntityFn func(ctx context.Context, uri string) (locid.Entity, error)
}

func (s *EntityService) FetchEntity(ctx context.Context, uri string) (locid.Entity, error) {
	return s.FetchEntityFn(ctx, uri)
}

var _ locid.Framer = (*Framer)(nil)

// Framer is a mock implementation of locid.Framer.
type Framer struct {
	FrameFn func(doc any, uri string) (locid.Entity, error)
}

func (f *Framer) Frame(doc any, uri string) (locid.Entity, error) {
	return f.FrameFn(doc, uri)
}
