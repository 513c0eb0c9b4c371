package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fwojciec/locid"
)

// Ensure EntityService implements locid.EntityService at compile time.
var _ locid.EntityService = (*EntityService)(nil)

// EntityService fetches single entities from the linked data service and
// reframes them into embedded JSON-LD trees.
type EntityService struct {
	client *http.Client
	framer locid.Framer
}

// NewEntityService creates a new EntityService using the given framer.
func NewEntityService(framer locid.Framer, opts ...Option) *EntityService {
	c := newConfig(opts...)
	return &EntityService{
		client: c.client,
		framer: framer,
	}
}

// FetchEntity retrieves the entity at uri as framed JSON-LD. The URI is
// coerced to http:// first; requesting the https:// form can yield a
// representation that fails framing. Exactly one request is issued, with
// no retries.
func (s *EntityService) FetchEntity(ctx context.Context, uri string) (locid.Entity, error) {
	uri = locid.NormalizeURI(uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, locid.Errorf(locid.EINVALID, "invalid entity URI %q: %v", uri, err)
	}
	req.Header.Set("Accept", "application/ld+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "fetching %s: %v", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, uri)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "reading %s: %v", uri, err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "non-JSON response for %s: %v", uri, err)
	}

	return s.framer.Frame(doc, uri)
}
