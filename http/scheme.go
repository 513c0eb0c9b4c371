package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/locid"
	"github.com/fwojciec/locid/goquery"
)

// Ensure SchemeService implements locid.SchemeService at compile time.
var _ locid.SchemeService = (*SchemeService)(nil)

// SchemeService rederives the concept-scheme mapping by scraping the
// service's live search page.
type SchemeService struct {
	client  *http.Client
	baseURL string
}

// NewSchemeService creates a new SchemeService.
func NewSchemeService(opts ...Option) *SchemeService {
	c := newConfig(opts...)
	return &SchemeService{
		client:  c.client,
		baseURL: c.baseURL,
	}
}

// DiscoverSchemes fetches the search page and extracts the concept-scheme
// facet. A single failed request aborts with EUNAVAILABLE; nothing is
// retried or cached.
func (s *SchemeService) DiscoverSchemes(ctx context.Context) (map[string]string, error) {
	searchURL := s.baseURL + "/search/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, locid.Errorf(locid.EINVALID, "invalid search URL %q: %v", searchURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "fetching search page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, searchURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "reading search page: %v", err)
	}

	return goquery.ExtractSchemes(string(body))
}
