package http

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/beevik/etree"
	"github.com/fwojciec/locid"
	"golang.org/x/time/rate"
)

// Ensure SearchService implements locid.SearchService at compile time.
var _ locid.SearchService = (*SearchService)(nil)

// SearchService searches the linked data service's full-text index,
// paging through Atom result feeds on demand.
type SearchService struct {
	client  *http.Client
	baseURL string
}

// NewSearchService creates a new SearchService.
func NewSearchService(opts ...Option) *SearchService {
	c := newConfig(opts...)
	return &SearchService{
		client:  c.client,
		baseURL: c.baseURL,
	}
}

// Search issues the query and returns a lazy sequence of results. The
// first page is built from the query and scheme filters; subsequent pages
// follow the feed's rel="next" link verbatim, so the service stays in
// control of its own paging scheme. Successive page fetches are paced by
// opts.PageDelay via a token bucket; the pacing wait and the page GET are
// the only suspension points, and both honor ctx.
func (s *SearchService) Search(ctx context.Context, query string, opts locid.SearchOptions) iter.Seq2[locid.SearchResult, error] {
	return func(yield func(locid.SearchResult, error) bool) {
		var limiter *rate.Limiter
		if opts.PageDelay > 0 {
			// Burst 1 makes the first page immediate and every later
			// page wait out the delay.
			limiter = rate.NewLimiter(rate.Every(opts.PageDelay), 1)
		}

		pageURL := s.firstPageURL(query, opts.SchemeURIs)
		count := 0

		for {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					yield(locid.SearchResult{}, err)
					return
				}
			}

			page, err := s.fetchPage(ctx, pageURL)
			if err != nil {
				yield(locid.SearchResult{}, err)
				return
			}

			for _, result := range page.results {
				if !yield(result, nil) {
					return
				}
				count++
				if opts.Limit > 0 && count >= opts.Limit {
					return
				}
			}

			if page.next == "" {
				return
			}
			pageURL = page.next
		}
	}
}

// firstPageURL builds the initial search URL. Each scheme URI becomes a
// cs:<uri> term ANDed into the query alongside the search text.
func (s *SearchService) firstPageURL(query string, schemeURIs []string) string {
	q := make([]string, 0, len(schemeURIs)+1)
	q = append(q, query)
	for _, uri := range schemeURIs {
		q = append(q, "cs:"+uri)
	}

	params := url.Values{"format": {"atom"}, "q": q}
	return s.baseURL + "/search/?" + params.Encode()
}

// feedPage is one parsed Atom results page.
type feedPage struct {
	results []locid.SearchResult
	next    string
}

// fetchPage retrieves and parses a single Atom results page.
func (s *SearchService) fetchPage(ctx context.Context, pageURL string) (*feedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, locid.Errorf(locid.EINVALID, "invalid results page URL %q: %v", pageURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "fetching results page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, pageURL)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "parsing Atom feed: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, locid.Errorf(locid.EUNAVAILABLE, "empty Atom feed for %s", pageURL)
	}

	page := &feedPage{}

	for _, entry := range root.SelectElements("entry") {
		var result locid.SearchResult
		if el := entry.SelectElement("title"); el != nil {
			result.Title = el.Text()
		}
		if el := entry.SelectElement("link"); el != nil {
			result.URI = el.SelectAttrValue("href", "")
		}
		page.results = append(page.results, result)
	}

	for _, link := range root.SelectElements("link") {
		if link.SelectAttrValue("rel", "") == "next" {
			page.next = link.SelectAttrValue("href", "")
			break
		}
	}

	return page, nil
}
