package locid

import (
	"context"
	"iter"
	"time"
)

// SearchResult is one hit from the service's full-text index, extracted
// from a single Atom feed entry.
type SearchResult struct {
	Title string
	URI   string
}

// SearchOptions configures a search traversal.
type SearchOptions struct {
	// SchemeURIs restricts the search to the given concept schemes. Each URI
	// is ANDed into the query as a cs:<uri> term. Use ResolveSchemes to
	// convert scheme names to URIs.
	SchemeURIs []string

	// Limit is the maximum number of results to yield. Zero means all.
	Limit int

	// PageDelay is the pause between successive result-page requests, to
	// avoid hammering the service. Zero disables pacing.
	PageDelay time.Duration
}

// SearchService searches the linked data service's full-text index.
type SearchService interface {
	// Search issues the query and returns a lazy sequence of results,
	// transparently following the service's "next" links across as many
	// pages as needed. Pages are fetched on demand: a consumer that stops
	// iterating halts further requests.
	//
	// The sequence terminates when the service omits a next link, when
	// opts.Limit results have been yielded, or when a non-nil error is
	// yielded (EUNAVAILABLE for transport failures and non-2xx responses).
	// Each call starts over from page one.
	Search(ctx context.Context, query string, opts SearchOptions) iter.Seq2[SearchResult, error]
}
