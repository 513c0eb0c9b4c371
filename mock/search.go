package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/locid"
)

var _ locid.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of locid.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts locid.SearchOptions) iter.Seq2[locid.SearchResult, error]
}

func (s *SearchService) Search(ctx context.Context, query string, opts locid.SearchOptions) iter.Seq2[locid.SearchResult, error] {
	return s.SearchFn(ctx, query, opts)
}

// Results builds a search sequence that yields the given results in order.
// Convenient for wiring SearchFn in tests.
func Results(results ...locid.SearchResult) iter.Seq2[locid.SearchResult, error] {
	return func(yield func(locid.SearchResult, error) bool) {
		for _, result := range results {
			if !yield(result, nil) {
				return
			}
		}
	}
}

// ResultsErr builds a search sequence that yields the given results and
// then a terminal error.
func ResultsErr(err error, results ...locid.SearchResult) iter.Seq2[locid.SearchResult, error] {
	return func(yield func(locid.SearchResult, error) bool) {
		for _, result := range results {
			if !yield(result, nil) {
				return
			}
		}
		yield(locid.SearchResult{}, err)
	}
}
