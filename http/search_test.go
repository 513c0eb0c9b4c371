package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/locid"
	locidhttp "github.com/fwojciec/locid/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atomPage renders an Atom results feed with the given entry titles.
// If next is non-empty a rel="next" link is included.
func atomPage(next string, titles ...string) string {
	page := `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	page += `<feed xmlns="http://www.w3.org/2005/Atom">` + "\n"
	page += "<title>id.loc.gov search</title>\n"
	for _, title := range titles {
		page += fmt.Sprintf(
			"<entry><title>%s</title><link href=\"http://id.loc.gov/authorities/subjects/%s\"/></entry>\n",
			title, title)
	}
	if next != "" {
		page += fmt.Sprintf("<link rel=\"next\" href=\"%s\"/>\n", next)
	}
	page += "</feed>"
	return page
}

// collect drains a search sequence, failing the test on any yielded error.
func collect(t *testing.T, seq func(func(locid.SearchResult, error) bool)) []locid.SearchResult {
	t.Helper()
	var results []locid.SearchResult
	for result, err := range seq {
		require.NoError(t, err)
		results = append(results, result)
	}
	return results
}

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("pages through results following next links verbatim", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(atomPage(server.URL+"/opaque/page2", "sh1", "sh2")))
		})
		mux.HandleFunc("/opaque/page2", func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(atomPage("", "sh3")))
		})

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		results := collect(t, svc.Search(context.Background(), "Food", locid.SearchOptions{}))

		require.Len(t, results, 3)
		assert.Equal(t, "sh1", results[0].Title)
		assert.Equal(t, "http://id.loc.gov/authorities/subjects/sh1", results[0].URI)
		assert.Equal(t, "sh3", results[2].Title)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("sends the query and scheme filters as q parameters", func(t *testing.T) {
		t.Parallel()

		var gotQuery []string
		var gotFormat string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()["q"]
			gotFormat = r.URL.Query().Get("format")
			_, _ = w.Write([]byte(atomPage("")))
		}))
		defer server.Close()

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		collect(t, svc.Search(context.Background(), "Food", locid.SearchOptions{
			SchemeURIs: []string{
				"http://id.loc.gov/authorities/names",
				"http://id.loc.gov/authorities/subjects",
			},
		}))

		assert.Equal(t, "atom", gotFormat)
		assert.Equal(t, []string{
			"Food",
			"cs:http://id.loc.gov/authorities/names",
			"cs:http://id.loc.gov/authorities/subjects",
		}, gotQuery)
	})

	t.Run("limit stops the sequence mid-page", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(atomPage("http://"+r.Host+"/never", "sh1", "sh2", "sh3")))
		}))
		defer server.Close()

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		results := collect(t, svc.Search(context.Background(), "Food", locid.SearchOptions{Limit: 2}))

		assert.Len(t, results, 2)
		assert.Equal(t, int32(1), requests.Load(), "next link must not be followed once the limit is reached")
	})

	t.Run("limit spanning pages yields exactly limit entries", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(atomPage(server.URL+"/page2", "sh1", "sh2")))
		})
		mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(atomPage(server.URL+"/page3", "sh3", "sh4")))
		})

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		results := collect(t, svc.Search(context.Background(), "Food", locid.SearchOptions{Limit: 3}))

		require.Len(t, results, 3)
		for _, result := range results {
			assert.NotEmpty(t, result.Title)
			assert.NotEmpty(t, result.URI)
		}
	})

	t.Run("abandoning iteration halts further page fetches", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(atomPage("http://"+r.Host+"/more", "sh1", "sh2")))
		}))
		defer server.Close()

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		for range svc.Search(context.Background(), "Food", locid.SearchOptions{}) {
			break
		}

		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("yields EUNAVAILABLE on a non-2xx response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		var errs []error
		for _, err := range svc.Search(context.Background(), "Food", locid.SearchOptions{}) {
			errs = append(errs, err)
		}

		require.Len(t, errs, 1)
		assert.Equal(t, locid.EUNAVAILABLE, locid.ErrorCode(errs[0]))
	})

	t.Run("paces page fetches by the configured delay", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(atomPage(server.URL+"/page2", "sh1")))
		})
		mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(atomPage("", "sh2")))
		})

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		begin := time.Now()
		results := collect(t, svc.Search(context.Background(), "Food", locid.SearchOptions{
			PageDelay: 50 * time.Millisecond,
		}))
		elapsed := time.Since(begin)

		require.Len(t, results, 2)
		assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	})

	t.Run("each call restarts from page one", func(t *testing.T) {
		t.Parallel()

		var firstPageHits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			firstPageHits.Add(1)
			_, _ = w.Write([]byte(atomPage("", "sh1")))
		}))
		defer server.Close()

		svc := locidhttp.NewSearchService(locidhttp.WithBaseURL(server.URL))

		seq := svc.Search(context.Background(), "Food", locid.SearchOptions{})
		collect(t, seq)
		collect(t, seq)

		assert.Equal(t, int32(2), firstPageHits.Load())
	})
}

// Compile-time verification that SearchService implements locid.SearchService.
var _ locid.SearchService = (*locidhttp.SearchService)(nil)
