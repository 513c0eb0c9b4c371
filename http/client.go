// Package http provides HTTP-based implementations of the locid services
// that talk to the id.loc.gov linked data service.
package http

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the linked data service endpoint used for search and
// concept-scheme discovery. Entity fetches go to the entity URI itself.
const DefaultBaseURL = "https://id.loc.gov"

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultPageDelay is the pause between successive search result pages,
// matching the service's informal rate expectations.
const DefaultPageDelay = time.Second

// config holds the settings shared by the services in this package.
type config struct {
	client  *http.Client
	timeout time.Duration
	baseURL string
}

// Option configures a service in this package.
type Option func(*config)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified. Ignored when a custom
// client is supplied with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely, including
// its timeout behavior.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithBaseURL points search and discovery at a different service root.
// Defaults to DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

func newConfig(opts ...Option) config {
	c := config{
		timeout: DefaultTimeout,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}
