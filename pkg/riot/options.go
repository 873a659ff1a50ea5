package riot

import (
	"net/http"
	"strings"
	"time"
)

// Option applies a configuration option to the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. A client passed through
// WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRegionalBaseURL overrides the account/match host.
func WithRegionalBaseURL(base string) Option {
	return func(c *HTTPClient) {
		if base != "" {
			c.regionalBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithPlatformBaseURL overrides the summoner/league host.
func WithPlatformBaseURL(base string) Option {
	return func(c *HTTPClient) {
		if base != "" {
			c.platformBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithDefaultTagLine sets the tag line used for Riot IDs without "#".
func WithDefaultTagLine(tag string) Option {
	return func(c *HTTPClient) {
		if tag != "" {
			c.defaultTagLine = tag
		}
	}
}

// WithRequestObserver registers a callback invoked after every request.
func WithRequestObserver(observe RequestObserver) Option {
	return func(c *HTTPClient) {
		if observe != nil {
			c.observe = observe
		}
	}
}
