package oura

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client used for requests.
// If this is not provided, a default http.Client with a 30 second timeout is used.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// It has no effect on a client supplied through WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.timeout = d
	}
}

// WithBaseURL overrides the default Oura API base URL.
// This is primarily useful for testing or connecting to a proxy.
func WithBaseURL(url string) Option {
	return func(client *Client) {
		client.baseURL = url
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// WithClock sets the function used to determine "today" when a DateRange
// leaves a bound open.
func WithClock(now func() time.Time) Option {
	return func(client *Client) {
		client.now = now
	}
}

// WithRateLimit paces outgoing requests with a token bucket of the given
// rate and burst. Calls block until a token is available or the context is
// done. Pacing is disabled by default.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(client *Client) {
		client.pacer = newPacer(limit, burst)
	}
}
