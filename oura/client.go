package oura

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	defaultBaseURL   = "https://api.ouraring.com"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "oura-go/1.0"

	tokenParam = "access_token"
)

// Client is the core Oura API client. It holds no mutable state and is safe
// for concurrent use; every call is an independent single GET.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	token      string
	userAgent  string
	now        func() time.Time

	pacer *pacer
}

// NewClient creates a new Oura API client authenticating with the given
// personal access token. The token is not validated and no request is made.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		timeout:   defaultTimeout,
		baseURL:   defaultBaseURL,
		token:     token,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// requestURL builds the absolute URL for ep, carrying the access token and,
// for dated endpoints with a non-nil range, the resolved start and end dates.
func (c *Client) requestURL(ep endpoint, dr *DateRange) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(c.baseURL, "/") + ep.path)
	if err != nil {
		return nil, &URLError{Param: "base url", Value: c.baseURL, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &URLError{Param: "base url", Value: c.baseURL, Err: errNotAbsolute}
	}

	q := u.Query()
	q.Set(tokenParam, c.token)
	if ep.dated && dr != nil {
		dr.encode(q, c.today())
	}
	u.RawQuery = q.Encode()

	return u, nil
}

// get performs a single GET of u and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, u *url.URL) ([]byte, error) {
	safeURL := redactURL(u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &URLError{Param: "request", Value: safeURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, &NetworkError{URL: safeURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the unredacted URL; keep only its cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, &NetworkError{URL: safeURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: safeURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       body,
			URL:        safeURL,
		}
	}

	return body, nil
}

// today returns the current calendar date according to the client's clock.
func (c *Client) today() civil.Date {
	return civil.DateOf(c.now())
}
