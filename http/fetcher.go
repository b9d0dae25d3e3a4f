// Package http reads bookmarked pages over plain HTTP, either directly
// (Fetcher) or through a remote reader service that returns page text
// (ReaderService).
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/linkvault"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response is read.
const DefaultMaxBodySize = 5 << 20

// UserAgent identifies linkvault to the sites it reads.
const UserAgent = "linkvault/1.0 (+https://github.com/fwojciec/linkvault)"

// Ensure Fetcher implements linkvault.Fetcher at compile time.
var _ linkvault.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with plain HTTP requests. It does not run
// JavaScript; use rod.Fetcher for pages that render client-side.
type Fetcher struct {
	client      *http.Client
	maxBodySize int64
}

// Option configures a Fetcher or ReaderService.
type Option func(*options)

type options struct {
	timeout     time.Duration
	maxBodySize int64
	client      *http.Client
}

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		o.maxBodySize = n
	}
}

// WithClient replaces the HTTP client. The timeout option is ignored when
// a client is supplied.
func WithClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func buildOptions(opts []Option) options {
	o := options{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	return o
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := buildOptions(opts)
	return &Fetcher{
		client:      o.client,
		maxBodySize: o.maxBodySize,
	}
}

// Fetch retrieves the HTML served at url.
// Returns EUNAVAILABLE on transport failures and non-2xx responses.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return get(ctx, f.client, url, "text/html,application/xhtml+xml", f.maxBodySize)
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// get performs a GET request and returns at most limit bytes of the body.
func get(ctx context.Context, client *http.Client, url, accept string, limit int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", linkvault.Errorf(linkvault.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", linkvault.Errorf(linkvault.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", linkvault.Errorf(linkvault.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return "", linkvault.Errorf(linkvault.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}
