// Package http provides the HTTP implementation of newsgrab.Fetcher with
// browser-like request headers and a tolerant status-acceptance policy, plus
// sitemap-based article URL discovery.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/newsgrab/newsgrab"
)

// DefaultFetchTimeout is the default timeout for a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mimics a desktop browser. Many news sites return 403 to
// anything that identifies itself as a bot.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements newsgrab.Fetcher at compile time.
var _ newsgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP requests. It does not execute
// JavaScript; pages that render client-side yield whatever the server sent.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request for url. Statuses in [200,500) are returned
// to the caller so it can inspect 403/404 and friends; statuses >= 500 and
// transport failures are EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsgrab.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid request URL %q: %v", url, err)
	}

	setBrowserHeaders(req, f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "timeout fetching %s", url)
		}
		return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "server error %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "reading body from %s: %v", url, err)
	}

	return &newsgrab.Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// setBrowserHeaders applies the header set news sites expect from a real
// browser. Every outbound request goes through this, sitemap and robots.txt
// fetches included; sites that 403 bots do so on those paths too.
func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
