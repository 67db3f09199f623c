// Package mock provides function-field mock implementations of the newsgrab
// domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsgrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*newsgrab.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsgrab.Response, error) {
	return f.FetchFn(ctx, url)
}

var _ newsgrab.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsgrab.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
