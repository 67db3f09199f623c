package mock

import (
	"context"

	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of newsgrab.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, baseURL string, profile *newsgrab.Profile, limit int) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string, profile *newsgrab.Profile, limit int) ([]string, error) {
	return d.DiscoverLinksFn(html, baseURL, profile, limit)
}

var _ newsgrab.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of newsgrab.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, limit)
}

var _ newsgrab.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of newsgrab.ProfileRegistry.
type ProfileRegistry struct {
	ProfileForFn func(host string) *newsgrab.Profile
}

func (r *ProfileRegistry) ProfileFor(host string) *newsgrab.Profile {
	return r.ProfileForFn(host)
}
