package newsgrab

import "context"

// Response holds the outcome of fetching a single page.
type Response struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves pages over the network.
type Fetcher interface {
	// Fetch performs a GET request for url. Responses with statuses in
	// [200,500) are returned to the caller for inspection; statuses >= 500
	// and transport failures (DNS, refused connections, timeouts) are
	// EUNAVAILABLE errors. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)
}

// LinkDiscoverer finds candidate article links on a list page.
type LinkDiscoverer interface {
	// DiscoverLinks returns deduplicated absolute article URLs found in
	// html, resolved against baseURL, in document order. A limit > 0 caps
	// the number of links returned.
	DiscoverLinks(html, baseURL string, profile *Profile, limit int) ([]string, error)
}

// SitemapService discovers article URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds article-like URLs in the site's sitemaps,
	// located via robots.txt directives with a /sitemap.xml fallback.
	// A limit > 0 caps the number of URLs returned.
	DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error)
}
