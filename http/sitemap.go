package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/newsgrab/newsgrab"
)

// maxSitemapDepth bounds sitemapindex recursion.
const maxSitemapDepth = 3

// Ensure SitemapService implements newsgrab.SitemapService at compile time.
var _ newsgrab.SitemapService = (*SitemapService)(nil)

// SitemapService discovers article URLs from a site's sitemaps. It serves as
// a secondary discovery source for list pages that hide their article links
// behind scripted carousels.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, a client with the default fetch timeout is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds article-like URLs in the site's sitemaps. Sitemap
// locations come from robots.txt Sitemap: directives, falling back to
// /sitemap.xml. Only URLs passing newsgrab.LooksLikeArticle are returned,
// deduplicated, capped at limit when limit > 0. An absent sitemap is not an
// error; it yields an empty slice.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid base URL %q", baseURL)
	}

	// Sitemaps live at the domain root regardless of the list page's path.
	root := *base
	root.Path = ""
	root.RawQuery = ""

	sitemapURLs := s.findSitemapURLs(ctx, &root)
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var articles []string

	for _, sitemapURL := range sitemapURLs {
		urls, err := s.processSitemap(ctx, sitemapURL, seenSitemaps, 0)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, u := range urls {
			if limit > 0 && len(articles) >= limit {
				return articles, nil
			}
			if seenURLs[u] || !newsgrab.LooksLikeArticle(u) {
				continue
			}
			seenURLs[u] = true
			articles = append(articles, u)
		}
	}

	return articles, nil
}

// findSitemapURLs discovers sitemap locations from robots.txt, falling back
// to /sitemap.xml when robots.txt names none.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if s.urlExists(ctx, sitemapURL.String()) {
		return []string{sitemapURL.String()}
	}

	return nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil
	}

	return sitemaps
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents. Nested indexes recurse up to maxSitemapDepth.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	switch root.Tag {
	case "urlset":
		return locValues(root, "url"), nil
	case "sitemapindex":
		var urls []string
		for _, nested := range locValues(root, "sitemap") {
			nestedURLs, err := s.processSitemap(ctx, nested, seen, depth+1)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			urls = append(urls, nestedURLs...)
		}
		return urls, nil
	}

	return nil, nil
}

// locValues collects the loc child text of every childTag element under root.
func locValues(root *etree.Element, childTag string) []string {
	var urls []string
	for _, el := range root.SelectElements(childTag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid sitemap URL %q: %v", targetURL, err)
	}
	setBrowserHeaders(req, DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "fetch %s: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, newsgrab.StatusErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks whether a URL answers 200 to a HEAD request.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false
	}
	setBrowserHeaders(req, DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
