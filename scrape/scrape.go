// Package scrape provides the article scraping pipeline. It coordinates
// fetching a list page, discovering article links through selector
// profiles, and fetching and extracting each article concurrently.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/newsgrab/newsgrab"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxArticles caps link discovery and concurrent article
	// fetches per request.
	DefaultMaxArticles = 10

	// DefaultTimeout bounds the whole pipeline for one request.
	DefaultTimeout = 60 * time.Second
)

// Scraper orchestrates the list-page scraping pipeline.
type Scraper struct {
	Fetcher    newsgrab.Fetcher
	Profiles   newsgrab.ProfileRegistry
	Discoverer newsgrab.LinkDiscoverer
	Extractor  newsgrab.ArticleExtractor

	// Sitemaps, when set, supplies candidate URLs after page discovery
	// comes up empty.
	Sitemaps newsgrab.SitemapService

	// Limiter, when set, gates every outbound fetch per domain.
	Limiter newsgrab.DomainLimiter

	Logger *slog.Logger

	MaxArticles int
	Timeout     time.Duration
}

// articleResult holds the outcome of processing one candidate URL.
type articleResult struct {
	url      string
	article  *newsgrab.Article
	bodyHash uint64
	err      error
}

// ScrapeList fetches listURL, discovers article links on it, and returns the
// extracted articles in discovery order. Individual article failures are
// logged and skipped; only list-page failures and an empty final result are
// terminal.
func (s *Scraper) ScrapeList(ctx context.Context, listURL string) ([]*newsgrab.Article, error) {
	base, err := parseRequestURL(listURL)
	if err != nil {
		return nil, err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.fetch(ctx, listURL, base.Host)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == 403 {
		return nil, newsgrab.Errorf(newsgrab.EBLOCKED, "access denied by %s", base.Host)
	}
	if resp.StatusCode != 200 {
		return nil, newsgrab.StatusErrorf(resp.StatusCode, "upstream returned status %d", resp.StatusCode)
	}

	maxArticles := s.MaxArticles
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}

	profile := s.Profiles.ProfileFor(base.Host)
	links, err := s.Discoverer.DiscoverLinks(resp.Body, listURL, profile, maxArticles)
	if err != nil {
		return nil, err
	}

	if len(links) == 0 && s.Sitemaps != nil {
		links, err = s.Sitemaps.DiscoverURLs(ctx, listURL, maxArticles)
		if err != nil {
			s.logger().Debug("sitemap discovery failed", "url", listURL, "error", err)
			links = nil
		}
	}

	articles := s.fetchArticles(ctx, links, profile)
	if len(articles) == 0 {
		return nil, newsgrab.Errorf(newsgrab.ENOTFOUND, "no articles found at %s", listURL)
	}
	return articles, nil
}

// fetchArticles fetches and extracts every candidate URL concurrently,
// preserving discovery order in the result. Failed candidates are skipped.
// Candidates whose fetched bodies hash identically collapse to one record.
func (s *Scraper) fetchArticles(ctx context.Context, links []string, profile *newsgrab.Profile) []*newsgrab.Article {
	if len(links) == 0 {
		return nil
	}

	results := make([]articleResult, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInt(s.MaxArticles, DefaultMaxArticles))
	for i, link := range links {
		g.Go(func() error {
			results[i] = s.processArticle(gctx, link, profile)
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[uint64]bool)
	articles := make([]*newsgrab.Article, 0, len(links))
	for _, result := range results {
		if result.err != nil {
			s.logger().Debug("skipping article", "url", result.url, "error", result.err)
			continue
		}
		if seen[result.bodyHash] {
			s.logger().Debug("skipping duplicate article", "url", result.url)
			continue
		}
		seen[result.bodyHash] = true
		articles = append(articles, result.article)
	}
	return articles
}

// processArticle fetches and extracts one candidate URL.
func (s *Scraper) processArticle(ctx context.Context, articleURL string, profile *newsgrab.Profile) articleResult {
	result := articleResult{url: articleURL}

	u, err := url.Parse(articleURL)
	if err != nil {
		result.err = newsgrab.Errorf(newsgrab.EINVALID, "invalid article URL %q: %v", articleURL, err)
		return result
	}

	resp, err := s.fetch(ctx, articleURL, u.Host)
	if err != nil {
		result.err = err
		return result
	}
	if resp.StatusCode != 200 {
		result.err = newsgrab.StatusErrorf(resp.StatusCode, "upstream returned status %d", resp.StatusCode)
		return result
	}

	article, err := s.Extractor.ExtractArticle(resp.Body, articleURL, profile)
	if err != nil {
		result.err = err
		return result
	}

	result.article = article
	result.bodyHash = xxhash.Sum64String(resp.Body)
	return result
}

// fetch performs a rate-limited GET for the given URL.
func (s *Scraper) fetch(ctx context.Context, rawURL, host string) (*newsgrab.Response, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, host); err != nil {
			return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "rate limit wait for %s: %v", host, err)
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// parseRequestURL validates that rawURL is an absolute http(s) URL.
func parseRequestURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "url %q missing host", rawURL)
	}
	return u, nil
}

func maxInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
