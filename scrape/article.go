package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newsgrab/newsgrab"
)

// ArticleService extracts a single article from an arbitrary page without a
// selector profile.
type ArticleService struct {
	Fetcher newsgrab.Fetcher
	Generic newsgrab.Extractor

	// Fallback, when set, supplies title and body for pages the generic
	// pass cannot handle.
	Fallback newsgrab.ContentExtractor

	// Converter, when set, renders the body as Markdown on request.
	Converter newsgrab.Converter

	// Limiter, when set, gates the fetch per domain.
	Limiter newsgrab.DomainLimiter

	Logger  *slog.Logger
	Timeout time.Duration
}

// Extract fetches pageURL and extracts one best-effort article record.
// When markdown is true the body is rendered as Markdown.
func (s *ArticleService) Extract(ctx context.Context, pageURL string, markdown bool) (*newsgrab.Article, error) {
	u, err := parseRequestURL(pageURL)
	if err != nil {
		return nil, err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, newsgrab.Errorf(newsgrab.EUNAVAILABLE, "rate limit wait for %s: %v", u.Host, err)
		}
	}

	resp, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == 403 {
		return nil, newsgrab.Errorf(newsgrab.EBLOCKED, "access denied by %s", u.Host)
	}
	if resp.StatusCode != 200 {
		return nil, newsgrab.StatusErrorf(resp.StatusCode, "upstream returned status %d", resp.StatusCode)
	}

	article, err := s.Generic.Extract(resp.Body, pageURL)
	if err != nil || article.Body == "" || markdown {
		if fallback := s.extractFallback(resp.Body, pageURL, u.Host, markdown); fallback != nil {
			if article == nil || err != nil {
				article = fallback
			} else {
				article.Body = fallback.Body
			}
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// extractFallback runs the content extractor over the page and builds a
// record from its result. Returns nil when the fallback cannot produce a
// usable body.
func (s *ArticleService) extractFallback(html, pageURL, host string, markdown bool) *newsgrab.Article {
	if s.Fallback == nil {
		return nil
	}

	result, err := s.Fallback.Extract(html)
	if err != nil {
		s.logger().Debug("fallback extraction failed", "url", pageURL, "error", err)
		return nil
	}
	if result.Title == "" {
		return nil
	}

	body := result.ContentText
	if markdown && s.Converter != nil && result.ContentHTML != "" {
		if md, err := s.Converter.Convert(result.ContentHTML); err == nil {
			body = strings.TrimSpace(md)
		} else {
			s.logger().Debug("markdown conversion failed", "url", pageURL, "error", err)
		}
	}
	if body == "" {
		return nil
	}

	author := result.Author
	if author == "" {
		author = "Unknown"
	}
	published := result.PublishedAt
	if published.IsZero() {
		published = time.Now().UTC()
	}

	return &newsgrab.Article{
		ID:          uuid.NewString(),
		Title:       result.Title,
		Author:      author,
		PublishedAt: published,
		Source:      host,
		URL:         pageURL,
		Body:        body,
	}
}

func (s *ArticleService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
