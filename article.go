package newsgrab

import (
	"context"
	"time"
)

// Article represents one extracted news article. Records are immutable once
// built and live only for the duration of the request that produced them.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Body        string    `json:"content,omitempty"`
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// ArticleExtractor extracts structured article fields from an article page
// using a selector profile.
type ArticleExtractor interface {
	// ExtractArticle resolves each field of the article via the profile's
	// selector lists. Returns ENOTFOUND when no title can be resolved;
	// such pages produce no record.
	ExtractArticle(html, articleURL string, profile *Profile) (*Article, error)
}

// Extractor performs a host-agnostic best-effort extraction for pages
// without the benefit of a selector profile.
type Extractor interface {
	Extract(html, pageURL string) (*Article, error)
}

// ExtractResult holds content extracted by a fallback content extractor.
type ExtractResult struct {
	Title       string
	Author      string
	PublishedAt time.Time

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string

	// ContentText is the plain-text rendering of ContentHTML.
	ContentText string
}

// ContentExtractor extracts main content from HTML pages, removing boilerplate.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// DateNormalizer converts loosely formatted date strings into timestamps.
type DateNormalizer interface {
	// Normalize parses raw into a UTC timestamp. Returns an error when no
	// date can be recognized anywhere in the string; the caller decides
	// what to substitute.
	Normalize(raw string) (time.Time, error)
}

// Converter converts HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
