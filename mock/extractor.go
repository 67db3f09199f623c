package mock

import (
	"time"

	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsgrab.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html, articleURL string, profile *newsgrab.Profile) (*newsgrab.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(html, articleURL string, profile *newsgrab.Profile) (*newsgrab.Article, error) {
	return e.ExtractArticleFn(html, articleURL, profile)
}

var _ newsgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsgrab.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*newsgrab.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*newsgrab.Article, error) {
	return e.ExtractFn(html, pageURL)
}

var _ newsgrab.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of newsgrab.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*newsgrab.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*newsgrab.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ newsgrab.DateNormalizer = (*DateNormalizer)(nil)

// DateNormalizer is a mock implementation of newsgrab.DateNormalizer.
type DateNormalizer struct {
	NormalizeFn func(raw string) (time.Time, error)
}

func (n *DateNormalizer) Normalize(raw string) (time.Time, error) {
	return n.NormalizeFn(raw)
}

var _ newsgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsgrab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
