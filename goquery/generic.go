package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.Extractor = (*GenericExtractor)(nil)

// genericAuthorSelectors locate bylines without host-specific knowledge.
// The generic pass uses first-match semantics throughout.
var genericAuthorSelectors = []string{
	"[itemprop='author']",
	"[rel='author']",
	".byline",
	".author",
	"meta[name='author']",
}

// genericDateSelectors locate publish dates without host-specific knowledge.
var genericDateSelectors = []string{
	"time[datetime]",
	"[itemprop='datePublished']",
	"meta[property='article:published_time']",
	".date",
	".published",
}

// GenericExtractor performs a host-agnostic best-effort extraction for
// single-article requests, where no selector profile applies.
type GenericExtractor struct {
	dates newsgrab.DateNormalizer
	now   func() time.Time
}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor(dates newsgrab.DateNormalizer) *GenericExtractor {
	return &GenericExtractor{dates: dates, now: time.Now}
}

// Extract pulls the first h1 (falling back to og:title), the first
// byline-looking element, the first recognizable date, the first valid
// image, and the body text out of an article page.
func (e *GenericExtractor) Extract(html, pageURL string) (*newsgrab.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		content, _ := doc.Find("meta[property='og:title']").Attr("content")
		title = strings.TrimSpace(content)
	}
	if title == "" {
		return nil, newsgrab.Errorf(newsgrab.ENOTFOUND, "no title found at %s", pageURL)
	}

	author := firstMatchText(doc, genericAuthorSelectors)
	if author == "" {
		author = "Unknown"
	}

	published := e.now().UTC()
	if raw := firstMatchDate(doc, genericDateSelectors); raw != "" {
		if t, err := e.dates.Normalize(raw); err == nil {
			published = t
		}
	}

	return &newsgrab.Article{
		ID:          uuid.NewString(),
		Title:       title,
		Author:      author,
		PublishedAt: published,
		Source:      hostOf(pageURL),
		URL:         pageURL,
		ImageURL:    extractImage(doc, nil, pageURL),
		Body:        extractBody(doc),
	}, nil
}

// firstMatchText returns the value of the first selector with a non-empty
// match, in selector-list order.
func firstMatchText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := elementText(doc.Find(selector).First()); text != "" {
			return text
		}
	}
	return ""
}

// firstMatchDate is firstMatchText with one refinement: a time element's
// datetime attribute beats its display text.
func firstMatchDate(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if dt := strings.TrimSpace(sel.AttrOr("datetime", "")); dt != "" {
			return dt
		}
		if text := elementText(sel); text != "" {
			return text
		}
	}
	return ""
}
