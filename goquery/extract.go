package goquery

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.ArticleExtractor = (*ArticleExtractor)(nil)

// imageSourceAttrs lists candidate image source attributes in priority order.
// Lazy-loading libraries stash the real URL in data-* attributes and leave a
// placeholder (often an inline SVG) in src.
var imageSourceAttrs = []string{"src", "data-src", "data-lazy-src", "data-original", "data-url"}

// bodySelectors lists article body containers across the naming conventions
// of common publishing platforms, most specific first.
var bodySelectors = []string{
	".article-body",
	".article-content",
	".post-content",
	".entry-content",
	".story-body",
	".content-body",
	"[itemprop='articleBody']",
	"article",
}

// strippedSelectors are removed from a body container before text extraction.
const strippedSelectors = "script, style, noscript, iframe, " +
	".ad, .ads, [class*='advert'], .share, [class*='share-'], .related, [class*='related-']"

// paragraphSelectors is the fallback source of body text when no container
// matches: paragraphs under common article wrappers.
const paragraphSelectors = "article p, .article p, .post p, .content p, main p"

// ArticleExtractor extracts structured article fields using selector profiles.
type ArticleExtractor struct {
	dates newsgrab.DateNormalizer
	now   func() time.Time
}

// NewArticleExtractor creates an ArticleExtractor. The normalizer converts
// raw date strings into timestamps; extraction time stands in when it fails.
func NewArticleExtractor(dates newsgrab.DateNormalizer) *ArticleExtractor {
	return &ArticleExtractor{dates: dates, now: time.Now}
}

// ExtractArticle resolves each field of the article via the profile's
// selector lists. Returns ENOTFOUND when no title can be resolved.
func (e *ArticleExtractor) ExtractArticle(html, articleURL string, profile *newsgrab.Profile) (*newsgrab.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	title := lastMatchText(doc, profile.Title)
	if title == "" {
		title = headingFallback(doc)
	}
	if title == "" {
		return nil, newsgrab.Errorf(newsgrab.ENOTFOUND, "no title found at %s", articleURL)
	}

	author := lastMatchText(doc, profile.Author)
	if author == "" {
		author = "Unknown"
	}

	return &newsgrab.Article{
		ID:          uuid.NewString(),
		Title:       title,
		Author:      author,
		PublishedAt: e.normalizeDate(lastMatchText(doc, profile.Date)),
		Source:      hostOf(articleURL),
		URL:         articleURL,
		ImageURL:    extractImage(doc, profile.Image, articleURL),
		Body:        extractBody(doc),
	}, nil
}

// lastMatchText iterates every selector in order and overwrites the running
// value on each non-empty match, so the LAST matching selector wins. Image
// extraction intentionally uses the opposite policy (see extractImage); host
// profiles are ordered around this asymmetry, so don't unify the two.
func lastMatchText(doc *goquery.Document, selectors []string) string {
	var value string
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := elementText(sel); text != "" {
				value = text
			}
		})
	}
	return value
}

// elementText returns the value of a matched element: the content attribute
// for meta tags, trimmed text for anything else.
func elementText(sel *goquery.Selection) string {
	if goquery.NodeName(sel) == "meta" {
		content, _ := sel.Attr("content")
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(sel.Text())
}

// headingFallback returns the first non-empty heading text in document order.
func headingFallback(doc *goquery.Document) string {
	var title string
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			title = text
			return false
		}
		return true
	})
	return title
}

// normalizeDate converts a raw date string into a UTC timestamp, substituting
// the extraction time when the string is empty or unparseable.
func (e *ArticleExtractor) normalizeDate(raw string) time.Time {
	if raw != "" {
		if t, err := e.dates.Normalize(raw); err == nil {
			return t
		}
	}
	return e.now().UTC()
}

// extractImage returns the first valid image URL. Unlike the text fields the
// FIRST matching selector wins here; on a selector whose element yields no
// usable source the search moves on, and when no selector succeeds every img
// in the document is scanned with the same attribute priority.
func extractImage(doc *goquery.Document, selectors []string, baseURL string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if src := imageFromElement(sel, baseURL); src != "" {
			return src
		}
	}

	var found string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if src := imageFromElement(sel, baseURL); src != "" {
			found = src
			return false
		}
		return true
	})
	return found
}

// imageFromElement tries the candidate source attributes in priority order,
// then the first URL token of data-srcset.
func imageFromElement(sel *goquery.Selection, baseURL string) string {
	for _, attr := range imageSourceAttrs {
		if src := validImageURL(sel.AttrOr(attr, ""), baseURL); src != "" {
			return src
		}
	}
	if srcset := sel.AttrOr("data-srcset", ""); srcset != "" {
		// data-srcset holds "url width, url width, ..."
		if fields := strings.Fields(strings.SplitN(srcset, ",", 2)[0]); len(fields) > 0 {
			return validImageURL(fields[0], baseURL)
		}
	}
	return ""
}

// validImageURL resolves src against baseURL and returns the absolute URL if
// it passes the image heuristics, or "" otherwise.
func validImageURL(src, baseURL string) string {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") || strings.Contains(strings.ToLower(src), "svg") {
		return ""
	}
	resolved, err := newsgrab.ResolveLink(src, baseURL)
	if err != nil || !newsgrab.LooksLikeImage(resolved) {
		return ""
	}
	return resolved
}

// extractBody returns the article body text from the first matching
// container, with scripts, embeds, and ad/share/related blocks removed.
// When no container matches, paragraph text under common article wrappers
// is stitched together instead.
func extractBody(doc *goquery.Document) string {
	for _, selector := range bodySelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		clone := container.Clone()
		clone.Find(strippedSelectors).Remove()
		if text := strings.TrimSpace(clone.Text()); text != "" {
			return text
		}
	}

	var paragraphs []string
	doc.Find(paragraphSelectors).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}

// hostOf returns the hostname of an absolute URL, or "" when unparseable.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
