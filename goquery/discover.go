package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/newsgrab/newsgrab"
)

var _ newsgrab.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer finds candidate article links on a list page using the
// profile's container selectors, with a whole-document anchor scan as a
// recall-maximizing fallback.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks returns deduplicated absolute article URLs found in html,
// resolved against baseURL, in document order. Anchors whose hrefs fail to
// resolve or don't look like article URLs are skipped. When no container
// selector yields a link, every anchor in the document is scanned instead.
// A limit > 0 caps the number of links returned.
func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string, profile *newsgrab.Profile, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	collect := func(anchors *goquery.Selection) {
		anchors.Each(func(_ int, a *goquery.Selection) {
			if limit > 0 && len(links) >= limit {
				return
			}
			href, ok := a.Attr("href")
			if !ok || strings.TrimSpace(href) == "" {
				return
			}
			resolved, err := newsgrab.ResolveLink(href, baseURL)
			if err != nil {
				return
			}
			if !newsgrab.LooksLikeArticle(resolved) {
				return
			}
			if seen[resolved] {
				return
			}
			seen[resolved] = true
			links = append(links, resolved)
		})
	}

	for _, selector := range profile.Article {
		collect(doc.Find(selector).Find("a[href]"))
	}

	// The general approach: when no container matched, scan every anchor.
	if len(links) == 0 {
		collect(doc.Find("a[href]"))
	}

	return links, nil
}
