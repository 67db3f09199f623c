// Package trafilatura provides a boilerplate-removing content extractor used
// as a fallback when selector-driven extraction finds no usable body.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/newsgrab/newsgrab"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsgrab.ContentExtractor at compile time.
var _ newsgrab.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with boilerplate
// (nav, footer, sidebar, ads) removed.
func (e *Extractor) Extract(rawHTML string) (*newsgrab.ExtractResult, error) {
	if rawHTML == "" {
		return nil, newsgrab.Errorf(newsgrab.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &newsgrab.ExtractResult{
		Title:       result.Metadata.Title,
		Author:      result.Metadata.Author,
		PublishedAt: result.Metadata.Date,
		ContentHTML: contentHTML,
		ContentText: strings.TrimSpace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
