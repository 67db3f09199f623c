// Package htmltomarkdown renders extracted article content as Markdown for
// callers that want portable text instead of page markup.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/newsgrab/newsgrab"
)

// Ensure Converter implements newsgrab.Converter at compile time.
var _ newsgrab.Converter = (*Converter)(nil)

// Converter renders article body HTML as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter with CommonMark and table support.
// The table plugin matters for news content; data tables in article
// bodies would otherwise flatten into word soup.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as Markdown. Blank input is EINVALID; an article
// body should never be empty by the time it reaches conversion.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newsgrab.Errorf(newsgrab.EINVALID, "empty article content")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return md, nil
}
