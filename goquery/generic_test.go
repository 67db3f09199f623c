package goquery_test

import (
	"testing"
	"time"

	"github.com/newsgrab/newsgrab"
	"github.com/newsgrab/newsgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts full article from common markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Storm Closes Coastal Highway</h1>
<div class="byline">Dana Reyes</div>
<time datetime="2024-03-15T08:30:00Z">March 15, 2024</time>
<img src="https://example.com/storm.jpg">
<div class="article-body">
<p>A powerful storm closed the coastal highway overnight.</p>
<p>Crews expect to reopen the road by the weekend.</p>
</div>
</body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/storm")

		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.Equal(t, "Storm Closes Coastal Highway", article.Title)
		assert.Equal(t, "Dana Reyes", article.Author)
		assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), article.PublishedAt)
		assert.Equal(t, "example.com", article.Source)
		assert.Equal(t, "https://example.com/news/storm", article.URL)
		assert.Equal(t, "https://example.com/storm.jpg", article.ImageURL)
		assert.Contains(t, article.Body, "coastal highway")
		assert.Contains(t, article.Body, "reopen the road")
	})

	t.Run("falls back to og:title when no h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:title" content="Quiet Launch for New Ferry">
</head><body><p>Body.</p></body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/ferry")

		require.NoError(t, err)
		assert.Equal(t, "Quiet Launch for New Ferry", article.Title)
	})

	t.Run("no title is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Just a paragraph.</p></body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		_, err := ext.Extract(html, "https://example.com/news/x")

		assert.Equal(t, newsgrab.ENOTFOUND, newsgrab.ErrorCode(err))
	})

	t.Run("missing author defaults to Unknown", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Headline</h1></body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")

		require.NoError(t, err)
		assert.Equal(t, "Unknown", article.Author)
	})

	t.Run("author selectors use first match", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Headline</h1>
<span itemprop="author">First Byline</span>
<div class="byline">Second Byline</div>
</body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")

		require.NoError(t, err)
		assert.Equal(t, "First Byline", article.Author)
	})

	t.Run("reads author from meta tag content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="author" content="Wire Desk">
</head><body><h1>Headline</h1></body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")

		require.NoError(t, err)
		assert.Equal(t, "Wire Desk", article.Author)
	})

	t.Run("datetime attribute beats display text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Headline</h1>
<time datetime="2024-06-01T12:00:00Z">not a parseable date</time>
</body></html>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), article.PublishedAt)
	})

	t.Run("unparseable date falls back to now", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Headline</h1>
<div class="date">sometime recently</div>
</body></html>`

		before := time.Now().UTC()
		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")
		after := time.Now().UTC()

		require.NoError(t, err)
		assert.False(t, article.PublishedAt.Before(before))
		assert.False(t, article.PublishedAt.After(after))
	})

	t.Run("malformed markup still parses leniently", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Bare Headline</h1><p>Paragraph without a closing tag<div class="byline">Sam Ortiz</div>`

		ext := goquery.NewGenericExtractor(strictDates(t))
		article, err := ext.Extract(html, "https://example.com/news/x")

		require.NoError(t, err)
		assert.Equal(t, "Bare Headline", article.Title)
		assert.Equal(t, "Sam Ortiz", article.Author)
	})
}
