package trafilatura_test

import (
	"testing"

	"github.com/newsgrab/newsgrab"
	"github.com/newsgrab/newsgrab/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsgrab.ContentExtractor at compile time.
var _ newsgrab.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>City Approves New Transit Plan - Example News</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>City Approves New Transit Plan</h1>
<p>The city council voted on Tuesday to approve a sweeping new transit plan
that will add three light rail lines over the next decade.</p>
<p>Supporters say the plan addresses decades of underinvestment in public
transportation across the metropolitan area.</p>
</article>
<aside>Related stories</aside>
<footer>Copyright 2024 Example News</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentText, "transit plan")
		assert.NotContains(t, result.ContentText, "Copyright 2024")
	})

	t.Run("empty input is EINVALID", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")
		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})
}
