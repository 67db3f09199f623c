package newsgrab

import (
	"net/url"
	"regexp"
	"strings"
)

// datePathPattern matches YYYY/MM/DD-shaped path segments, a layout most
// news sites use for permalinks.
var datePathPattern = regexp.MustCompile(`\b\d{4}/\d{1,2}/\d{1,2}\b`)

// imageExtPattern matches raster image extensions, optionally followed by a
// query string.
var imageExtPattern = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|webp)(\?.*)?$`)

// ResolveLink resolves a possibly-relative href against base and returns an
// absolute http(s) URL. An href that already carries an http(s) scheme is
// returned unchanged; non-HTTP schemes (javascript:, mailto:, data:, tel:)
// are rejected with EINVALID since nothing downstream could fetch them.
func ResolveLink(href, base string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", Errorf(EINVALID, "empty href")
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", Errorf(EINVALID, "invalid href %q: %v", href, err)
	}
	if ref.Scheme != "" && ref.Scheme != "http" && ref.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported scheme %q in %q", ref.Scheme, href)
	}
	if ref.IsAbs() {
		return href, nil
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return "", Errorf(EINVALID, "invalid base URL %q", base)
	}
	return b.ResolveReference(ref).String(), nil
}

// LooksLikeArticle reports whether u plausibly points at an article page.
// The heuristic deliberately trades precision for recall: a path containing
// /news/, /article/, /story/, or a YYYY/MM/DD-shaped segment qualifies.
func LooksLikeArticle(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	path := strings.ToLower(parsed.Path)
	if strings.Contains(path, "/news/") ||
		strings.Contains(path, "/article/") ||
		strings.Contains(path, "/story/") {
		return true
	}
	return datePathPattern.MatchString(path)
}

// LooksLikeImage reports whether u plausibly points at a raster image:
// not a data URI, no "svg" anywhere in the URL, and a known raster
// extension at the end of the path (a query string may follow).
func LooksLikeImage(u string) bool {
	if u == "" || strings.HasPrefix(u, "data:") {
		return false
	}
	if strings.Contains(strings.ToLower(u), "svg") {
		return false
	}
	return imageExtPattern.MatchString(u)
}
