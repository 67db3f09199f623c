// Package dateparse normalizes loosely formatted date strings into UTC
// timestamps using the araddon/dateparse library, with a regex-based
// extraction fallback for dates embedded in free text.
package dateparse

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/newsgrab/newsgrab"
)

// Ensure Normalizer implements newsgrab.DateNormalizer at compile time.
var _ newsgrab.DateNormalizer = (*Normalizer)(nil)

// datePatterns extract an embedded date when the whole string fails to
// parse, e.g. "Published 2024-05-01 by staff" or "Updated 5/1/2024".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}`),
}

// Normalizer converts loosely formatted date strings into timestamps.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses raw into a UTC timestamp. The whole string is tried
// first; on failure each date pattern is matched against the string and the
// first matching substring is parsed instead. Returns EINVALID when no date
// can be recognized; the caller decides what to substitute.
func (n *Normalizer) Normalize(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, newsgrab.Errorf(newsgrab.EINVALID, "empty date string")
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.UTC(), nil
	}

	for _, pattern := range datePatterns {
		match := pattern.FindString(raw)
		if match == "" {
			continue
		}
		if t, err := dateparse.ParseAny(match); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, newsgrab.Errorf(newsgrab.EINVALID, "unrecognized date %q", raw)
}
