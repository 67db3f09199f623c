package dateparse_test

import (
	"testing"
	"time"

	"github.com/newsgrab/newsgrab"
	"github.com/newsgrab/newsgrab/dateparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Normalizer implements newsgrab.DateNormalizer at compile time.
var _ newsgrab.DateNormalizer = (*dateparse.Normalizer)(nil)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	normalizer := dateparse.NewNormalizer()

	t.Run("ISO date", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("long-form date", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("May 1, 2024")
		require.NoError(t, err)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("RFC3339 timestamp", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("2024-05-01T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), got)
	})

	t.Run("extracts an embedded YMD date", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("Published 2024/5/1 by the newsroom")
		require.NoError(t, err)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("extracts an embedded MDY date", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("Updated on 5/1/2024, 9am")
		require.NoError(t, err)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		t.Parallel()

		got, err := normalizer.Normalize("  2024-05-01  ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("no recognizable date is EINVALID", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "five minutes ago", "lorem ipsum"} {
			_, err := normalizer.Normalize(raw)
			assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err), "%q", raw)
		}
	})
}
