package goquery_test

import (
	"testing"

	"github.com/newsgrab/newsgrab"
	"github.com/newsgrab/newsgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Registry implements newsgrab.ProfileRegistry at compile time.
var _ newsgrab.ProfileRegistry = (*goquery.Registry)(nil)

func TestRegistry_ProfileFor(t *testing.T) {
	t.Parallel()

	registry := goquery.NewRegistry()

	t.Run("unknown host gets the default profile", func(t *testing.T) {
		t.Parallel()

		def := registry.ProfileFor("definitely-not-registered.example")
		require.NotNil(t, def)
		assert.NoError(t, def.Validate())

		// Pure lookup: same host, same profile.
		assert.Same(t, def, registry.ProfileFor("definitely-not-registered.example"))
		assert.Same(t, def, registry.ProfileFor("another-unknown.example"))
	})

	t.Run("registered host gets its own profile", func(t *testing.T) {
		t.Parallel()

		def := registry.ProfileFor("unknown.example")
		for _, host := range registry.Hosts() {
			profile := registry.ProfileFor(host)
			require.NotNil(t, profile, host)
			assert.NotSame(t, def, profile, host)
		}
	})

	t.Run("every registered profile is complete", func(t *testing.T) {
		t.Parallel()

		hosts := append(registry.Hosts(), "unknown.example")
		for _, host := range hosts {
			assert.NoError(t, registry.ProfileFor(host).Validate(), host)
		}
	})
}
