package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests read counters of the shared pattern cache and must not run
// alongside parallel tests that compile patterns.

func TestMatches_KeepsCompiledPattern(t *testing.T) {
	first := Matches(`^first-kept-pattern$`)

	// Push the pattern out of the shared cache.
	for i := range patternCacheSize + 50 {
		_ = Matches(fmt.Sprintf(`^evict-%d$`, i))
	}

	before := patterns.Stats().Misses
	ok, err := first("first-kept-pattern")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, before, patterns.Stats().Misses)
}

func TestMatches_CompilesAtConstruction(t *testing.T) {
	m := Matches(`^constructed-once$`)
	before := patterns.Stats()

	for range 10 {
		ok, err := m("constructed-once")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	after := patterns.Stats()
	assert.Equal(t, before.Misses, after.Misses)
	assert.Equal(t, before.Hits, after.Hits)
}
