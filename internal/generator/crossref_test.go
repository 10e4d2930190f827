package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
)

// =============================================================================
// TOKEN SET
// =============================================================================

func TestTokenSet_RecordsInOrderWithoutDuplicates(t *testing.T) {
	ts := NewTokenSet()

	assert.True(t, ts.Record("RU1"))
	assert.True(t, ts.Record("RU2"))
	assert.False(t, ts.Record("RU1"), "duplicate must not be re-added")

	assert.Equal(t, []string{"RU1", "RU2"}, ts.Tokens())
	assert.Equal(t, 2, ts.Len())
	assert.True(t, ts.Contains("RU2"))
	assert.False(t, ts.Contains("RU3"))
}

func TestTokenSet_TokensReturnsACopy(t *testing.T) {
	ts := NewTokenSet()
	ts.Record("a")

	got := ts.Tokens()
	got[0] = "mutated"

	assert.Equal(t, []string{"a"}, ts.Tokens())
}

// =============================================================================
// ALTERNATING-PAIR POLICY
// =============================================================================

func TestAlternatingPair_ParityBySequence(t *testing.T) {
	p := AlternatingPair{First: "RU1", Second: "RU2"}
	used := NewTokenSet()

	for seq := 1; seq <= 5; seq++ {
		token, err := p.TokenFor(seq, used)
		require.NoError(t, err)

		if seq%2 == 1 {
			assert.Equal(t, "RU1", token, "odd instance %d", seq)
		} else {
			assert.Equal(t, "RU2", token, "even instance %d", seq)
		}
	}

	assert.Equal(t, 2, used.Len())
}

func TestAlternatingPair_DerivedCanonicalOrder(t *testing.T) {
	p := AlternatingPair{First: "RU1", Second: "RU2"}

	// Only the even label used: one derived instance.
	evenOnly := NewTokenSet()
	evenOnly.Record("RU2")
	assert.Equal(t, []string{"RU2"}, p.DerivedTokens(evenOnly))

	// Both used, recorded Second-first: derived order is still First, Second.
	reversed := NewTokenSet()
	reversed.Record("RU2")
	reversed.Record("RU1")
	assert.Equal(t, []string{"RU1", "RU2"}, p.DerivedTokens(reversed))

	// Nothing used, nothing derived.
	assert.Empty(t, p.DerivedTokens(NewTokenSet()))
}

// =============================================================================
// UNIQUE-DRAW POLICY
// =============================================================================

func newDrawCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.NewSource(11, nil))
	require.NoError(t, err)
	return cat
}

func TestUniqueDraw_ProducesDistinctTokens(t *testing.T) {
	cat := newDrawCatalog(t)
	p := &UniqueDraw{FieldID: "SHCAN448", Catalog: cat}
	used := NewTokenSet()

	seen := make(map[string]bool)
	for seq := 1; seq <= 20; seq++ {
		token, err := p.TokenFor(seq, used)
		require.NoError(t, err)
		require.False(t, seen[token], "token %q drawn twice", token)
		seen[token] = true
	}

	// Derived instances follow first-produced order.
	assert.Equal(t, used.Tokens(), p.DerivedTokens(used))
	assert.Equal(t, 20, used.Len())
}

func TestUniqueDraw_ErrorsWhenTokenSpaceExhausted(t *testing.T) {
	cat := newDrawCatalog(t)

	// SHCCN478 draws from {1, 2}; the third instance cannot find a fresh
	// token no matter how many attempts it gets.
	p := &UniqueDraw{FieldID: "SHCCN478", Catalog: cat, MaxAttempts: 50}
	used := NewTokenSet()

	var drawn int
	for seq := 1; seq <= 2; seq++ {
		if _, err := p.TokenFor(seq, used); err == nil {
			drawn++
		}
	}
	require.Equal(t, 2, drawn)

	_, err := p.TokenFor(3, used)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 50 attempts")
}

// =============================================================================
// POLICY SELECTION
// =============================================================================

func TestNewPolicy(t *testing.T) {
	cat := newDrawCatalog(t)

	alt, err := NewPolicy("alternating", cat)
	require.NoError(t, err)
	assert.Equal(t, PolicyAlternating, alt.Name())

	// Empty means the default.
	def, err := NewPolicy("", cat)
	require.NoError(t, err)
	assert.Equal(t, PolicyAlternating, def.Name())

	uniq, err := NewPolicy("unique", cat)
	require.NoError(t, err)
	assert.Equal(t, PolicyUnique, uniq.Name())

	_, err = NewPolicy("round-robin", cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cross-reference policy")
}
