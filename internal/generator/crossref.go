// =============================================================================
// XML Report Generator - Cross-Reference Coordinator
// =============================================================================
//
// Schedule 2 instances each carry a cross-reference token; the valuation-
// technique family later emits exactly one instance per distinct token. This
// file holds the ordered token set shared between the two families and the
// two token-production policies observed in the field:
//
//   - alternating : the token alternates between two fixed labels by parity
//     of the 1-based sequence number (odd -> RU1, even -> RU2). The derived
//     family gets at most two instances, always RU1 before RU2.
//   - unique      : the token is drawn fresh per instance from the token
//     field's own generation rule, rejecting any draw that collides with a
//     token already used in the document. The derived family gets one
//     instance per source instance, in first-produced order.
//
// Both policies feed the same TokenSet and the derived family consumes them
// identically — only token production differs.
//
// =============================================================================

package generator

import (
	"fmt"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

// =============================================================================
// TOKEN SET
// =============================================================================

// TokenSet is an ordered, de-duplicated sequence of cross-reference tokens.
// It is created empty at generation start and discarded with the run.
type TokenSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTokenSet creates an empty token set.
func NewTokenSet() *TokenSet {
	return &TokenSet{seen: make(map[string]struct{})}
}

// Record appends a token if it has not been seen before.
//
// RETURNS:
//   - true if the token was newly added, false if it was already present.
func (ts *TokenSet) Record(token string) bool {
	if _, dup := ts.seen[token]; dup {
		return false
	}
	ts.seen[token] = struct{}{}
	ts.order = append(ts.order, token)
	return true
}

// Contains reports whether the token has been recorded.
func (ts *TokenSet) Contains(token string) bool {
	_, ok := ts.seen[token]
	return ok
}

// Tokens returns the recorded tokens in production order.
func (ts *TokenSet) Tokens() []string {
	out := make([]string, len(ts.order))
	copy(out, ts.order)
	return out
}

// Len returns the number of distinct tokens recorded.
func (ts *TokenSet) Len() int {
	return len(ts.order)
}

// =============================================================================
// POLICY INTERFACE
// =============================================================================

// Policy names accepted by NewPolicy and the CLI/profile layer.
const (
	PolicyAlternating = "alternating"
	PolicyUnique      = "unique"
)

// Policy produces the cross-reference token for each source instance and
// decides which tokens the derived family instantiates, in which order.
type Policy interface {
	// Name returns the policy's configuration name.
	Name() string

	// TokenFor produces and records the token for the source instance with
	// the given 1-based sequence number.
	TokenFor(seq int, used *TokenSet) (string, error)

	// DerivedTokens returns the tokens the derived family must emit, one
	// instance each, in the policy's required order.
	DerivedTokens(used *TokenSet) []string
}

// NewPolicy builds the policy named by the configuration.
func NewPolicy(name string, cat *catalog.Catalog) (Policy, error) {
	switch name {
	case PolicyAlternating, "":
		return AlternatingPair{
			First:  types.UnitLabelFirst,
			Second: types.UnitLabelSecond,
		}, nil
	case PolicyUnique:
		return &UniqueDraw{
			FieldID:     types.UnitFieldID,
			Catalog:     cat,
			MaxAttempts: defaultDrawAttempts,
		}, nil
	default:
		return nil, fmt.Errorf("unknown cross-reference policy %q (want %q or %q)",
			name, PolicyAlternating, PolicyUnique)
	}
}

// =============================================================================
// ALTERNATING-PAIR POLICY
// =============================================================================

// AlternatingPair alternates between two fixed labels by sequence parity.
type AlternatingPair struct {
	First  string
	Second string
}

// Name implements Policy.
func (AlternatingPair) Name() string { return PolicyAlternating }

// TokenFor returns First for odd sequence numbers and Second for even ones.
func (p AlternatingPair) TokenFor(seq int, used *TokenSet) (string, error) {
	token := p.First
	if seq%2 == 0 {
		token = p.Second
	}
	used.Record(token)
	return token, nil
}

// DerivedTokens returns the labels actually used, in canonical order: First
// before Second regardless of how many times each parity occurred.
func (p AlternatingPair) DerivedTokens(used *TokenSet) []string {
	var out []string
	for _, label := range []string{p.First, p.Second} {
		if used.Contains(label) {
			out = append(out, label)
		}
	}
	return out
}

// =============================================================================
// UNIQUE-DRAW POLICY
// =============================================================================

// defaultDrawAttempts caps rejection sampling so a saturated token space
// surfaces an error instead of spinning.
const defaultDrawAttempts = 1000

// UniqueDraw draws a fresh token per instance from the token field's own
// generation rule, rejecting collisions with already-used tokens.
type UniqueDraw struct {
	FieldID     string
	Catalog     *catalog.Catalog
	MaxAttempts int
}

// Name implements Policy.
func (*UniqueDraw) Name() string { return PolicyUnique }

// TokenFor samples until it finds a token not yet in the set.
func (p *UniqueDraw) TokenFor(seq int, used *TokenSet) (string, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = defaultDrawAttempts
	}

	for i := 0; i < attempts; i++ {
		token := p.Catalog.Draw(p.FieldID)
		if used.Record(token) {
			return token, nil
		}
	}

	return "", fmt.Errorf("could not draw a unique %s token for instance %d after %d attempts",
		p.FieldID, seq, attempts)
}

// DerivedTokens returns every distinct token in first-produced order.
func (*UniqueDraw) DerivedTokens(used *TokenSet) []string {
	return used.Tokens()
}
