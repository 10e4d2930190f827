// =============================================================================
// XML Report Generator - Field Value Catalog
// =============================================================================
//
// This module resolves one value per field id per call. Resolution precedence:
//
//   1. Caller override — always wins. Used to force a field to match a
//      cross-reference token produced earlier in the document.
//   2. Sequence key — recognized positional keys return the instance's
//      1-based sequence value as a base-10 integer.
//   3. Declared rule — the generation rule from the field rule table.
//   4. Fallback — a random alphanumeric token of length 10, so every
//      unrecognized id still yields a nonempty printable value.
//
// Resolve is a total function: it never fails. Unrecognized ids are silently
// absorbed by the fallback; the startup validation in New exists to catch
// table typos, not runtime ones.
//
// =============================================================================

package catalog

import (
	"fmt"
	"strconv"

	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

// FallbackLength is the length of the random alphanumeric fallback value.
const FallbackLength = 10

// =============================================================================
// CATALOG
// =============================================================================

// Catalog maps field ids to generation rules and resolves values against an
// injected randomness source. One Catalog serves one generation run.
type Catalog struct {
	rules        map[string]Rule
	sequenceKeys map[string]bool
	src          *Source
}

// New builds a Catalog over the declared rule table.
//
// PARAMETERS:
//   - src: The randomness source for this generation run. Must not be shared
//     with another run.
//
// RETURNS:
//   - The catalog, or an error if the rule table is inconsistent.
//
// VALIDATION (performed once, here):
//   - A field id declared twice is an error.
//   - A declared id that appears nowhere in the report layout is an error
//     (almost certainly a typo).
//   - A summary binding that feeds from a non-member field id is an error.
func New(src *Source) (*Catalog, error) {
	rules, err := buildRules(declaredRules, layoutFieldIDs())
	if err != nil {
		return nil, err
	}

	for fieldID, target := range types.SummaryBindings {
		if !memberOfAnyFamily(fieldID) {
			return nil, fmt.Errorf("summary target %s feeds from %s, which is not a group member", target, fieldID)
		}
	}

	return &Catalog{
		rules:        rules,
		sequenceKeys: types.SequenceKeys(),
		src:          src,
	}, nil
}

// buildRules indexes a rule table, rejecting duplicate declarations and
// declarations for ids outside the given layout.
func buildRules(table []fieldRule, layout map[string]bool) (map[string]Rule, error) {
	rules := make(map[string]Rule, len(table))
	for _, fr := range table {
		if _, dup := rules[fr.ID]; dup {
			return nil, fmt.Errorf("field %s declared twice in rule table", fr.ID)
		}
		if !layout[fr.ID] {
			return nil, fmt.Errorf("field %s has a rule but is not part of the report layout", fr.ID)
		}
		rules[fr.ID] = fr.Rule
	}
	return rules, nil
}

// Resolve returns the value for a field id.
//
// PARAMETERS:
//   - fieldID:  The field to resolve.
//   - seq:      The enclosing instance's 1-based sequence number. Values
//     below 1 mean "absent" and format as "1".
//   - override: Optional caller-supplied value; nil means no override.
func (c *Catalog) Resolve(fieldID string, seq int, override *string) string {
	if override != nil {
		return *override
	}

	if c.sequenceKeys[fieldID] {
		if seq < 1 {
			seq = 1
		}
		return strconv.Itoa(seq)
	}

	return c.Draw(fieldID)
}

// Draw generates a fresh value for a field id from its declared rule alone,
// bypassing override and sequence-key handling. The unique-draw
// cross-reference policy uses this to sample candidate tokens with the same
// rule the field uses everywhere else.
func (c *Catalog) Draw(fieldID string) string {
	if rule, ok := c.rules[fieldID]; ok {
		return rule.Generate(c.src)
	}
	return c.src.Alphanumeric(FallbackLength)
}

// Source exposes the catalog's randomness source for callers that generate
// values outside the field table (entity identifiers, as-of dates).
func (c *Catalog) Source() *Source {
	return c.src
}

// Describe returns the human-readable rule description for a field id, or
// the fallback description when no rule is declared.
func (c *Catalog) Describe(fieldID string) string {
	if c.sequenceKeys[fieldID] {
		return "1-based sequence number"
	}
	if rule, ok := c.rules[fieldID]; ok {
		return rule.Describe()
	}
	return fmt.Sprintf("random alphanumeric (%d)", FallbackLength)
}

// Declared reports whether the field id carries an explicit rule.
func (c *Catalog) Declared(fieldID string) bool {
	_, ok := c.rules[fieldID]
	return ok
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

// layoutFieldIDs collects every field id the report layout can emit:
// standalone items, group members, and summary items.
func layoutFieldIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, id := range types.StandaloneItems {
		ids[id] = true
	}
	for _, fam := range types.AllFamilies {
		for _, id := range fam.Members {
			ids[id] = true
		}
	}
	for _, item := range types.SummaryItems {
		ids[item.FieldID] = true
	}
	return ids
}

// memberOfAnyFamily reports whether the field id is a member of at least one
// group family.
func memberOfAnyFamily(fieldID string) bool {
	for _, fam := range types.AllFamilies {
		for _, id := range fam.Members {
			if id == fieldID {
				return true
			}
		}
	}
	return false
}
