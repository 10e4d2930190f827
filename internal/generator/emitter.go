// =============================================================================
// XML Report Generator - Group Emitter
// =============================================================================
//
// Emits one instance of a repeating item group: resolves every member field
// in declared order, wraps each as a reportItem (typed identifier leaf plus
// value leaf), marks the family's key member, and feeds the accumulator as
// values stream past. No instance state survives the call.
//
// =============================================================================

package generator

import (
	"github.com/ginjaninja78/xml-report-generator/internal/types"
	"github.com/ginjaninja78/xml-report-generator/internal/xmlwriter"
)

// emitGroup writes one itemGroup instance.
//
// PARAMETERS:
//   - fam:       The group family to instantiate.
//   - seq:       The instance's 1-based sequence number; pass 0 for families
//     emitted without positional sequencing (the derived family).
//   - overrides: Per-field values that bypass the catalog, used to force a
//     member to match a cross-reference token.
func (g *Generator) emitGroup(fam types.Family, seq int, overrides map[string]string) {
	g.w.OpenTag(types.GroupElement, xmlwriter.Attr{Name: types.GroupRefAttribute, Value: fam.Ref})

	for _, fieldID := range fam.Members {
		var override *string
		if v, ok := overrides[fieldID]; ok {
			override = &v
		}

		value := g.cat.Resolve(fieldID, seq, override)

		g.emitItem(fieldID, value, fieldID == fam.SequenceKey)
		g.acc.Observe(fieldID, value)
	}

	g.w.CloseTag(types.GroupElement)
}

// emitItem writes one reportItem: the rs_id leaf with its type marker, then
// the itemValue leaf. The key marker attribute goes on the reportItem itself,
// exactly when the item is the enclosing group's key member.
func (g *Generator) emitItem(fieldID, value string, isKey bool) {
	if isKey {
		g.w.OpenTag(types.ItemElement, xmlwriter.Attr{
			Name:  types.KeyAttribute,
			Value: types.KeyAttributeValue,
		})
	} else {
		g.w.OpenTag(types.ItemElement)
	}

	g.w.TextLeaf(types.ItemIDElement, fieldID, xmlwriter.Attr{
		Name:  types.ItemIDTypeAttribute,
		Value: types.ItemIDType,
	})
	g.w.TextLeaf(types.ItemValueElement, value)

	g.w.CloseTag(types.ItemElement)
}
