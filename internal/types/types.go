// =============================================================================
// XML Report Generator - Shared Report Layout
// =============================================================================
//
// This package contains the shared report layout used across multiple modules
// to avoid import cycles. Types and tables defined here are used by:
//   - catalog
//   - generator
//   - validation
//   - dictionary
//
// The layout mirrors the SHCA report shape consumed downstream: one reporting
// entity carrying standalone report items, several families of repeatable
// item groups, and a trailing run of summary items.
//
// =============================================================================

package types

// =============================================================================
// ELEMENT AND ATTRIBUTE NAMES
// =============================================================================
// These names are fixed by the consuming system. The validator re-parses
// generated documents against the same constants, so they live here rather
// than in the generator.

const (
	// RootElement is the document root.
	RootElement = "financialDataFile"

	// FileDescriptionElement wraps the fixed header block.
	FileDescriptionElement = "fileDescription"

	// AsOfElement wraps the reporting period; carries one date attribute.
	AsOfElement = "asofDate"

	// AsOfDateAttribute is the 8-digit YYYYMMDD attribute on AsOfElement.
	AsOfDateAttribute = "date"

	// FinancialDataElement wraps the reporting entity.
	FinancialDataElement = "financialData"

	// EntityElement is the single reporting entity record.
	EntityElement = "reportingEntity"

	// GroupElement is one instance of a repeating item group.
	GroupElement = "itemGroup"

	// GroupRefAttribute carries the friendly family label on GroupElement.
	GroupRefAttribute = "ref"

	// ItemElement is one report item: an identifier leaf plus a value leaf.
	ItemElement = "reportItem"

	// ItemIDElement is the typed identifier leaf inside ItemElement.
	ItemIDElement = "rs_id"

	// ItemIDTypeAttribute marks the identifier scheme on ItemIDElement.
	ItemIDTypeAttribute = "type"

	// ItemIDType is the only identifier scheme the consumer accepts.
	ItemIDType = "mdrm"

	// ItemValueElement is the value leaf inside ItemElement.
	ItemValueElement = "itemValue"

	// KeyAttribute marks the sequence-key item of a group instance.
	KeyAttribute = "key"

	// KeyAttributeValue is the fixed marker value.
	KeyAttributeValue = "yes"
)

// =============================================================================
// GROUP FAMILIES
// =============================================================================

// Family describes one repeatable item-group family: its friendly reference
// label, its member field ids in emission order, and the member that acts as
// the 1-based sequence key.
type Family struct {
	// Name is the human-readable family name used in logs and errors.
	Name string

	// Ref is the friendly label written as itemGroup@ref. It is distinct
	// from any field id.
	Ref string

	// Members are the field ids of the family, in emission order.
	Members []string

	// SequenceKey is the member whose value equals the instance's 1-based
	// position and which carries the key marker attribute.
	SequenceKey string

	// TokenKeyed marks a family whose key member is a cross-reference
	// token rather than a positional counter. The key marker attribute is
	// still written, but the value comes from an override.
	TokenKeyed bool
}

// UnitFieldID is the field whose value is the cross-reference token: it is
// overridden on every Schedule 2 instance and keys each valuation-technique
// instance.
const UnitFieldID = "SHCAN448"

// Cross-reference labels used by the alternating-pair policy.
const (
	UnitLabelFirst  = "RU1"
	UnitLabelSecond = "RU2"
)

// BusinessContact is the business-contact group family.
var BusinessContact = Family{
	Name:        "Business Contact",
	Ref:         "BusContact",
	SequenceKey: "SHCAR069",
	Members: []string{
		"SHCAR069",
		"SHCAC495", "SHCAC496", "SHCA8902", "SHCA4086",
	},
}

// ServiceProvider is the service-provider group family.
var ServiceProvider = Family{
	Name:        "Service Provider",
	Ref:         "ServiceProvider",
	SequenceKey: "SHCAR070",
	Members: []string{
		"SHCAR070",
		"SHCAN263",
	},
}

// ScheduleTwo is the cross-reference source family. Every instance gets its
// UnitFieldID member overridden with the cross-reference token produced by
// the configured policy.
var ScheduleTwo = Family{
	Name:        "Schedule 2",
	Ref:         "Schedule2",
	SequenceKey: "SHCDN186",
	Members: []string{
		"SHCDN186",
		"SHCAN448",
		"SHCDN460", "SHCDN461", "SHCDN462", "SHCDN463", "SHCDN464",
		"SHCDN465", "SHCDN466", "SHCDN467", "SHCDN468", "SHCDN486",
		"SHCDN470", "SHCDN471", "SHCDN487", "SHCDN490", "SHCDN472",
		"SHCDN473", "SHCDN474", "SHCDN475", "SHCDN477", "SHCD9914",
	},
}

// ValuationTechnique is the derived family: one instance per distinct
// cross-reference token produced while emitting Schedule 2.
var ValuationTechnique = Family{
	Name:        "Valuation Technique",
	Ref:         "ValTechnique",
	SequenceKey: "SHCAN448",
	TokenKeyed:  true,
	Members: []string{
		"SHCAN448",
		"SHCAN449",
	},
}

// ScheduleThree is the last group family; its amount members feed the
// per-field summary totals.
var ScheduleThree = Family{
	Name:        "Schedule 3",
	Ref:         "Schedule3",
	SequenceKey: "SHCCN186",
	Members: []string{
		"SHCCN186",
		"SHCCN478", "SHCCN456", "SHCCN457", "SHCCN458", "SHCCN459",
		"SHCCN479", "SHCCN480", "SHCCN481", "SHCCN482",
		"SHCCN483", "SHCCN484", "SHCCN485",
	},
}

// AllFamilies lists every family in document emission order.
var AllFamilies = []Family{
	BusinessContact,
	ServiceProvider,
	ScheduleTwo,
	ValuationTechnique,
	ScheduleThree,
}

// =============================================================================
// STANDALONE ITEMS
// =============================================================================

// StandaloneItems are the entity-level report items emitted before any item
// group, in fixed order.
var StandaloneItems = []string{
	"SHCA9017", "SHCA9028", "SHCA9130", "SHCA9200", "SHCA9220",
	"SHCAN261", "SHCAN262",
	"SHCAN444", "SHCAN445", "SHCAN446", "SHCAN447",
	"SHCAC492",
}

// =============================================================================
// SUMMARY TARGETS
// =============================================================================

// SummaryTarget identifies one running total accumulated while groups are
// emitted. Targets are an explicit enumerated set so that a typo in a feeding
// field id fails catalog validation instead of silently creating an
// untracked total.
type SummaryTarget string

const (
	// TargetScheduleTwoFairValue is the single named Schedule 2 total.
	TargetScheduleTwoFairValue SummaryTarget = "schedule2_fair_value"

	// Per-field Schedule 3 totals. Each Schedule 3 amount feeds its own
	// identically-named summary item.
	TargetScheduleThree456 SummaryTarget = "schedule3_456"
	TargetScheduleThree457 SummaryTarget = "schedule3_457"
	TargetScheduleThree458 SummaryTarget = "schedule3_458"
	TargetScheduleThree459 SummaryTarget = "schedule3_459"
)

// SummaryBindings maps each feeding field id to the target it contributes to.
// A field id feeds at most one target.
var SummaryBindings = map[string]SummaryTarget{
	"SHCDN490": TargetScheduleTwoFairValue,
	"SHCCN456": TargetScheduleThree456,
	"SHCCN457": TargetScheduleThree457,
	"SHCCN458": TargetScheduleThree458,
	"SHCCN459": TargetScheduleThree459,
}

// SummaryItem describes one trailing summary report item and where its value
// comes from.
type SummaryItem struct {
	// FieldID is the summary item's own field id.
	FieldID string

	// Target is the accumulated total backing the value, if any.
	Target SummaryTarget

	// CountOf names the family (by Ref) whose instance count is the value,
	// if any.
	CountOf string

	// Literal is a fixed value used when neither Target nor CountOf is set.
	Literal string
}

// SummaryItems are the trailing summary report items, in emission order.
var SummaryItems = []SummaryItem{
	{FieldID: "SHCAN450", CountOf: "Schedule2"},
	{FieldID: "SHCAN451", Target: TargetScheduleTwoFairValue},
	{FieldID: "SHCAN452", Literal: "0"},
	{FieldID: "SHCAN453", Literal: "0"},
	{FieldID: "SHCAN454", Literal: "0"},
	{FieldID: "SHCAN455", CountOf: "Schedule3"},
	{FieldID: "SHCAN456", Target: TargetScheduleThree456},
	{FieldID: "SHCAN457", Target: TargetScheduleThree457},
	{FieldID: "SHCAN458", Target: TargetScheduleThree458},
	{FieldID: "SHCAN459", Target: TargetScheduleThree459},
}

// SequenceKeys returns the set of positional sequence-key field ids across
// every family. Token-keyed families are excluded: their key value is a
// cross-reference token, not a counter.
func SequenceKeys() map[string]bool {
	keys := make(map[string]bool, len(AllFamilies))
	for _, fam := range AllFamilies {
		if !fam.TokenKeyed {
			keys[fam.SequenceKey] = true
		}
	}
	return keys
}
