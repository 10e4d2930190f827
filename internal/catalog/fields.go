// =============================================================================
// XML Report Generator - Field Rule Table
// =============================================================================
//
// This file declares the generation rule for every field id with a domain
// constraint. The table replaces per-field branching: the catalog dispatches
// on it, and New validates it once at startup (duplicate declarations and
// declarations for ids outside the report layout are construction errors).
//
// Field ids not declared here resolve through the fallback (random
// alphanumeric, length 10) — presence in the layout is enough for the
// consumer; only the fields below carry constraints.
//
// =============================================================================

package catalog

// =============================================================================
// CHOICE SETS
// =============================================================================

var (
	usStates   = []string{"NY", "CA", "TX", "IL", "WA"}
	currencies = []string{"USD", "EUR", "JPY", "GBP", "CAD"}
	companies  = []string{"Big Bank", "Acme Financial", "Northstar Credit"}
	names      = []string{"Alex Kim", "Jordan Lee", "Taylor Chen"}
	titles     = []string{"Manager", "Director", "VP"}
	cities     = []string{"New York", "Chicago", "San Francisco", "Seattle"}
	streets    = []string{"Main St", "Market St", "Broadway", "1st Ave", "2nd Ave"}

	emailDomains = []string{"example.com", "bank.com", "corp.net"}

	// Allowed five-digit codes for SHCDN486.
	allowedCodes = []string{"13307", "10251", "16209", "16527"}
)

// Date layouts used by the report. MMDDYY for schedule dates, YYYYMMDD for
// the as-of wrapper.
const (
	LayoutMMDDYY   = "010206"
	LayoutYYYYMMDD = "20060102"
)

// =============================================================================
// DECLARED RULES
// =============================================================================

// fieldRule binds one field id to its generation rule. The table is a slice,
// not a map, so duplicate declarations are detectable at startup.
type fieldRule struct {
	ID   string
	Rule Rule
}

var declaredRules = []fieldRule{
	// ----- Standalone entity items ------------------------------------------
	{"SHCA9017", ChoiceSet{companies}},
	{"SHCA9028", Street{}},
	{"SHCA9130", ChoiceSet{cities}},
	{"SHCA9200", ChoiceSet{usStates}},
	{"SHCA9220", DigitString{5}},
	{"SHCAN261", NumericRange{1, 4}},
	{"SHCAN262", NumericRange{1, 9}},
	{"SHCAN444", ChoiceSet{names}},
	{"SHCAN445", ChoiceSet{titles}},
	{"SHCAN446", Phone{}},
	{"SHCAN447", Email{}},
	{"SHCAC492", Email{}},

	// ----- Business contact group -------------------------------------------
	{"SHCAC495", ChoiceSet{names}},
	{"SHCAC496", ChoiceSet{titles}},
	{"SHCA8902", Phone{}},
	{"SHCA4086", Email{}},

	// ----- Service provider group -------------------------------------------
	{"SHCAN263", ChoiceSet{companies}},

	// ----- Schedule 2 group --------------------------------------------------
	{"SHCDN461", NumericRange{1, 2}},
	{"SHCDN463", NumericRange{1, 7}},
	{"SHCDN467", NumericRange{1, 2}},
	{"SHCDN468", NumericRange{1, 12}},
	{"SHCDN486", ChoiceSet{allowedCodes}},
	{"SHCDN470", ChoiceSet{currencies}},
	{"SHCDN471", NumericRange{1, 7}},
	{"SHCDN490", Amount{12}},
	{"SHCDN472", Amount{12}},
	{"SHCDN473", Amount{11}},
	{"SHCDN474", Amount{13}},
	{"SHCDN475", Blank{}},
	{"SHCDN477", DateToken{LayoutMMDDYY, 365 * 3}},
	{"SHCD9914", DateToken{LayoutMMDDYY, 365 * 3}},

	// ----- Schedule 3 group --------------------------------------------------
	{"SHCCN478", NumericRange{1, 2}},
	{"SHCCN479", NumericRange{1, 2}},
	{"SHCCN456", Amount{13}},
	{"SHCCN457", Amount{13}},
	{"SHCCN458", Amount{13}},
	{"SHCCN459", Amount{13}},

	// ----- Valuation technique group -----------------------------------------
	{"SHCAN449", Literal{"Valuation description"}},
}
