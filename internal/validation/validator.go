// =============================================================================
// XML Report Generator - Document Validation Engine
// =============================================================================
//
// This module re-parses a fully written report document and checks it against
// the structural rules the downstream consumer enforces:
//   - Well-formed XML with exactly one as-of wrapper and one reporting entity
//   - Report item shape (typed identifier leaf + value leaf)
//   - Key markers present exactly on each group's key member
//   - Positional sequence keys equal to the instance's 1-based position
//   - Group families contiguous and in canonical order
//   - Derived-family tokens produced by a prior source-family instance
//   - Summary items consistent with the emitted group data
//   - Optionally, every emitted element name declared in a supplied XSD
//
// It is invoked only after the document is written and closed; it never
// modifies or deletes the file it inspects.
//
// ERROR HANDLING:
//   Errors are collected, not thrown at first failure. Each error carries
//   the rule violated and enough context to locate the offending element.
//
// =============================================================================

package validation

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation error.
type ValidationError struct {
	// Severity is "error" (fatal) or "warning" (informational).
	Severity string

	// Rule is the validation rule that was violated.
	Rule string

	// Context locates the offending element (group ref, field id, ...).
	Context string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s (%s): %s",
		strings.ToUpper(e.Severity), e.Rule, e.Context, e.Message)
}

// ValidationResult contains the outcome of validating one document.
type ValidationResult struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all collected errors and warnings.
	Errors []*ValidationError

	// ErrorCount is the number of fatal errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int
}

// add collects one error and updates the counters.
func (r *ValidationResult) add(severity, rule, context, format string, args ...any) {
	r.Errors = append(r.Errors, &ValidationError{
		Severity: severity,
		Rule:     rule,
		Context:  context,
		Message:  fmt.Sprintf(format, args...),
	})
	if severity == "error" {
		r.ErrorCount++
		r.IsValid = false
	} else {
		r.WarningCount++
	}
}

// =============================================================================
// DOCUMENT SHAPE
// =============================================================================
// Parsed mirror of the generated document. Validation parses the whole file;
// unlike generation, it is allowed to hold the tree in memory.

type document struct {
	XMLName xml.Name `xml:"financialDataFile"`
	AsOf    []asOf   `xml:"asofDate"`
}

type asOf struct {
	Date          string          `xml:"date,attr"`
	FinancialData []financialData `xml:"financialData"`
}

type financialData struct {
	Entities []entity `xml:"reportingEntity"`
}

type entity struct {
	Items  []reportItem `xml:"reportItem"`
	Groups []itemGroup  `xml:"itemGroup"`
}

type itemGroup struct {
	Ref   string       `xml:"ref,attr"`
	Items []reportItem `xml:"reportItem"`
}

type reportItem struct {
	Key   string `xml:"key,attr"`
	ID    idLeaf `xml:"rs_id"`
	Value string `xml:"itemValue"`
}

type idLeaf struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// =============================================================================
// VALIDATOR
// =============================================================================

var dateAttrPattern = regexp.MustCompile(`^\d{8}$`)

// Validator checks written report documents.
type Validator struct {
	families map[string]types.Family
}

// NewValidator creates a Validator over the compiled-in report layout.
func NewValidator() *Validator {
	families := make(map[string]types.Family, len(types.AllFamilies))
	for _, fam := range types.AllFamilies {
		families[fam.Ref] = fam
	}
	return &Validator{families: families}
}

// ValidateFile parses and validates the document at the given path. When
// schemaPath is non-empty, element names are additionally checked against
// the XSD's declarations.
//
// RETURNS:
//   - The collected result, or an error only when the file cannot be read
//     or is not well-formed XML.
func (v *Validator) ValidateFile(path, schemaPath string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	result, err := v.Validate(data)
	if err != nil {
		return nil, err
	}

	if schemaPath != "" {
		if err := v.checkSchemaCoverage(data, schemaPath, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Validate checks a document held in memory.
func (v *Validator) Validate(data []byte) (*ValidationResult, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document is not well-formed XML: %w", err)
	}

	result := &ValidationResult{IsValid: true}

	v.checkEnvelope(&doc, result)

	if len(doc.AsOf) == 1 && len(doc.AsOf[0].FinancialData) == 1 &&
		len(doc.AsOf[0].FinancialData[0].Entities) == 1 {
		ent := &doc.AsOf[0].FinancialData[0].Entities[0]
		v.checkEntityItems(ent, result)
		v.checkGroups(ent, result)
		v.checkSummaries(ent, result)
	}

	return result, nil
}

// =============================================================================
// ENVELOPE CHECKS
// =============================================================================

// checkEnvelope verifies the one-of-each document wrappers and the as-of
// date attribute shape.
func (v *Validator) checkEnvelope(doc *document, result *ValidationResult) {
	if len(doc.AsOf) != 1 {
		result.add("error", "envelope", types.AsOfElement,
			"expected exactly one as-of wrapper, found %d", len(doc.AsOf))
		return
	}

	asOf := doc.AsOf[0]
	if !dateAttrPattern.MatchString(asOf.Date) {
		result.add("error", "envelope", types.AsOfDateAttribute,
			"as-of date %q is not an 8-digit YYYYMMDD value", asOf.Date)
	}

	if len(asOf.FinancialData) != 1 {
		result.add("error", "envelope", types.FinancialDataElement,
			"expected exactly one financial data block, found %d", len(asOf.FinancialData))
		return
	}

	if n := len(asOf.FinancialData[0].Entities); n != 1 {
		result.add("error", "envelope", types.EntityElement,
			"expected exactly one reporting entity, found %d", n)
	}
}

// =============================================================================
// ENTITY ITEM CHECKS
// =============================================================================

// checkEntityItems verifies the standalone items lead the entity and the
// summary items trail it, both in declared order, with nothing in between.
func (v *Validator) checkEntityItems(ent *entity, result *ValidationResult) {
	expected := len(types.StandaloneItems) + len(types.SummaryItems)
	if len(ent.Items) != expected {
		result.add("error", "entity_items", types.EntityElement,
			"expected %d entity-level report items, found %d", expected, len(ent.Items))
		return
	}

	for i, fieldID := range types.StandaloneItems {
		v.checkItemShape(&ent.Items[i], fieldID, result)
	}

	offset := len(types.StandaloneItems)
	for i, summary := range types.SummaryItems {
		v.checkItemShape(&ent.Items[offset+i], summary.FieldID, result)
	}
}

// checkItemShape verifies one report item: expected id, mdrm type marker,
// and no stray key marker outside groups.
func (v *Validator) checkItemShape(item *reportItem, wantID string, result *ValidationResult) {
	if item.ID.Value != wantID {
		result.add("error", "item_order", wantID,
			"expected report item %s, found %s", wantID, item.ID.Value)
	}
	if item.ID.Type != types.ItemIDType {
		result.add("error", "item_shape", item.ID.Value,
			"identifier type is %q, want %q", item.ID.Type, types.ItemIDType)
	}
	if item.Key != "" {
		result.add("error", "item_shape", item.ID.Value,
			"entity-level item carries a key marker")
	}
}

// =============================================================================
// GROUP CHECKS
// =============================================================================

// checkGroups verifies family ordering, member order, key markers, positional
// sequence values, and derived-family referential integrity.
func (v *Validator) checkGroups(ent *entity, result *ValidationResult) {
	// Families must appear contiguously, in canonical order.
	canonical := make(map[string]int, len(types.AllFamilies))
	for i, fam := range types.AllFamilies {
		canonical[fam.Ref] = i
	}

	lastRank := -1
	currentRef := ""
	seqByRef := make(map[string]int)
	sourceTokens := make(map[string]bool)
	derivedSeen := make(map[string]bool)

	for _, grp := range ent.Groups {
		fam, known := v.families[grp.Ref]
		if !known {
			result.add("error", "group_ref", grp.Ref, "unknown group family reference")
			continue
		}

		if grp.Ref != currentRef {
			rank := canonical[grp.Ref]
			if rank < lastRank {
				result.add("error", "group_order", grp.Ref,
					"family appears after a later family; groups must not interleave")
			}
			lastRank = rank
			currentRef = grp.Ref
		}

		seqByRef[grp.Ref]++
		v.checkGroupInstance(&grp, fam, seqByRef[grp.Ref], result)

		token := groupValue(&grp, types.UnitFieldID)
		switch grp.Ref {
		case types.ScheduleTwo.Ref:
			sourceTokens[token] = true
		case types.ValuationTechnique.Ref:
			if !sourceTokens[token] {
				result.add("error", "cross_reference", grp.Ref,
					"derived instance references token %q never produced by %s",
					token, types.ScheduleTwo.Ref)
			}
			if derivedSeen[token] {
				result.add("error", "cross_reference", grp.Ref,
					"derived instance repeats token %q", token)
			}
			derivedSeen[token] = true
		}
	}
}

// checkGroupInstance verifies one group instance against its family.
func (v *Validator) checkGroupInstance(grp *itemGroup, fam types.Family, seq int, result *ValidationResult) {
	if len(grp.Items) != len(fam.Members) {
		result.add("error", "group_members", grp.Ref,
			"instance %d has %d items, family declares %d", seq, len(grp.Items), len(fam.Members))
		return
	}

	for i, fieldID := range fam.Members {
		item := &grp.Items[i]

		if item.ID.Value != fieldID {
			result.add("error", "group_members", grp.Ref,
				"instance %d item %d is %s, want %s", seq, i+1, item.ID.Value, fieldID)
			continue
		}
		if item.ID.Type != types.ItemIDType {
			result.add("error", "item_shape", fieldID,
				"identifier type is %q, want %q", item.ID.Type, types.ItemIDType)
		}

		isKey := fieldID == fam.SequenceKey
		hasMarker := item.Key == types.KeyAttributeValue
		if isKey != hasMarker {
			result.add("error", "key_marker", grp.Ref,
				"instance %d: key marker on %s is %q", seq, fieldID, item.Key)
		}

		if isKey && !fam.TokenKeyed && item.Value != strconv.Itoa(seq) {
			result.add("error", "sequence_key", grp.Ref,
				"instance %d: sequence key value is %q, want %q", seq, item.Value, strconv.Itoa(seq))
		}
	}
}

// =============================================================================
// SUMMARY CHECKS
// =============================================================================

// checkSummaries recomputes every accumulated total and family count from
// the emitted groups and compares it with the trailing summary items.
func (v *Validator) checkSummaries(ent *entity, result *ValidationResult) {
	if len(ent.Items) != len(types.StandaloneItems)+len(types.SummaryItems) {
		// Already reported by checkEntityItems.
		return
	}

	totals := make(map[types.SummaryTarget]int64)
	counts := make(map[string]int)
	for _, grp := range ent.Groups {
		counts[grp.Ref]++
		for _, item := range grp.Items {
			target, bound := types.SummaryBindings[item.ID.Value]
			if !bound {
				continue
			}
			if n, err := strconv.ParseInt(item.Value, 10, 64); err == nil {
				totals[target] += n
			}
		}
	}

	offset := len(types.StandaloneItems)
	for i, summary := range types.SummaryItems {
		got := ent.Items[offset+i].Value

		var want string
		switch {
		case summary.CountOf != "":
			want = strconv.Itoa(counts[summary.CountOf])
		case summary.Target != "":
			want = strconv.FormatInt(totals[summary.Target], 10)
		default:
			want = summary.Literal
		}

		if got != want {
			result.add("error", "summary", summary.FieldID,
				"summary value is %q, recomputed %q", got, want)
		}
	}
}

// =============================================================================
// SCHEMA COVERAGE
// =============================================================================

// xsdSchema captures just the element declarations of an XSD. This is not an
// XSD engine: the adapter only verifies that every element name the document
// uses is declared somewhere in the schema.
type xsdSchema struct {
	Elements []xsdElement `xml:"element"`
}

type xsdElement struct {
	Name     string       `xml:"name,attr"`
	Elements []xsdElement `xml:"complexType>sequence>element"`
}

// checkSchemaCoverage verifies every element name in the document against
// the names declared in the XSD at schemaPath.
func (v *Validator) checkSchemaCoverage(data []byte, schemaPath string, result *ValidationResult) error {
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	var schema xsdSchema
	if err := xml.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("failed to parse schema: %w", err)
	}

	declared := make(map[string]bool)
	var collect func(elems []xsdElement)
	collect = func(elems []xsdElement) {
		for _, el := range elems {
			if el.Name != "" {
				declared[el.Name] = true
			}
			collect(el.Elements)
		}
	}
	collect(schema.Elements)

	if len(declared) == 0 {
		result.add("warning", "schema_coverage", schemaPath,
			"schema declares no named elements; coverage check skipped")
		return nil
	}

	reported := make(map[string]bool)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		name := start.Name.Local
		if !declared[name] && !reported[name] {
			result.add("error", "schema_coverage", name,
				"element is not declared in %s", schemaPath)
			reported[name] = true
		}
	}

	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// groupValue returns the value of the named member within a group instance,
// or the empty string when absent.
func groupValue(grp *itemGroup, fieldID string) string {
	for _, item := range grp.Items {
		if item.ID.Value == fieldID {
			return item.Value
		}
	}
	return ""
}

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n\n", len(errors)))
	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}
