package validation_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/xml-report-generator/internal/generator"
	"github.com/ginjaninja78/xml-report-generator/internal/validation"
)

func testClock() time.Time {
	return time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)
}

func generateDocument(t *testing.T, opts generator.Options) []byte {
	t.Helper()

	if opts.Now == nil {
		opts.Now = testClock
	}

	var buf bytes.Buffer
	gen, err := generator.New(&buf, opts)
	require.NoError(t, err)
	require.NoError(t, gen.Run())
	return buf.Bytes()
}

func rulesViolated(result *validation.ValidationResult) []string {
	var rules []string
	for _, e := range result.Errors {
		rules = append(rules, e.Rule)
	}
	return rules
}

// =============================================================================
// CLEAN DOCUMENTS
// =============================================================================

func TestValidate_GeneratedDocumentsPass(t *testing.T) {
	cases := []struct {
		name string
		opts generator.Options
	}{
		{"alternating defaults", generator.Options{
			BusinessCount: 2, ServiceCount: 1, ScheduleTwoCount: 3, ScheduleThreeCount: 2,
			Policy: generator.PolicyAlternating, Seed: 1,
		}},
		{"unique tokens", generator.Options{
			BusinessCount: 1, ServiceCount: 1, ScheduleTwoCount: 5, ScheduleThreeCount: 1,
			Policy: generator.PolicyUnique, Seed: 2,
		}},
		{"empty families", generator.Options{Seed: 3}},
		{"schedule 2 only", generator.Options{ScheduleTwoCount: 3, Seed: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := generateDocument(t, tc.opts)

			result, err := validation.NewValidator().Validate(data)
			require.NoError(t, err)
			assert.True(t, result.IsValid, validation.FormatErrors(result.Errors))
			assert.Zero(t, result.ErrorCount)
		})
	}
}

func TestValidate_RejectsMalformedXML(t *testing.T) {
	_, err := validation.NewValidator().Validate([]byte("<financialDataFile><unclosed>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not well-formed")
}

// =============================================================================
// TAMPERED DOCUMENTS
// =============================================================================

func baseDocument(t *testing.T) string {
	t.Helper()
	return string(generateDocument(t, generator.Options{
		BusinessCount: 1, ScheduleTwoCount: 1, ScheduleThreeCount: 1,
		Seed: 10,
	}))
}

func validate(t *testing.T, doc string) *validation.ValidationResult {
	t.Helper()
	result, err := validation.NewValidator().Validate([]byte(doc))
	require.NoError(t, err)
	return result
}

func TestValidate_FlagsBadAsOfDate(t *testing.T) {
	doc := regexp.MustCompile(`date="\d{8}"`).ReplaceAllString(baseDocument(t), `date="2026"`)

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "envelope")
}

func TestValidate_FlagsMissingKeyMarker(t *testing.T) {
	doc := strings.Replace(baseDocument(t), ` key="yes"`, "", 1)

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "key_marker")
}

func TestValidate_FlagsWrongSequenceValue(t *testing.T) {
	doc := strings.Replace(baseDocument(t),
		">SHCAR069</rs_id><itemValue>1<",
		">SHCAR069</rs_id><itemValue>9<", 1)

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "sequence_key")
}

func TestValidate_FlagsUnknownToken(t *testing.T) {
	doc := baseDocument(t)

	// The derived instance is the document's last occurrence of the token.
	idx := strings.LastIndex(doc, ">RU1<")
	require.Greater(t, idx, 0)
	doc = doc[:idx] + ">RU9<" + doc[idx+len(">RU1<"):]

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "cross_reference")
}

func TestValidate_FlagsInconsistentSummary(t *testing.T) {
	doc := strings.Replace(baseDocument(t),
		">SHCAN450</rs_id><itemValue>1<",
		">SHCAN450</rs_id><itemValue>5<", 1)

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "summary")
}

func TestValidate_FlagsUnknownGroupRef(t *testing.T) {
	doc := strings.Replace(baseDocument(t), `ref="BusContact"`, `ref="Mystery"`, 1)

	result := validate(t, doc)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "group_ref")
}

// =============================================================================
// SCHEMA COVERAGE
// =============================================================================

// documentElementNames lists every element the generator can emit.
var documentElementNames = []string{
	"financialDataFile", "fileDescription",
	"createDate", "createTime", "dataTypeIndicator", "requestType",
	"receivingSite", "seriesName", "reportingForm",
	"asofDate", "financialData", "reportingEntity",
	"reportingEntityIdentifier", "transferType", "sendingSiteReportKey",
	"processingDistrict", "confidentiality", "estimation",
	"itemGroup", "reportItem", "rs_id", "itemValue",
}

func writeSchema(t *testing.T, names []string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">` + "\n")
	for _, name := range names {
		b.WriteString(`  <xs:element name="` + name + `"/>` + "\n")
	}
	b.WriteString(`</xs:schema>` + "\n")

	path := filepath.Join(t.TempDir(), "report.xsd")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func writeDocumentFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestValidateFile_SchemaCoversAllElements(t *testing.T) {
	docPath := writeDocumentFile(t, []byte(baseDocument(t)))
	schemaPath := writeSchema(t, documentElementNames)

	result, err := validation.NewValidator().ValidateFile(docPath, schemaPath)
	require.NoError(t, err)
	assert.True(t, result.IsValid, validation.FormatErrors(result.Errors))
}

func TestValidateFile_FlagsUndeclaredElements(t *testing.T) {
	docPath := writeDocumentFile(t, []byte(baseDocument(t)))

	var withoutItemValue []string
	for _, name := range documentElementNames {
		if name != "itemValue" {
			withoutItemValue = append(withoutItemValue, name)
		}
	}
	schemaPath := writeSchema(t, withoutItemValue)

	result, err := validation.NewValidator().ValidateFile(docPath, schemaPath)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Contains(t, rulesViolated(result), "schema_coverage")
}

func TestValidateFile_WarnsOnEmptySchema(t *testing.T) {
	docPath := writeDocumentFile(t, []byte(baseDocument(t)))
	schemaPath := writeSchema(t, nil)

	result, err := validation.NewValidator().ValidateFile(docPath, schemaPath)
	require.NoError(t, err)
	assert.True(t, result.IsValid, "an empty schema only warns")
	assert.Equal(t, 1, result.WarningCount)
}

// =============================================================================
// FORMATTING
// =============================================================================

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "No validation errors.", validation.FormatErrors(nil))

	errs := []*validation.ValidationError{
		{Severity: "error", Rule: "summary", Context: "SHCAN450", Message: "off by one"},
	}
	formatted := validation.FormatErrors(errs)
	assert.Contains(t, formatted, "1 finding(s)")
	assert.Contains(t, formatted, "[ERROR] summary (SHCAN450): off by one")
}
