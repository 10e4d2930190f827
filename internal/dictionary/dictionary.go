// =============================================================================
// XML Report Generator - Field Dictionary Workbook
// =============================================================================
//
// This module exports the field catalog to an XLSX workbook so analysts can
// review the generation rules without reading Go, and checks an edited
// workbook back against the compiled-in layout (unknown ids, missing fields,
// duplicate rows).
//
// WORKBOOK LAYOUT (sheet "Fields"):
//   A: Field ID        the rs_id
//   B: Section         Standalone, family name, or Summary
//   C: Rule            human-readable generation rule
//   D: Key             "yes" for a group's key member
//   E: Summary Target  the total the field feeds or backs
//
// =============================================================================

package dictionary

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

// SheetName is the single sheet the dictionary lives on.
const SheetName = "Fields"

// headerRow is the fixed first row of the sheet.
var headerRow = []string{"Field ID", "Section", "Rule", "Key", "Summary Target"}

// =============================================================================
// ENTRIES
// =============================================================================

// Entry is one dictionary row.
type Entry struct {
	FieldID       string
	Section       string
	Rule          string
	Key           bool
	SummaryTarget string
}

// Entries builds the full dictionary in document emission order.
func Entries(cat *catalog.Catalog) []Entry {
	var entries []Entry

	for _, fieldID := range types.StandaloneItems {
		entries = append(entries, Entry{
			FieldID: fieldID,
			Section: "Standalone",
			Rule:    cat.Describe(fieldID),
		})
	}

	for _, fam := range types.AllFamilies {
		for _, fieldID := range fam.Members {
			entry := Entry{
				FieldID: fieldID,
				Section: fam.Name,
				Rule:    cat.Describe(fieldID),
				Key:     fieldID == fam.SequenceKey,
			}
			if target, bound := types.SummaryBindings[fieldID]; bound {
				entry.SummaryTarget = string(target)
			}
			entries = append(entries, entry)
		}
	}

	for _, item := range types.SummaryItems {
		entry := Entry{
			FieldID:       item.FieldID,
			Section:       "Summary",
			SummaryTarget: string(item.Target),
		}
		switch {
		case item.CountOf != "":
			entry.Rule = fmt.Sprintf("instance count of %s", item.CountOf)
		case item.Target != "":
			entry.Rule = "accumulated total"
		default:
			entry.Rule = fmt.Sprintf("literal %q", item.Literal)
		}
		entries = append(entries, entry)
	}

	return entries
}

// =============================================================================
// EXPORT
// =============================================================================

// Export writes the dictionary workbook to the given path.
//
// RETURNS:
//   - The number of field rows written, or an error if the workbook cannot
//     be created or saved.
func Export(cat *catalog.Catalog, path string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, 1, headerRow); err != nil {
		return 0, err
	}

	entries := Entries(cat)
	for i, entry := range entries {
		key := ""
		if entry.Key {
			key = types.KeyAttributeValue
		}
		row := []string{entry.FieldID, entry.Section, entry.Rule, key, entry.SummaryTarget}
		if err := writeRow(f, i+2, row); err != nil {
			return 0, err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("failed to save workbook: %w", err)
	}

	return len(entries), nil
}

// writeRow writes one row of string cells starting at column A.
func writeRow(f *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// =============================================================================
// CHECK
// =============================================================================

// Check reads a dictionary workbook back and compares it against the
// compiled-in layout.
//
// RETURNS:
//   - Findings, one line each: unknown field ids, duplicated rows, and
//     layout fields missing from the workbook. An empty slice means the
//     workbook matches the layout.
//   - An error if the workbook cannot be opened or lacks the Fields sheet.
func Check(cat *catalog.Catalog, path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", SheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", SheetName)
	}

	// Expected (section, field) pairs from the layout.
	expected := make(map[[2]string]bool)
	for _, entry := range Entries(cat) {
		expected[[2]string{entry.Section, entry.FieldID}] = true
	}

	var findings []string
	seen := make(map[[2]string]bool)

	for i, row := range rows[1:] {
		if len(row) < 2 {
			findings = append(findings, fmt.Sprintf("row %d: too few columns", i+2))
			continue
		}
		pair := [2]string{row[1], row[0]}

		if !expected[pair] {
			findings = append(findings, fmt.Sprintf("row %d: field %s is not part of section %s", i+2, row[0], row[1]))
			continue
		}
		if seen[pair] {
			findings = append(findings, fmt.Sprintf("row %d: field %s duplicated in section %s", i+2, row[0], row[1]))
			continue
		}
		seen[pair] = true
	}

	for _, entry := range Entries(cat) {
		pair := [2]string{entry.Section, entry.FieldID}
		if !seen[pair] {
			findings = append(findings, fmt.Sprintf("missing: field %s of section %s", entry.FieldID, entry.Section))
		}
	}

	return findings, nil
}
