// =============================================================================
// XML Report Generator - Dictionary Command
// =============================================================================
//
// This file defines the 'dictionary' command group, which moves the field
// catalog between code and an XLSX workbook analysts can review.
//
// COMMAND USAGE:
//   reportgen dictionary export --out fields.xlsx
//   reportgen dictionary check  --file fields.xlsx
//
// 'export' writes every field of the report layout with its section,
// generation rule, key marker, and summary target. 'check' reads a (possibly
// edited) workbook back and reports rows that no longer match the layout.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
	"github.com/ginjaninja78/xml-report-generator/internal/dictionary"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dictOutPath is the workbook path written by 'dictionary export'.
var dictOutPath string

// dictFilePath is the workbook path read by 'dictionary check'.
var dictFilePath string

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// dictionaryCmd is the parent of the export and check subcommands.
var dictionaryCmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Export or check the field dictionary workbook",
}

// dictionaryExportCmd writes the catalog to an XLSX workbook.
var dictionaryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the field dictionary to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newReviewCatalog()
		if err != nil {
			return err
		}

		rows, err := dictionary.Export(cat, dictOutPath)
		if err != nil {
			return fmt.Errorf("failed to export dictionary: %w", err)
		}

		fmt.Printf("Exported %d fields to %s\n", rows, dictOutPath)
		return nil
	},
}

// dictionaryCheckCmd reads an edited workbook back against the layout.
var dictionaryCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an edited dictionary workbook against the report layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newReviewCatalog()
		if err != nil {
			return err
		}

		findings, err := dictionary.Check(cat, dictFilePath)
		if err != nil {
			return fmt.Errorf("failed to check dictionary: %w", err)
		}

		if len(findings) == 0 {
			fmt.Printf("%s matches the report layout\n", dictFilePath)
			return nil
		}

		for _, finding := range findings {
			fmt.Println(finding)
		}
		return fmt.Errorf("dictionary check found %d problem(s)", len(findings))
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the dictionary commands and their flags.
func init() {
	rootCmd.AddCommand(dictionaryCmd)
	dictionaryCmd.AddCommand(dictionaryExportCmd)
	dictionaryCmd.AddCommand(dictionaryCheckCmd)

	dictionaryExportCmd.Flags().StringVar(&dictOutPath, "out", "fields.xlsx", "Workbook path to write")
	dictionaryCheckCmd.Flags().StringVar(&dictFilePath, "file", "fields.xlsx", "Workbook path to check")
}

// newReviewCatalog builds a catalog for dictionary use. The seed is
// irrelevant here — descriptions never draw from the source — but the
// constructor still runs the startup table validation.
func newReviewCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.New(catalog.NewSource(time.Now().UnixNano(), nil))
	if err != nil {
		return nil, fmt.Errorf("invalid field catalog: %w", err)
	}
	return cat, nil
}
