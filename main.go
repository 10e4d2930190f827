// =============================================================================
// XML Report Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XML Report Generator CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   reportgen generate            - Synthesize one report document
//   reportgen dictionary export   - Write the field dictionary workbook
//   reportgen dictionary check    - Check an edited dictionary workbook
//   reportgen version             - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/xml-report-generator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
