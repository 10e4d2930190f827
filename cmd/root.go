// =============================================================================
// XML Report Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (reportgen)
//   ├── generateCmd (reportgen generate)
//   ├── dictionaryCmd (reportgen dictionary export|check)
//   └── versionCmd (reportgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the generation profile.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "reportgen",

	Short: "XML Report Generator - Synthesize schema-shaped financial report documents",

	Long: `XML Report Generator is a CLI tool that synthesizes well-formed,
schema-shaped financial-report XML documents for exercising a downstream
report consumer.

One invocation produces one document in a single forward pass: a fixed
header block, one reporting entity with standalone report items, repeatable
item-group families (contact blocks, schedule sections), a derived
cross-reference family, and trailing summary items whose values aggregate
the data emitted earlier in the same pass.

Key Features:
  - Declarative per-field generation rules (no schema introspection)
  - Streaming emission: O(1) memory beyond nesting depth
  - Two cross-reference policies: alternating labels or unique random draws
  - Seeded, byte-reproducible output for regression suites
  - Post-write structural validation against the consumer's rules

Example Usage:
  reportgen generate                       # One document, one group each
  reportgen generate --schedule2 3 --seed 7
  reportgen dictionary export --out fields.xlsx`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	// --config flag: path to the generation profile. A missing file is
	// fine — every setting has a default.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"profile.yaml",
		"Path to the generation profile (default is profile.yaml)",
	)

	// --verbose flag: enables verbose output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
