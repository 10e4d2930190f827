// =============================================================================
// XML Report Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which produces one report
// document. It merges the generation profile with command-line overrides and
// drives the generation pipeline.
//
// COMMAND USAGE:
//   reportgen generate [flags]
//
// FLAGS:
//   --schedule2, --schedule3, --business, --service : group repeat counts
//   --out         : explicit output path (overrides output_dir + naming)
//   --xsd         : schema for the post-write element coverage check
//   --seed        : fix all randomness for reproducible output
//   --policy      : cross-reference policy (alternating | unique)
//   --no-validate : skip post-write validation
//   --dry-run     : generate to a discarding sink, write no file
//
// PIPELINE:
//   1. Load the generation profile
//   2. Apply flag overrides
//   3. Resolve the output path (uuid/timestamp placeholders)
//   4. Generate the document in one forward pass
//   5. Validate the written document (unless skipped)
//   6. Report the output path, or log diagnostics on failure
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/xml-report-generator/internal/config"
	"github.com/ginjaninja78/xml-report-generator/internal/generator"
	"github.com/ginjaninja78/xml-report-generator/internal/validation"
	"github.com/ginjaninja78/xml-report-generator/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	// Group repeat counts. Flags override the profile only when set.
	flagBusiness  int
	flagService   int
	flagSchedule2 int
	flagSchedule3 int

	// outPath is an explicit output file path.
	outPath string

	// xsdPath is the schema for the element coverage check.
	xsdPath string

	// seed fixes all randomness when set.
	seed int64

	// policyName selects cross-reference token production.
	policyName string

	// noValidate skips post-write validation.
	noValidate bool

	// genDryRun generates without writing a file.
	genDryRun bool
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one synthetic report document",
	Long: `The generate command synthesizes one well-formed report document in a
single forward pass and, unless told otherwise, validates the written file
against the consumer's structural rules.

Counts may be zero: a family with count 0 simply emits no groups, and the
derived valuation-technique family follows whatever tokens the Schedule 2
groups actually produced.

Given the same seed, the same counts, and the same policy, the output is
byte-identical across runs.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command and its flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&flagBusiness, "business", 1, "Number of business-contact groups")
	generateCmd.Flags().IntVar(&flagService, "service", 1, "Number of service-provider groups")
	generateCmd.Flags().IntVar(&flagSchedule2, "schedule2", 1, "Number of Schedule 2 groups")
	generateCmd.Flags().IntVar(&flagSchedule3, "schedule3", 1, "Number of Schedule 3 groups")

	generateCmd.Flags().StringVar(&outPath, "out", "", "Explicit output path (overrides profile naming)")
	generateCmd.Flags().StringVar(&xsdPath, "xsd", "", "Schema for the element coverage check")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")
	generateCmd.Flags().StringVar(&policyName, "policy", "", "Cross-reference policy: alternating or unique")
	generateCmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip post-write validation")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Generate without writing an output file")
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate merges profile and flags, then drives one generation run.
func runGenerate(cmd *cobra.Command) error {
	// =========================================================================
	// STEP 1: LOAD PROFILE AND APPLY FLAG OVERRIDES
	// =========================================================================

	profile, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if cmd.Flags().Changed("business") {
		profile.Counts.Business = flagBusiness
	}
	if cmd.Flags().Changed("service") {
		profile.Counts.Service = flagService
	}
	if cmd.Flags().Changed("schedule2") {
		profile.Counts.ScheduleTwo = flagSchedule2
	}
	if cmd.Flags().Changed("schedule3") {
		profile.Counts.ScheduleThree = flagSchedule3
	}
	if policyName != "" {
		profile.CrossRefPolicy = policyName
	}
	if xsdPath != "" {
		profile.SchemaPath = xsdPath
	}
	if noValidate {
		profile.SkipValidation = true
	}

	// Seed precedence: flag, then profile, then the clock.
	runSeed := time.Now().UnixNano()
	if profile.Seed != nil {
		runSeed = *profile.Seed
	}
	if cmd.Flags().Changed("seed") {
		runSeed = seed
	}

	// =========================================================================
	// STEP 2: RESOLVE THE OUTPUT PATH
	// =========================================================================

	fm := utils.NewFileManager(profile.OutputDir)

	target := outPath
	if target == "" && !genDryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
		target = fm.BuildOutputPath(profile.FileNameFormat, profile.CrossRefPolicy)
	}

	if verbose {
		fmt.Printf("Policy:    %s\n", profile.CrossRefPolicy)
		fmt.Printf("Seed:      %d\n", runSeed)
		fmt.Printf("Counts:    business=%d service=%d schedule2=%d schedule3=%d\n",
			profile.Counts.Business, profile.Counts.Service,
			profile.Counts.ScheduleTwo, profile.Counts.ScheduleThree)
	}

	// =========================================================================
	// STEP 3: RUN THE PIPELINE
	// =========================================================================

	runner := generator.NewRunner(generator.RunConfig{
		Options: generator.Options{
			BusinessCount:      profile.Counts.Business,
			ServiceCount:       profile.Counts.Service,
			ScheduleTwoCount:   profile.Counts.ScheduleTwo,
			ScheduleThreeCount: profile.Counts.ScheduleThree,
			Policy:             profile.CrossRefPolicy,
			Seed:               runSeed,
			Header:             profile.Header,
		},
		OutputPath:     target,
		SchemaPath:     profile.SchemaPath,
		SkipValidation: profile.SkipValidation,
		DryRun:         genDryRun,
	})

	result := runner.Run()

	// =========================================================================
	// STEP 4: REPORT THE OUTCOME
	// =========================================================================

	if result.Validation != nil && len(result.Validation.Errors) > 0 {
		fmt.Println(validation.FormatErrors(result.Validation.Errors))
	}

	if !result.Success {
		// Leave the partial or invalid output in place for inspection,
		// but write a diagnosable trail next to it.
		if result.OutputPath != "" {
			logErrorTrail(fm, result)
		}
		return result.Error
	}

	if genDryRun {
		fmt.Printf("Dry run complete (%s)\n", result.Elapsed.Round(time.Millisecond))
		return nil
	}

	fmt.Printf("Generated: %s (%s)\n", result.OutputPath, result.Elapsed.Round(time.Millisecond))
	return nil
}

// logErrorTrail writes the failure diagnostics next to the output file.
func logErrorTrail(fm *utils.FileManager, result generator.Result) {
	lines := []string{result.Error.Error()}
	if result.Validation != nil {
		for _, verr := range result.Validation.Errors {
			lines = append(lines, verr.Error())
		}
	}

	base := strings.TrimSuffix(filepath.Base(result.OutputPath), filepath.Ext(result.OutputPath))
	if logPath, err := fm.WriteErrorLog(base, lines); err == nil {
		fmt.Printf("Diagnostics written to %s\n", logPath)
	}
}
