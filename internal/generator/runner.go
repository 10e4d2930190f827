// =============================================================================
// XML Report Generator - Generation Runner
// =============================================================================
//
// This module owns the file-level pipeline around one document generation:
//
//   1. Open the output sink (or io.Discard for a dry run)
//   2. Generate the document in a single forward pass
//   3. Flush and close the sink
//   4. Optionally validate the written document
//
// The sink's lifecycle lives entirely here, scoped around the generation; the
// core generator only ever sees an io.Writer. A failed generation leaves the
// partial file in place for the operator to inspect or discard — the runner
// never deletes output.
//
// =============================================================================

package generator

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ginjaninja78/xml-report-generator/internal/validation"
)

// =============================================================================
// RUN CONFIGURATION AND RESULT
// =============================================================================

// RunConfig configures one file-level generation run.
type RunConfig struct {
	// Options is the document generation configuration.
	Options Options

	// OutputPath is where the document is written.
	OutputPath string

	// SchemaPath is the XSD used for the element coverage check. Empty
	// disables the schema part of validation.
	SchemaPath string

	// SkipValidation disables post-write validation entirely.
	SkipValidation bool

	// DryRun generates to a discarding sink and writes no file.
	DryRun bool
}

// Result is the outcome of one run.
type Result struct {
	// OutputPath is the written file, empty for dry runs.
	OutputPath string

	// Success is true when generation (and validation, if enabled) passed.
	Success bool

	// Error is the failure, if any.
	Error error

	// Validation holds the post-write validation findings, when performed.
	Validation *validation.ValidationResult

	// Elapsed is the total wall time of the run.
	Elapsed time.Duration
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes one generation run. Create a fresh Runner per run.
type Runner struct {
	cfg RunConfig
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg RunConfig) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the pipeline and reports the outcome. It never panics; every
// failure is carried in the Result.
func (r *Runner) Run() Result {
	start := time.Now()

	result := Result{}
	if !r.cfg.DryRun {
		result.OutputPath = r.cfg.OutputPath
	}

	if err := r.generate(); err != nil {
		result.Error = err
		result.Elapsed = time.Since(start)
		return result
	}

	if !r.cfg.DryRun && !r.cfg.SkipValidation {
		vr, err := validation.NewValidator().ValidateFile(r.cfg.OutputPath, r.cfg.SchemaPath)
		if err != nil {
			result.Error = fmt.Errorf("validation failed to run: %w", err)
			result.Elapsed = time.Since(start)
			return result
		}

		result.Validation = vr
		if !vr.IsValid {
			result.Error = fmt.Errorf("document failed validation with %d error(s)", vr.ErrorCount)
			result.Elapsed = time.Since(start)
			return result
		}
	}

	result.Success = true
	result.Elapsed = time.Since(start)
	return result
}

// generate opens the sink, runs the generator, and closes the sink.
func (r *Runner) generate() error {
	var sink io.Writer

	if r.cfg.DryRun {
		sink = io.Discard
	} else {
		file, err := os.Create(r.cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		sink = file
	}

	gen, err := New(sink, r.cfg.Options)
	if err != nil {
		return err
	}

	if err := gen.Run(); err != nil {
		return fmt.Errorf("generation aborted: %w", err)
	}

	if file, ok := sink.(*os.File); ok {
		if err := file.Sync(); err != nil {
			return fmt.Errorf("failed to sync output file: %w", err)
		}
	}

	return nil
}
