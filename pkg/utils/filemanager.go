// =============================================================================
// XML Report Generator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the generator:
//   - Output directory management
//   - Output file naming from a placeholder format
//   - Error log generation
//
// The generator core never touches paths; everything filesystem-shaped that
// is not the sink itself lives here.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles output file operations for the generator.
type FileManager struct {
	// OutputDir is the directory where generated documents are placed.
	OutputDir string
}

// NewFileManager creates a FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// EnsureDirectories creates the output directory if it does not exist.
//
// RETURNS:
//   - An error if the directory cannot be created.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// BuildOutputPath expands a file name format into a concrete path inside the
// output directory.
//
// PARAMETERS:
//   - format: The file name format. Supported placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {policy}    - The cross-reference policy name
//   - policy: The policy name substituted for {policy}.
//
// RETURNS:
//   - The full output path.
func (fm *FileManager) BuildOutputPath(format, policy string) string {
	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{policy}", policy)
	return filepath.Join(fm.OutputDir, name)
}

// =============================================================================
// ERROR LOGGING
// =============================================================================

// WriteErrorLog writes a failure report next to the generated output so a
// failed run leaves a diagnosable trail.
//
// PARAMETERS:
//   - name:  Base name for the log file; ".errors.log" is appended.
//   - lines: The diagnostic lines to write.
//
// RETURNS:
//   - The log file path, or an error if writing fails.
func (fm *FileManager) WriteErrorLog(name string, lines []string) (string, error) {
	logPath := filepath.Join(fm.OutputDir, name+".errors.log")

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Error log written %s\n\n", time.Now().Format(time.RFC3339))
	for i, line := range lines {
		fmt.Fprintf(file, "%d. %s\n", i+1, line)
	}

	return logPath, nil
}
