package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_WritesAndValidates(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.xml")

	result := NewRunner(RunConfig{
		Options: Options{
			BusinessCount: 1, ServiceCount: 1, ScheduleTwoCount: 2, ScheduleThreeCount: 1,
			Seed: 1,
			Now:  testClock,
		},
		OutputPath: outPath,
	}).Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, outPath, result.OutputPath)

	require.NotNil(t, result.Validation, "validation runs by default")
	assert.True(t, result.Validation.IsValid)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRunner_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	result := NewRunner(RunConfig{
		Options:    Options{ScheduleTwoCount: 1, Seed: 2, Now: testClock},
		OutputPath: filepath.Join(dir, "never.xml"),
		DryRun:     true,
	}).Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Empty(t, result.OutputPath, "dry runs report no output path")
	assert.Nil(t, result.Validation)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_SkipValidation(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.xml")

	result := NewRunner(RunConfig{
		Options:        Options{Seed: 3, Now: testClock},
		OutputPath:     outPath,
		SkipValidation: true,
	}).Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Nil(t, result.Validation)
}

func TestRunner_BadOutputDirectory(t *testing.T) {
	result := NewRunner(RunConfig{
		Options:    Options{Seed: 4, Now: testClock},
		OutputPath: filepath.Join(t.TempDir(), "missing", "report.xml"),
	}).Run()

	require.Error(t, result.Error)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "failed to create output file")
}

func TestRunner_ReportsGeneratorErrors(t *testing.T) {
	result := NewRunner(RunConfig{
		Options:    Options{BusinessCount: -1},
		OutputPath: filepath.Join(t.TempDir(), "report.xml"),
	}).Run()

	require.Error(t, result.Error)
	assert.False(t, result.Success)
}
