package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	fm := NewFileManager(dir)

	require.NoError(t, fm.EnsureDirectories())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	require.NoError(t, fm.EnsureDirectories())
}

func TestBuildOutputPath(t *testing.T) {
	fm := NewFileManager("/data/out")

	path := fm.BuildOutputPath("{timestamp}_{uuid}_{policy}.xml", "alternating")

	dir, name := filepath.Split(path)
	assert.Equal(t, "/data/out", filepath.Clean(dir))

	parts := strings.SplitN(strings.TrimSuffix(name, ".xml"), "_", 3)
	require.Len(t, parts, 3)

	assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), parts[0][:8])
	_, err := uuid.Parse(parts[2][:36])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_alternating.xml"))
}

func TestBuildOutputPath_NoPlaceholders(t *testing.T) {
	fm := NewFileManager("out")
	assert.Equal(t, filepath.Join("out", "fixed.xml"), fm.BuildOutputPath("fixed.xml", "unique"))
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(dir)

	path, err := fm.WriteErrorLog("report", []string{"first failure", "second failure"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.errors.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1. first failure")
	assert.Contains(t, string(data), "2. second failure")
}

func TestWriteErrorLog_MissingDirectory(t *testing.T) {
	fm := NewFileManager(filepath.Join(t.TempDir(), "absent"))

	_, err := fm.WriteErrorLog("report", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create error log")
}
