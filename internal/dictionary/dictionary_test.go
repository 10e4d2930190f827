package dictionary

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/xml-report-generator/internal/catalog"
	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.NewSource(1, nil))
	require.NoError(t, err)
	return cat
}

// =============================================================================
// ENTRIES
// =============================================================================

func TestEntries_CoversTheWholeLayout(t *testing.T) {
	entries := Entries(newCatalog(t))

	var memberCount int
	for _, fam := range types.AllFamilies {
		memberCount += len(fam.Members)
	}
	want := len(types.StandaloneItems) + memberCount + len(types.SummaryItems)
	assert.Len(t, entries, want)

	// Standalone first, summary last, families in between.
	assert.Equal(t, "Standalone", entries[0].Section)
	assert.Equal(t, types.StandaloneItems[0], entries[0].FieldID)
	assert.Equal(t, "Summary", entries[len(entries)-1].Section)

	byID := make(map[string]Entry)
	for _, e := range entries {
		if e.Section != "Summary" {
			byID[e.FieldID] = e
		}
	}

	// Sequence keys are flagged; ordinary members are not.
	assert.True(t, byID["SHCDN186"].Key)
	assert.True(t, byID["SHCAR069"].Key)
	assert.False(t, byID["SHCDN490"].Key)

	// Summary bindings surface on the feeding members.
	assert.Equal(t, string(types.TargetScheduleTwoFairValue), byID["SHCDN490"].SummaryTarget)
	assert.Empty(t, byID["SHCDN461"].SummaryTarget)
}

func TestEntries_SummaryRules(t *testing.T) {
	entries := Entries(newCatalog(t))

	rules := make(map[string]string)
	for _, e := range entries {
		if e.Section == "Summary" {
			rules[e.FieldID] = e.Rule
		}
	}

	assert.Equal(t, "instance count of Schedule2", rules["SHCAN450"])
	assert.Equal(t, "accumulated total", rules["SHCAN451"])
	assert.Equal(t, `literal "0"`, rules["SHCAN452"])
}

// =============================================================================
// EXPORT AND CHECK
// =============================================================================

func TestExportAndCheck_RoundTrip(t *testing.T) {
	cat := newCatalog(t)
	path := filepath.Join(t.TempDir(), "fields.xlsx")

	n, err := Export(cat, path)
	require.NoError(t, err)
	assert.Equal(t, len(Entries(cat)), n)

	// The workbook opens with the expected sheet and header.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, headerRow, rows[0])
	assert.Len(t, rows, n+1)

	// A freshly exported workbook checks clean.
	findings, err := Check(cat, path)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck_FlagsEditedWorkbook(t *testing.T) {
	cat := newCatalog(t)
	path := filepath.Join(t.TempDir(), "fields.xlsx")

	_, err := Export(cat, path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	// Row 2 is the first field row; swap its id for one the layout does not
	// contain, making it both unknown and missing.
	require.NoError(t, f.SetCellValue(SheetName, "A2", "SHCX9999"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	findings, err := Check(cat, path)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0], "SHCX9999")
	assert.Contains(t, findings[1], "missing: field "+types.StandaloneItems[0])
}

func TestCheck_FlagsDuplicateRows(t *testing.T) {
	cat := newCatalog(t)
	path := filepath.Join(t.TempDir(), "fields.xlsx")

	n, err := Export(cat, path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	// Append a copy of the first field row below the last one.
	dupRow := strconv.Itoa(n + 2)
	require.NoError(t, f.SetCellValue(SheetName, "A"+dupRow, types.StandaloneItems[0]))
	require.NoError(t, f.SetCellValue(SheetName, "B"+dupRow, "Standalone"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	findings, err := Check(cat, path)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "duplicated")
}

func TestCheck_MissingWorkbook(t *testing.T) {
	_, err := Check(newCatalog(t), filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}
