package esi

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"esicli/pkg/esi/models"
	"esicli/pkg/esi/parser"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		DataDir:   t.TempDir(),
		Filename:  "main_indicators_nace2.xlsx",
		SheetName: "MONTHLY",
	}
}

// writeFixtureWorkbook writes a workbook holding the same data as
// fixtureTables: every entity block filled at its catalog column
// positions, June through September 2020.
func writeFixtureWorkbook(t *testing.T, cfg Config) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", cfg.SheetName))

	months := []string{"2020-06-01", "2020-07-01", "2020-08-01", "2020-09-01"}
	for p, m := range months {
		require.NoError(t, f.SetCellValue(cfg.SheetName, fmt.Sprintf("A%d", p+2), m))
	}

	for i, code := range EntityCodes {
		sel, err := parser.ParseSelector(EntityColumns[code])
		require.NoError(t, err)
		for j, suffix := range ComponentSuffixes {
			col, err := excelize.ColumnNumberToName(sel.Start + j)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(cfg.SheetName, col+"1", strings.ToUpper(code)+suffix))
			for p := range months {
				v := float64(p) - float64(i)*0.5 - float64(j)
				if p == len(months)-1 && j == len(ComponentSuffixes)-1 {
					v = compositeValues[code]
				}
				require.NoError(t, f.SetCellValue(cfg.SheetName, fmt.Sprintf("%s%d", col, p+2), v))
			}
		}
	}

	require.NoError(t, f.SaveAs(cfg.WorkbookPath()))
}

func TestFetchImportsAndWritesCache(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	tables, err := FetchTables(cfg)
	require.NoError(t, err)

	assert.Equal(t, fixtureTables(), tables)
	for _, code := range EntityCodes {
		assert.FileExists(t, cfg.CacheFile(code))
	}
}

func TestFetchCacheRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	imported, err := FetchTables(cfg)
	require.NoError(t, err)

	cached, err := FetchTables(cfg)
	require.NoError(t, err)

	assert.Equal(t, imported, cached)
}

func TestFetchUsesCacheWithoutWorkbook(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	imported, err := FetchTables(cfg)
	require.NoError(t, err)

	// With the workbook gone the second fetch can only succeed by
	// reading the cache files.
	require.NoError(t, os.Remove(cfg.WorkbookPath()))

	cached, err := FetchTables(cfg)
	require.NoError(t, err)
	assert.Equal(t, imported, cached)
}

func TestFetchRecachesWhenAnyFileMissing(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	_, err := FetchTables(cfg)
	require.NoError(t, err)

	// One missing file invalidates the whole cache; the next fetch
	// reimports from the workbook and rewrites all 16 files.
	require.NoError(t, os.Remove(cfg.CacheFile("de")))

	tables, err := FetchTables(cfg)
	require.NoError(t, err)
	assert.Equal(t, fixtureTables(), tables)
	for _, code := range EntityCodes {
		assert.FileExists(t, cfg.CacheFile(code))
	}
}

func TestFetchMissingWorkbook(t *testing.T) {
	_, err := FetchTables(testConfig(t))
	assert.Error(t, err)
}

func TestFetchMissingSheet(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)
	cfg.SheetName = "YEARLY"

	_, err := FetchTables(cfg)
	assert.Error(t, err)
}

func TestLatestRankingsFromFiles(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	month := sep2020()
	rankings, err := LatestRankings(cfg, &month)
	require.NoError(t, err)

	composite := rankings[KeyESI]
	assert.Equal(t, models.RankedValue{Name: "France", Value: 96.6}, composite[0])
	assert.Equal(t, models.RankedValue{Name: "Germany", Value: 95.5}, composite[1])
}

func TestLatestRankingsOutOfRangeFromFiles(t *testing.T) {
	cfg := testConfig(t)
	writeFixtureWorkbook(t, cfg)

	month := models.Month{Year: 1990, Month: 1}
	_, err := LatestRankings(cfg, &month)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}
