package esi

import (
	"log/slog"
	"os"

	"esicli/pkg/esi/models"
	"esicli/pkg/esi/parser"
)

// FetchTables returns one table per catalog entity, indexed by monthly
// period. Tables are loaded from the per-entity cache files when all of
// them exist; otherwise the source workbook is imported and every cache
// file is rewritten. The cache is all-or-nothing: a single missing file
// triggers a full reimport of all entities.
//
// A cache, once written, is reused indefinitely until its files are
// deleted by hand.
func FetchTables(cfg Config) (models.TableCollection, error) {
	cached := true
	for _, code := range EntityCodes {
		if _, err := os.Stat(cfg.CacheFile(code)); err != nil {
			cached = false
			break
		}
	}

	var (
		raw map[string]*parser.Table
		err error
	)
	if cached {
		slog.Debug("loading entity tables from cache", slog.String("data_dir", cfg.DataDir))
		raw, err = loadCachedTables(cfg)
	} else {
		slog.Debug("importing entity tables from workbook", slog.String("path", cfg.WorkbookPath()))
		raw, err = importTables(cfg)
	}
	if err != nil {
		return nil, err
	}

	tables := make(models.TableCollection, len(EntityCodes))
	for code, t := range raw {
		tables[code] = toMonthly(t)
	}
	return tables, nil
}

// importTables reads the workbook sheet once and builds every entity's
// table from its column selector, then writes all cache files. No cache
// file is written until every table has been built.
func importTables(cfg Config) (map[string]*parser.Table, error) {
	rows, err := parser.ReadSheet(cfg.WorkbookPath(), cfg.SheetName)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]*parser.Table, len(EntityCodes))
	for _, code := range EntityCodes {
		t, err := parser.EntityTableFromRows(rows, EntityColumns[code])
		if err != nil {
			return nil, &ImportError{Entity: code, Err: err}
		}
		raw[code] = t
	}

	for _, code := range EntityCodes {
		if err := parser.WriteCacheFile(cfg.CacheFile(code), raw[code]); err != nil {
			return nil, &ImportError{Entity: code, Err: err}
		}
	}
	return raw, nil
}

func loadCachedTables(cfg Config) (map[string]*parser.Table, error) {
	raw := make(map[string]*parser.Table, len(EntityCodes))
	for _, code := range EntityCodes {
		t, err := parser.LoadCacheFile(cfg.CacheFile(code))
		if err != nil {
			return nil, &ImportError{Entity: code, Err: err}
		}
		raw[code] = t
	}
	return raw, nil
}

// toMonthly converts a raw date-indexed table to the monthly-period
// index used by all downstream queries, truncating day-of-month.
func toMonthly(t *parser.Table) *models.EntityTable {
	periods := make([]models.Month, len(t.Dates))
	for i, d := range t.Dates {
		periods[i] = models.MonthOf(d)
	}
	return &models.EntityTable{
		Columns: t.Columns,
		Periods: periods,
		Rows:    t.Rows,
	}
}
