package esi

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config locates the source workbook and the cache directory. It is an
// immutable value passed into every top-level operation.
type Config struct {
	// DataDir holds the cache files and, by default, the workbook.
	DataDir string `envconfig:"DATA_DIR" default:"."`
	// Filename is the source workbook file name, relative to DataDir.
	Filename string `envconfig:"FILE" default:"main_indicators_nace2.xlsx"`
	// SheetName is the workbook sheet holding the monthly series.
	SheetName string `envconfig:"SHEET" default:"MONTHLY"`
}

// DefaultConfig builds a Config from ESI_* environment variables,
// falling back to the struct defaults.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ESI", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WorkbookPath returns the path of the source workbook.
func (c Config) WorkbookPath() string {
	return filepath.Join(c.DataDir, c.Filename)
}

// CacheFile returns the path of an entity's cache file.
func (c Config) CacheFile(code string) string {
	return filepath.Join(c.DataDir, code+"_esi.csv")
}
