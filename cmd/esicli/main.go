// Package main provides the CLI entry point for esicli.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"esicli/pkg/esi"
	"esicli/pkg/esi/models"
	"esicli/pkg/esi/output"
)

// outOfRangeMessage is the fixed user-facing message for ranking queries
// outside the available data range.
const outOfRangeMessage = "Date given is out of range"

var (
	dataDir    string
	filename   string
	sheetName  string
	date       string
	jsonOutput bool
	chartPath  string
	months     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "esicli",
		Short: "Rankings and charts for the EU Economic Sentiment Indicator",
		Long: `esicli imports the EU Commission's Economic Sentiment Indicator
workbook, caches it as per-country CSV files, and renders monthly
cross-country rankings and historical line charts.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the workbook and cache files")
	rootCmd.PersistentFlags().StringVar(&filename, "esi-file", "", "Source workbook file name")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Workbook sheet name")

	rankingsCmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show the latest cross-country rankings per component",
		Args:  cobra.NoArgs,
		RunE:  runRankings,
	}
	rankingsCmd.Flags().StringVar(&date, "date", "", "Target month as YYYY-M or YYYY-MM (default: latest)")
	rankingsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of a table")
	rootCmd.AddCommand(rankingsCmd)

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Render an SVG line chart of a component's history",
	}
	chartCmd.PersistentFlags().StringVarP(&chartPath, "output", "o", "", "Output file path (default: stdout)")
	chartCmd.PersistentFlags().IntVar(&months, "months", 12, "Number of months of history")
	chartCmd.AddCommand(
		newChartCommand("industrial", esi.SuffixIndustrial),
		newChartCommand("services", esi.SuffixServices),
		newChartCommand("consumer", esi.SuffixConsumer),
		newChartCommand("retail-trade", esi.SuffixRetail),
		newChartCommand("construction", esi.SuffixConstruction),
		newChartCommand("esi", esi.SuffixComposite),
	)
	rootCmd.AddCommand(chartCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: env-derived defaults overridden
// by whichever persistent flags were set.
func loadConfig() (esi.Config, error) {
	cfg, err := esi.DefaultConfig()
	if err != nil {
		return esi.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if filename != "" {
		cfg.Filename = filename
	}
	if sheetName != "" {
		cfg.SheetName = sheetName
	}
	return cfg, nil
}

func runRankings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var month *models.Month
	if date != "" {
		m, err := models.ParseMonth(date)
		if err != nil {
			return err
		}
		month = &m
	}

	rankings, err := esi.LatestRankings(cfg, month)
	if err != nil {
		if errors.Is(err, esi.ErrDateOutOfRange) {
			fmt.Fprintln(os.Stderr, outOfRangeMessage)
			os.Exit(1)
		}
		return err
	}

	if jsonOutput {
		data, err := output.RankingsToJSON(rankings, false)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	output.RenderRankingsTable(os.Stdout, rankings, date)
	return nil
}

// newChartCommand builds one of the six convenience chart subcommands,
// binding a fixed component suffix and its friendly title.
func newChartCommand(use, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Chart %s history", esi.ComponentTitles[suffix]),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if months < 1 {
				return fmt.Errorf("invalid --months %d: must be at least 1", months)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			series, err := esi.HistoricalValues(cfg, suffix, months)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("ESI - %s (past %d months)", esi.ComponentTitles[suffix], months)
			return output.WriteHistoryChart(os.Stdout, chartPath, series, title)
		},
	}
}
