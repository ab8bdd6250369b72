package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-scraper/internal/search"
)

var exportCmd = &cobra.Command{
	Use:   "export [query-file]",
	Short: "Re-render a saved query file without re-fetching",
	Long: `Export reads a YAML query file written by search --save and re-renders
its records as a table, JSON, or a fresh timestamped CSV file. It never
touches the network, so no API key is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	qf, err := search.ReadQueryFile(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		search.FormatTable(qf.Records, qf.Summary.DuplicatesRemoved, os.Stdout)
	case "json":
		return search.FormatJSON(qf.Records, os.Stdout)
	case "csv":
		cfg, err := pipelineConfig(cmd)
		if err != nil {
			return err
		}
		_, err = search.WriteCSV(qf.Records, qf.Query.Keyword, cfg.Output, os.Stdout)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or csv", format)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "table", "output format: table, json, or csv")

	rootCmd.AddCommand(exportCmd)
}
