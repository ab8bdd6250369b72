package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-scraper/internal/config"
	"github.com/pdiddy/research-scraper/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Run a single Google Scholar query and print the records",
	Long: `Search fetches Google Scholar results for one keyword, ten at a time up
to the configured target, and prints the normalized records after title
deduplication. Use --csv to also write the timestamped results file, or
--save to capture the run as a YAML query file for later replay with
export.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query is empty: provide a search keyword")
	}

	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.Search.MaxResults = maxResults
	}
	if err := config.RequireAPIKey(cfg.Search); err != nil {
		return err
	}

	client := &search.Client{
		HTTP:   &http.Client{Timeout: cfg.Search.Timeout},
		APIKey: cfg.Search.APIKey,
	}

	out, err := search.Search(context.Background(), client, query, cfg.Search, os.Stderr)
	if err != nil {
		return err
	}

	records, removed := search.DedupeByTitle(search.FormatRecords(out.Results))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if err := search.FormatJSON(records, os.Stdout); err != nil {
			return err
		}
	} else {
		search.FormatTable(records, removed, os.Stdout)
	}

	if writeCSV, _ := cmd.Flags().GetBool("csv"); writeCSV {
		if _, err := search.WriteCSV(records, query, cfg.Output, os.Stdout); err != nil {
			return err
		}
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, query, cfg.Search, out, records); err != nil {
			return err
		}
		fmt.Printf("Query saved to %s\n", savePath)
	}

	return nil
}

func init() {
	searchCmd.Flags().String("query", "", "search keyword (alternative to the positional argument)")
	searchCmd.Flags().Int("max-results", 0, "target number of results (0 = configured default)")
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("csv", false, "also write the timestamped CSV results file")
	searchCmd.Flags().String("save", "", "save the run as a YAML query file")

	rootCmd.AddCommand(searchCmd)
}
