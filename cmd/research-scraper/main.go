// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-scraper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-scraper/internal/config"
	"github.com/pdiddy/research-scraper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the research-scraper CLI. Run without
// arguments it starts the interactive query loop.
var rootCmd = &cobra.Command{
	Use:   "research-scraper",
	Short: "Collect Google Scholar results into timestamped CSV files",
	Long: `research-scraper queries Google Scholar through the SerpAPI search
endpoint, pages through the results, deduplicates them by title, and writes
the survivors to a timestamped CSV file under the results directory.

Run without arguments for an interactive prompt that fetches one keyword at
a time until you type 'exit'. Use the search subcommand for one-shot queries
and export to re-render a saved query file.

The SerpAPI key is read from search.api_key in the config file, the
.secrets/serpapi-api-key file, or the SERPAPI_KEY environment variable.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSecrets(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runInteractive,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-scraper.yaml or ~/.config/research-scraper/config.yaml)")
	rootCmd.PersistentFlags().String("results-dir", "", "directory for CSV results files (default: ./research_results)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-scraper"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_SCRAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the effective configuration for this invocation
// and creates the results directory, which stays append-only afterwards.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	cfg := config.Load(viper.GetViper(), loadedSecrets)

	if dir, _ := cmd.Flags().GetString("results-dir"); dir != "" {
		cfg.Output.ResultsDir = dir
	}

	if err := os.MkdirAll(cfg.Output.ResultsDir, 0o755); err != nil {
		return cfg, fmt.Errorf("creating results directory: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
