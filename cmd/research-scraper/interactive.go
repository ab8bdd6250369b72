// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-scraper/internal/cli"
	"github.com/pdiddy/research-scraper/internal/config"
	"github.com/pdiddy/research-scraper/internal/search"
)

// runInteractive starts the read-fetch-save loop. The API key check happens
// before the first prompt so a missing key fails at startup.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.RequireAPIKey(cfg.Search); err != nil {
		return err
	}

	client := &search.Client{
		HTTP:   &http.Client{Timeout: cfg.Search.Timeout},
		APIKey: cfg.Search.APIKey,
	}
	session := &cli.Session{
		Fetcher: client,
		Config:  cfg,
		Out:     os.Stdout,
	}
	return session.Run()
}
