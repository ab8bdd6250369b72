// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the read-only pipeline configuration from the
// config file, the secrets directory, and the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "research-scraper/0.1"
	DefaultPageSize   = 10
	DefaultMaxResults = 50
	DefaultResultsDir = "research_results"
)

// EnvAPIKey is the environment variable consulted when no API key is found
// in the config file or the secrets directory.
const EnvAPIKey = "SERPAPI_KEY"

// secretAPIKeyFile is the secrets-directory filename holding the key.
const secretAPIKeyFile = "serpapi-api-key"

// ErrMissingAPIKey signals that no SerpAPI key was found in any source.
var ErrMissingAPIKey = errors.New("SerpAPI key is missing: set search.api_key in the config file, .secrets/serpapi-api-key, or the SERPAPI_KEY environment variable")

// Load builds the pipeline configuration from viper settings and loaded
// secrets. The configuration is constructed once at startup and treated as
// read-only by every stage.
func Load(v *viper.Viper, secrets map[string]string) types.PipelineConfig {
	v.SetDefault("search.timeout", DefaultTimeout)
	v.SetDefault("search.user_agent", DefaultUserAgent)
	v.SetDefault("search.page_size", DefaultPageSize)
	v.SetDefault("search.max_results", DefaultMaxResults)
	v.SetDefault("output.results_dir", DefaultResultsDir)

	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("search.timeout"),
				UserAgent: v.GetString("search.user_agent"),
			},
			APIKey:     resolveAPIKey(v, secrets),
			PageSize:   v.GetInt("search.page_size"),
			MaxResults: v.GetInt("search.max_results"),
		},
		Output: types.OutputConfig{
			ResultsDir: v.GetString("output.results_dir"),
		},
	}
}

// resolveAPIKey returns the key from the first source that has one:
// config file, secrets directory, then environment.
func resolveAPIKey(v *viper.Viper, secrets map[string]string) string {
	if k := v.GetString("search.api_key"); k != "" {
		return k
	}
	if k := secrets[secretAPIKeyFile]; k != "" {
		return k
	}
	return os.Getenv(EnvAPIKey)
}

// RequireAPIKey rejects configurations without an API key. Fetching
// commands call it before the first prompt or request so the failure
// surfaces at startup.
func RequireAPIKey(cfg types.SearchConfig) error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
