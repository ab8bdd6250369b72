// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-scraper/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg := Load(viper.New(), nil)

	assert.Equal(t, 30*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "research-scraper/0.1", cfg.Search.UserAgent)
	assert.Equal(t, 10, cfg.Search.PageSize)
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.Equal(t, "research_results", cfg.Output.ResultsDir)
	assert.Empty(t, cfg.Search.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	v := viper.New()
	v.Set("search.timeout", "5s")
	v.Set("search.user_agent", "custom-agent/1.0")
	v.Set("search.page_size", 20)
	v.Set("search.max_results", 100)
	v.Set("output.results_dir", "out/results")

	cfg := Load(v, nil)

	assert.Equal(t, 5*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "custom-agent/1.0", cfg.Search.UserAgent)
	assert.Equal(t, 20, cfg.Search.PageSize)
	assert.Equal(t, 100, cfg.Search.MaxResults)
	assert.Equal(t, "out/results", cfg.Output.ResultsDir)
}

func TestAPIKeyResolutionOrder(t *testing.T) {
	tests := []struct {
		name      string
		configKey string
		secretKey string
		envKey    string
		want      string
	}{
		{"config file wins", "from-config", "from-secret", "from-env", "from-config"},
		{"secret beats environment", "", "from-secret", "from-env", "from-secret"},
		{"environment as fallback", "", "", "from-env", "from-env"},
		{"nothing set", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIKey, tt.envKey)

			v := viper.New()
			if tt.configKey != "" {
				v.Set("search.api_key", tt.configKey)
			}
			secrets := map[string]string{}
			if tt.secretKey != "" {
				secrets["serpapi-api-key"] = tt.secretKey
			}

			cfg := Load(v, secrets)
			assert.Equal(t, tt.want, cfg.Search.APIKey)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	err := RequireAPIKey(types.SearchConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	assert.NoError(t, RequireAPIKey(types.SearchConfig{APIKey: "sk_live"}))
}
