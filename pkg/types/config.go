package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-scraper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the fetch stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates requests to the search provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// PageSize is the number of results requested per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxResults is the target number of results to accumulate per query
	// (default 50). The last page may overshoot it; results are never
	// truncated back down to the target.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// OutputConfig holds settings for the writer stage.
type OutputConfig struct {
	// ResultsDir is the directory CSV files are written to
	// (default "research_results", created relative to the working
	// directory if absent).
	ResultsDir string `json:"results_dir" yaml:"results_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
// It is constructed once at startup and read-only afterwards.
type PipelineConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Output OutputConfig `json:"output" yaml:"output"`
}
