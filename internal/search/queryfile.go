// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// QueryFile is the on-disk representation of one scraper run. The operator
// can save a query's records to a file and re-render them later without
// touching the network.
type QueryFile struct {
	Query   QueryParams     `yaml:"query"`
	Config  QueryFileConfig `yaml:"config"`
	Records []types.Record  `yaml:"records"`
	Summary QuerySummary    `yaml:"summary"`
}

// QueryParams stores the query in a serializable form.
type QueryParams struct {
	Keyword string `yaml:"keyword"`
}

// QueryFileConfig stores the fetch configuration that produced the records.
type QueryFileConfig struct {
	PageSize   int `yaml:"page_size"`
	MaxResults int `yaml:"max_results"`
}

// QuerySummary stores run statistics and a timestamp.
type QuerySummary struct {
	Fetched           int       `yaml:"fetched"`
	Unique            int       `yaml:"unique"`
	DuplicatesRemoved int       `yaml:"duplicates_removed"`
	FetchErrors       []string  `yaml:"fetch_errors,omitempty"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the query, the fetch configuration that ran it, and
// the deduplicated records to a YAML file. records must already be
// deduplicated; the summary derives its counts from the gap between raw
// and surviving records.
func WriteQueryFile(path, query string, cfg types.SearchConfig, out Output, records []types.Record) error {
	qf := QueryFile{
		Query: QueryParams{Keyword: query},
		Config: QueryFileConfig{
			PageSize:   cfg.PageSize,
			MaxResults: cfg.MaxResults,
		},
		Records: records,
		Summary: QuerySummary{
			Fetched:           len(out.Results),
			Unique:            len(records),
			DuplicatesRemoved: len(out.Results) - len(records),
			FetchErrors:       out.FetchErrors,
			Timestamp:         time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
