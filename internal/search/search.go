// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search fetches Google Scholar results page by page through the
// SerpAPI endpoint, normalizes them into records, and writes the survivors
// to CSV files and query files.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// Fetcher retrieves one page of provider results starting at the given
// offset. Implemented by Client; tests substitute scripted fakes.
type Fetcher interface {
	FetchPage(ctx context.Context, query string, start int, cfg types.SearchConfig) ([]OrganicResult, error)
}

// Output holds the raw results accumulated across pages and the fetch
// diagnostics for one query.
type Output struct {
	// Results are the provider records in fetch order. No uniqueness
	// guarantee; deduplication happens after formatting.
	Results []OrganicResult

	// Pages is the number of fetch calls made.
	Pages int

	// FetchErrors records failed page fetches. At most one entry, since
	// the first failure ends pagination.
	FetchErrors []string
}

// Search pages through provider results for query until cfg.MaxResults
// have been requested, a page comes back short, or a page fails. Pages are
// fetched strictly one at a time, each fully awaited before the next. A
// failed page is reported to w and ends pagination; whatever accumulated
// up to that point is kept. The accumulated results are never truncated
// back down to cfg.MaxResults, so the final page may push past the target.
func Search(ctx context.Context, f Fetcher, query string, cfg types.SearchConfig, w io.Writer) (Output, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Output{}, fmt.Errorf("query is empty: provide a search keyword")
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	var out Output
	for start := 0; start < maxResults; start += pageSize {
		page, err := f.FetchPage(ctx, query, start, cfg)
		out.Pages++
		if err != nil {
			out.FetchErrors = append(out.FetchErrors, fmt.Sprintf("offset %d: %v", start, err))
			fmt.Fprintf(w, "warning: page fetch failed at offset %d: %v\n", start, err)
			break
		}
		out.Results = append(out.Results, page...)
		if len(page) < pageSize {
			break
		}
	}
	return out, nil
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.Record, dupsRemoved int, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-14s  %-60s  %-30s  %s\n",
		"ID", "Type", "Title", "Authors/Inventors", "Link/Patent Number")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for i, r := range records {
		fmt.Fprintf(w, "%-4d  %-14s  %-60s  %-30s  %s\n",
			i+1, r.Type, truncate(r.Title, 60), truncate(r.Authors, 30), r.Link)
	}

	fmt.Fprintf(w, "\n%d results", len(records))
	if dupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", dupsRemoved)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
