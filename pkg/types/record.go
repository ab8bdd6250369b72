// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research-scraper
// pipeline: the normalized output record and the per-stage configuration.
package types

// NotAvailable is the sentinel value written for any record field the
// provider did not supply.
const NotAvailable = "N/A"

// Record is the normalized shape of one search result, as written to CSV
// output and query files. Records are held in memory for the duration of a
// single query; the only persisted artifacts are the output files.
type Record struct {
	// Type labels the result category (e.g. "Research Paper").
	Type string `json:"type" yaml:"type"`

	// Title is the result title. It is the deduplication key: when two
	// records share a title, the first by fetch order wins.
	Title string `json:"title" yaml:"title"`

	// Authors is the comma-joined author list in source order, or "N/A"
	// when the provider supplied none.
	Authors string `json:"authors" yaml:"authors"`

	// Link is the result URL.
	Link string `json:"link" yaml:"link"`
}
