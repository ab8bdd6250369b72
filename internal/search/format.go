// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// TypeResearchPaper is the record type assigned to Google Scholar results.
const TypeResearchPaper = "Research Paper"

// FormatRecords normalizes raw results into output records. The mapping is
// 1:1 with no filtering: every raw result yields exactly one record, with
// "N/A" substituted for any field the provider left out.
func FormatRecords(results []OrganicResult) []types.Record {
	records := make([]types.Record, len(results))
	for i, r := range results {
		records[i] = types.Record{
			Type:    TypeResearchPaper,
			Title:   orNotAvailable(r.Title),
			Authors: joinAuthors(r.PublicationInfo.Authors),
			Link:    orNotAvailable(r.Link),
		}
	}
	return records
}

// joinAuthors joins author names with ", " in source order. An author
// without a name contributes "N/A"; an absent author list collapses to the
// single value "N/A" rather than an empty string.
func joinAuthors(authors []Author) string {
	if len(authors) == 0 {
		return types.NotAvailable
	}
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = orNotAvailable(a.Name)
	}
	return strings.Join(names, ", ")
}

func orNotAvailable(s string) string {
	if s == "" {
		return types.NotAvailable
	}
	return s
}
