// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// csvHeader is the fixed header row of every results file.
var csvHeader = []string{"ID", "Type", "Title", "Authors/Inventors", "Link/Patent Number"}

// timestampFmt names output files down to the second so repeated queries
// never collide.
const timestampFmt = "2006-01-02_15-04-05"

// DedupeByTitle drops records whose exact title has already been seen,
// keeping the first occurrence in fetch order. It returns the surviving
// records and the number removed.
func DedupeByTitle(records []types.Record) ([]types.Record, int) {
	seen := make(map[string]struct{}, len(records))
	var unique []types.Record
	removed := 0
	for _, r := range records {
		if _, ok := seen[r.Title]; ok {
			removed++
			continue
		}
		seen[r.Title] = struct{}{}
		unique = append(unique, r)
	}
	return unique, removed
}

// WriteCSV writes records to a timestamped CSV file under cfg.ResultsDir,
// deduplicating by title first. Surviving records get 1-based sequential
// IDs in output order, so duplicates never leave gaps in the numbering.
// When records is empty no file is created and the returned path is empty;
// progress messages go to w.
func WriteCSV(records []types.Record, query string, cfg types.OutputConfig, w io.Writer) (string, error) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found. Skipping file save.")
		return "", nil
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	name := fmt.Sprintf("research_results_%s_%s.csv", sanitizeQuery(query), time.Now().Format(timestampFmt))
	path := filepath.Join(cfg.ResultsDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating results file: %w", err)
	}

	unique, _ := DedupeByTitle(records)

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		f.Close()
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range unique {
		row := []string{strconv.Itoa(i + 1), r.Type, r.Title, r.Authors, r.Link}
		if err := cw.Write(row); err != nil {
			f.Close()
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing results file: %w", err)
	}

	fmt.Fprintf(w, "Results saved to %s\n", path)
	return path, nil
}

// sanitizeQuery keeps the query text readable in the filename while
// replacing characters that would split the name into path components.
func sanitizeQuery(query string) string {
	return strings.NewReplacer("/", "-", "\\", "-").Replace(query)
}
