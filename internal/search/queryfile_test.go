package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/research-scraper/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	out := Output{
		Results: []OrganicResult{
			{Title: "Paper A"},
			{Title: "Paper A"},
			{Title: "Paper B"},
		},
		Pages:       1,
		FetchErrors: []string{"offset 10: scholar API returned HTTP 503"},
	}
	records := []types.Record{
		{Type: "Research Paper", Title: "Paper A", Authors: "J. Smith", Link: "https://papers.example.org/a"},
		{Type: "Research Paper", Title: "Paper B", Authors: "N/A", Link: "N/A"},
	}

	cfg := testCfg()
	if err := WriteQueryFile(path, "transformers", cfg, out, records); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}
	if qf.Query.Keyword != "transformers" {
		t.Errorf("Keyword = %q, want %q", qf.Query.Keyword, "transformers")
	}
	if qf.Config.PageSize != 10 || qf.Config.MaxResults != 50 {
		t.Errorf("Config = %+v, want page size 10, max results 50", qf.Config)
	}
	if len(qf.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(qf.Records))
	}
	if qf.Records[0] != records[0] {
		t.Errorf("Records[0] = %+v, want %+v", qf.Records[0], records[0])
	}
	if qf.Summary.Fetched != 3 || qf.Summary.Unique != 2 || qf.Summary.DuplicatesRemoved != 1 {
		t.Errorf("Summary = %+v, want fetched 3, unique 2, duplicates removed 1", qf.Summary)
	}
	if len(qf.Summary.FetchErrors) != 1 {
		t.Errorf("len(FetchErrors) = %d, want 1", len(qf.Summary.FetchErrors))
	}
	if qf.Summary.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading query file") {
		t.Errorf("expected read error, got: %v", err)
	}
}

func TestReadQueryFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("records: [not: {valid"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err := ReadQueryFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing query file") {
		t.Errorf("expected parse error, got: %v", err)
	}
}
