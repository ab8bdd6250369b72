package search

import (
	"testing"

	"github.com/pdiddy/research-scraper/pkg/types"
)

func TestFormatRecords(t *testing.T) {
	tests := []struct {
		name  string
		input OrganicResult
		want  types.Record
	}{
		{
			"full result",
			OrganicResult{
				Title: "Paper A",
				Link:  "https://papers.example.org/a",
				PublicationInfo: PublicationInfo{Authors: []Author{
					{Name: "J. Smith"},
					{Name: "A. Jones"},
				}},
			},
			types.Record{Type: "Research Paper", Title: "Paper A", Authors: "J. Smith, A. Jones", Link: "https://papers.example.org/a"},
		},
		{
			"no authors field",
			OrganicResult{Title: "Paper B", Link: "https://papers.example.org/b"},
			types.Record{Type: "Research Paper", Title: "Paper B", Authors: "N/A", Link: "https://papers.example.org/b"},
		},
		{
			"single author",
			OrganicResult{
				Title:           "Paper C",
				Link:            "https://papers.example.org/c",
				PublicationInfo: PublicationInfo{Authors: []Author{{Name: "B. Doe"}}},
			},
			types.Record{Type: "Research Paper", Title: "Paper C", Authors: "B. Doe", Link: "https://papers.example.org/c"},
		},
		{
			"author without name",
			OrganicResult{
				Title: "Paper D",
				Link:  "https://papers.example.org/d",
				PublicationInfo: PublicationInfo{Authors: []Author{
					{Name: "J. Smith"},
					{AuthorID: "x9"},
				}},
			},
			types.Record{Type: "Research Paper", Title: "Paper D", Authors: "J. Smith, N/A", Link: "https://papers.example.org/d"},
		},
		{
			"missing title and link",
			OrganicResult{},
			types.Record{Type: "Research Paper", Title: "N/A", Authors: "N/A", Link: "N/A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRecords([]OrganicResult{tt.input})
			if len(got) != 1 {
				t.Fatalf("len(got) = %d, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("FormatRecords = %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestFormatRecordsOneToOne(t *testing.T) {
	raw := []OrganicResult{
		{Title: "Paper A"},
		{Title: "Paper A"},
		{},
	}
	got := FormatRecords(raw)
	if len(got) != len(raw) {
		t.Errorf("len(got) = %d, want %d: formatting must not filter", len(got), len(raw))
	}
}

func TestDedupeByTitleFirstWins(t *testing.T) {
	records := []types.Record{
		{Title: "Paper A", Link: "https://papers.example.org/first"},
		{Title: "Paper B", Link: "https://papers.example.org/b"},
		{Title: "Paper A", Link: "https://papers.example.org/second"},
		{Title: "Paper C", Link: "https://papers.example.org/c"},
		{Title: "Paper B", Link: "https://papers.example.org/late"},
	}

	unique, removed := DedupeByTitle(records)
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if len(unique) != 3 {
		t.Fatalf("len(unique) = %d, want 3", len(unique))
	}

	wantTitles := []string{"Paper A", "Paper B", "Paper C"}
	for i, r := range unique {
		if r.Title != wantTitles[i] {
			t.Errorf("unique[%d].Title = %q, want %q", i, r.Title, wantTitles[i])
		}
	}
	if unique[0].Link != "https://papers.example.org/first" {
		t.Errorf("first occurrence should win, got link %q", unique[0].Link)
	}
}

func TestDedupeByTitleNoDuplicates(t *testing.T) {
	records := []types.Record{
		{Title: "Paper A"},
		{Title: "Paper B"},
	}
	unique, removed := DedupeByTitle(records)
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if len(unique) != 2 {
		t.Errorf("len(unique) = %d, want 2", len(unique))
	}
}

func TestDedupeByTitleEmpty(t *testing.T) {
	unique, removed := DedupeByTitle(nil)
	if removed != 0 || len(unique) != 0 {
		t.Errorf("DedupeByTitle(nil) = %v, %d; want empty, 0", unique, removed)
	}
}
