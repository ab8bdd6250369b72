// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli implements the interactive read-fetch-save loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/pdiddy/research-scraper/internal/search"
	"github.com/pdiddy/research-scraper/pkg/types"
)

// promptText asks the operator for the next keyword.
const promptText = "Enter search keyword (or type 'exit' to quit): "

// exitKeyword terminates the loop, compared case-insensitively.
const exitKeyword = "exit"

// InputKind classifies one line of operator input.
type InputKind int

const (
	// InputQuery runs the fetch pipeline with the trimmed line.
	InputQuery InputKind = iota

	// InputEmpty re-prompts without side effects.
	InputEmpty

	// InputExit terminates the loop.
	InputExit
)

// ClassifyInput trims a line and reports how the loop should treat it. For
// InputQuery the trimmed query is returned alongside the kind.
func ClassifyInput(line string) (InputKind, string) {
	q := strings.TrimSpace(line)
	if q == "" {
		return InputEmpty, ""
	}
	if strings.EqualFold(q, exitKeyword) {
		return InputExit, ""
	}
	return InputQuery, q
}

// Session holds the dependencies of the interactive loop. Queries run
// strictly one at a time; nothing is shared between them except the
// append-only results directory.
type Session struct {
	Fetcher search.Fetcher
	Config  types.PipelineConfig
	Out     io.Writer
}

// Run reads keywords until the operator types "exit" or closes the input
// stream, running one fetch-format-save round per keyword. Empty input
// re-prompts without side effects; pipeline failures are reported and the
// loop continues.
func (s *Session) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptText,
		InterruptPrompt:   "^C",
		EOFPrompt:         exitKeyword,
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Fprintln(s.Out, "Type 'exit' to quit.")
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(s.Out, "Exiting.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		kind, query := ClassifyInput(line)
		switch kind {
		case InputExit:
			fmt.Fprintln(s.Out, "Exiting.")
			return nil
		case InputEmpty:
			fmt.Fprintln(s.Out, "Query is empty. Please enter a valid search keyword.")
		case InputQuery:
			if err := s.RunOnce(context.Background(), query); err != nil {
				fmt.Fprintf(s.Out, "error: %v\n", err)
			}
		}
	}
}

// RunOnce executes the fetch-format-save pipeline for a single keyword. A
// page fetch failure is not an error here: the paginator reports it and
// whatever was accumulated still flows to the writer.
func (s *Session) RunOnce(ctx context.Context, query string) error {
	fmt.Fprintln(s.Out, "Fetching Google Scholar results...")
	out, err := search.Search(ctx, s.Fetcher, query, s.Config.Search, s.Out)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Fetched %d Google Scholar results.\n", len(out.Results))

	records := search.FormatRecords(out.Results)
	_, err = search.WriteCSV(records, query, s.Config.Output, s.Out)
	return err
}
