// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/research-scraper/pkg/types"
)

// scholarAPIBase is the SerpAPI search endpoint. Declared as a var so
// tests can substitute an httptest server.
var scholarAPIBase = "https://serpapi.com/search"

// scholarEngine selects the Google Scholar engine on the provider side.
const scholarEngine = "google_scholar"

// Client fetches Google Scholar result pages from the SerpAPI endpoint.
// Each page is a single GET with no retries; a failed request fails the
// page.
type Client struct {
	HTTP   *http.Client
	APIKey string
}

// StatusError reports a response with a non-200 status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scholar API returned HTTP %d", e.Code)
}

// TransportError reports a request that never produced a response
// (timeout, DNS failure, connection reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("scholar API request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FetchPage requests one page of up to cfg.PageSize results at the given
// offset. A response without an organic_results field decodes to an empty
// page, which is indistinguishable from the provider having no more
// results. Non-200 responses return a *StatusError and transport failures
// a *TransportError, so callers can keep the two apart.
func (c *Client) FetchPage(ctx context.Context, query string, start int, cfg types.SearchConfig) ([]OrganicResult, error) {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	params := url.Values{
		"engine":  {scholarEngine},
		"q":       {query},
		"api_key": {c.APIKey},
		"num":     {strconv.Itoa(pageSize)},
		"start":   {strconv.Itoa(start)},
	}
	reqURL := scholarAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var sr scholarResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing scholar response: %w", err)
	}
	return sr.OrganicResults, nil
}

// SerpAPI Google Scholar JSON structures.
type scholarResponse struct {
	SearchMetadata searchMetadata  `json:"search_metadata"`
	OrganicResults []OrganicResult `json:"organic_results"`
}

type searchMetadata struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrganicResult is one entry of the provider's organic_results array.
type OrganicResult struct {
	Position        int             `json:"position"`
	Title           string          `json:"title"`
	Link            string          `json:"link"`
	Snippet         string          `json:"snippet,omitempty"`
	PublicationInfo PublicationInfo `json:"publication_info"`
}

// PublicationInfo carries the nested publication metadata of a result.
type PublicationInfo struct {
	Summary string   `json:"summary,omitempty"`
	Authors []Author `json:"authors,omitempty"`
}

// Author is one entry of a result's author list.
type Author struct {
	Name     string `json:"name"`
	Link     string `json:"link,omitempty"`
	AuthorID string `json:"author_id,omitempty"`
}
