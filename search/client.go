package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lumenops/vendor-extract-service/common"
)

const searchPath = "/api/v1/records/search"

// Client talks to the host platform's hosted record-search API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a record-search client for the given host endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// searchRequest is the wire form of a query. Filters travel as ordered
// triples, the encoding the host's query API expects.
type searchRequest struct {
	RecordType string      `json:"recordType"`
	Filters    [][3]string `json:"filters"`
	Columns    []string    `json:"columns"`
	Range      searchRange `json:"range"`
}

type searchRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type searchResponse struct {
	Rows []RawRecord `json:"rows"`
}

// Search implements RecordSearch against the host API.
func (c *Client) Search(ctx context.Context, q QuerySpec, start, end int) ([]RawRecord, error) {
	if q.RecordType == "" {
		return nil, fmt.Errorf("%w: missing record type", common.ErrInvalidQuery)
	}
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: invalid range [%d, %d)", common.ErrInvalidQuery, start, end)
	}

	filters := make([][3]string, len(q.Filters))
	for i, f := range q.Filters {
		filters[i] = [3]string{f.Field, f.Op, f.Value}
	}

	body, err := json.Marshal(searchRequest{
		RecordType: q.RecordType,
		Filters:    filters,
		Columns:    q.Columns,
		Range:      searchRange{Start: start, End: end},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding query: %v", common.ErrInvalidQuery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", common.ErrSearchFailed, resp.StatusCode, snippet)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrSearchFailed, err)
	}

	return result.Rows, nil
}
