// Package indexstore publishes finished outlines to an external index
// service over HTTP. Publication is optional; the rest of the system
// works without it.
package indexstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

// RetryableError marks an indexstore failure that is worth retrying,
// such as a 429 or a 5xx.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("indexstore status %d: %s", e.StatusCode, e.Message)
}

// Client communicates with the indexstore HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OutlineRecord is the body for PUT /outlines/{key}.
type OutlineRecord struct {
	Source    string          `json:"source"`
	Title     string          `json:"title"`
	Headings  int             `json:"headings"`
	Outline   []outline.Entry `json:"outline"`
	IndexedAt string          `json:"indexed_at,omitempty"`
}

// OutlineSummary is a single record from a listing.
type OutlineSummary struct {
	Key      string `json:"key"`
	Source   string `json:"source"`
	Title    string `json:"title"`
	Headings int    `json:"headings"`
}

// PutOutline stores or replaces the outline record for the given key.
func (c *Client) PutOutline(ctx context.Context, key string, rec OutlineRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal outline record: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/outlines/"+url.PathEscape(key), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("put outline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError("put outline "+key, resp)
	}
	return nil
}

// GetOutline retrieves an outline record by key. A missing key returns
// nil, nil.
func (c *Client) GetOutline(ctx context.Context, key string) (*OutlineRecord, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/outlines/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get outline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("get outline "+key, resp)
	}

	var rec OutlineRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode outline record: %w", err)
	}
	return &rec, nil
}

// ListOutlines returns stored outline summaries, newest first.
func (c *Client) ListOutlines(ctx context.Context, limit int) ([]OutlineSummary, error) {
	u := c.baseURL + "/outlines"
	if limit > 0 {
		u += "?limit=" + url.QueryEscape(fmt.Sprintf("%d", limit))
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list outlines: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("list outlines", resp)
	}

	var result struct {
		Outlines []OutlineSummary `json:"outlines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode outlines: %w", err)
	}
	return result.Outlines, nil
}

// DeleteOutline removes an outline record.
func (c *Client) DeleteOutline(ctx context.Context, key string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/outlines/"+url.PathEscape(key), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("delete outline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusError("delete outline "+key, resp)
	}
	return nil
}

// Close releases any resources (currently a no-op).
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func statusError(op string, resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	msg := string(respBody)
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return fmt.Errorf("%s: %w", op, &RetryableError{StatusCode: resp.StatusCode, Message: msg})
	}
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, msg)
}
