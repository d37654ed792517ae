// Package client is the HTTP consumer of the search backend's four
// endpoints: the filter catalog and the three search modes. It performs no
// retries and no re-ranking; failures surface as typed errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies this client to the backend.
const DefaultUserAgent = "ResuMariner-Search/1.0"

// Options configures the backend client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for a local backend.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   "http://localhost:8000",
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the search backend.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a backend client from options; nil takes the defaults.
func New(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FilterOptions fetches the facet catalog. On failure it returns the empty
// catalog alongside the error so callers can degrade instead of crash.
func (c *Client) FilterOptions(ctx context.Context) (catalog.FilterOptions, error) {
	endpoint := c.baseURL + "/filters"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return catalog.Empty(), fmt.Errorf("failed to create filters request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalog.Empty(), &NetworkError{URL: endpoint, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return catalog.Empty(), backendError(resp)
	}

	var opts catalog.FilterOptions
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		return catalog.Empty(), fmt.Errorf("failed to decode filter catalog: %w", err)
	}
	return opts, nil
}

// SearchSemantic submits a semantic-mode request.
func (c *Client) SearchSemantic(ctx context.Context, req query.SemanticRequest) (*SearchResponse, error) {
	return c.search(ctx, "/search/semantic", req)
}

// SearchStructured submits a structured-mode request.
func (c *Client) SearchStructured(ctx context.Context, req query.StructuredRequest) (*SearchResponse, error) {
	return c.search(ctx, "/search/structured", req)
}

// SearchHybrid submits a hybrid-mode request.
func (c *Client) SearchHybrid(ctx context.Context, req query.HybridRequest) (*SearchResponse, error) {
	return c.search(ctx, "/search/hybrid", req)
}

// Search dispatches a built request to the endpoint matching its shape.
func (c *Client) Search(ctx context.Context, req query.Request) (*SearchResponse, error) {
	switch r := req.(type) {
	case query.SemanticRequest:
		return c.SearchSemantic(ctx, r)
	case query.StructuredRequest:
		return c.SearchStructured(ctx, r)
	case query.HybridRequest:
		return c.SearchHybrid(ctx, r)
	default:
		return nil, fmt.Errorf("unsupported request type %T", req)
	}
}

func (c *Client) search(ctx context.Context, path string, body any) (*SearchResponse, error) {
	endpoint := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: endpoint, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, backendError(resp)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	result.RequestID = requestID
	return &result, nil
}

// backendError reads a non-2xx body and extracts the structured message when
// one is present.
func backendError(resp *http.Response) *BackendError {
	message := fmt.Sprintf("unexpected status %s", resp.Status)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(body) > 0 {
		var parsed backendErrorBody
		if json.Unmarshal(body, &parsed) == nil {
			switch {
			case parsed.Error != "":
				message = parsed.Error
			case parsed.Detail != "":
				message = parsed.Detail
			}
		}
	}

	return &BackendError{Status: resp.StatusCode, Message: message}
}
