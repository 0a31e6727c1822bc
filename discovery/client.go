package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

// DefaultDirectoryURL is the public discovery directory endpoint.
const DefaultDirectoryURL = "https://www.googleapis.com/discovery/v1/apis"

var queryEncoder = schema.NewEncoder()

// ListCall holds the query parameters of a directory list request.
type ListCall struct {
	// Name restricts the listing to a single service name.
	Name string `schema:"name,omitempty"`

	// Preferred restricts the listing to preferred service versions.
	Preferred bool `schema:"preferred,omitempty"`
}

// Directory is the response of a directory list request.
type Directory struct {
	Kind  string           `json:"kind"`
	Items []*DirectoryItem `json:"items"`
}

// DirectoryItem is one service version listed in the directory.
type DirectoryItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Version           string `json:"version"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	DiscoveryRestURL  string `json:"discoveryRestUrl"`
	DocumentationLink string `json:"documentationLink"`
	Preferred         bool   `json:"preferred"`
}

// Client fetches discovery documents and directory listings.
type Client struct {
	// DirectoryURL is the directory endpoint; DefaultDirectoryURL if empty.
	DirectoryURL string

	// HTTPClient is the client used for requests; http.DefaultClient if nil.
	HTTPClient *http.Client
}

// List fetches the service directory, filtered by the call's parameters.
func (c *Client) List(ctx context.Context, call ListCall) (*Directory, error) {
	base := c.DirectoryURL
	if base == "" {
		base = DefaultDirectoryURL
	}

	params := url.Values{}
	if err := queryEncoder.Encode(&call, params); err != nil {
		return nil, fmt.Errorf("failed to encode list parameters: %w", err)
	}
	target := base
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	body, err := c.fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	var dir Directory
	if err := json.Unmarshal(body, &dir); err != nil {
		return nil, fmt.Errorf("failed to decode directory listing: %w", err)
	}
	return &dir, nil
}

// Get fetches and parses a single discovery document by URL.
func (c *Client) Get(ctx context.Context, docURL string) (*Document, error) {
	body, err := c.fetch(ctx, docURL)
	if err != nil {
		return nil, err
	}
	return ParseDocument(body)
}

func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %q", res.StatusCode, target)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
