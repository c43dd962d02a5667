package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"
)

// Client is a Figma REST API client with HTTP settings tuned for pulling
// large design files: connection pooling, retry logic for rate limits, and a
// generous timeout.
type Client struct {
	accessToken string
	httpClient  *http.Client
	baseURL     string
	retryWait   time.Duration
}

// NewClient creates a Figma API client authenticated with the provided
// personal access token.
func NewClient(accessToken string) *Client {
	// Configure transport for better handling of large files
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		DisableKeepAlives:   false,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		retryWait:   2 * time.Second,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute, // Increased timeout for very large files
			Transport: transport,
		},
	}
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL doesn't match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Match patterns like:
	// https://www.figma.com/file/ABC123/Design-Name
	// https://www.figma.com/design/ABC123/Design-Name
	// Anchored to ensure the entire URL matches the expected pattern and prevent bypass attacks.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ExtractNodeIDs extracts the node selection from a Figma URL. Selections
// appear as a node-id query parameter, a hash fragment, or a /nodes/ path
// segment, and may list several comma-separated IDs. Figma encodes node IDs
// as "12-34" in URLs while the API expects "12:34", so separators are
// normalized and duplicates removed. An empty slice means the URL carries no
// selection.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	var raw string
	switch {
	case u.Query().Get("node-id") != "":
		raw = u.Query().Get("node-id")
	case u.Fragment != "":
		raw = u.Fragment
	default:
		if idx := strings.Index(u.Path, "/nodes/"); idx != -1 {
			raw = u.Path[idx+len("/nodes/"):]
		}
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		ids = append(ids, strings.ReplaceAll(id, "-", ":"))
	}

	return deduplicateNodeIDs(ids), nil
}

// get performs a GET against the Figma API with up to 3 attempts. Requests
// are retried with linear backoff on transport errors, 429 responses, and
// 5xx responses; other non-200 statuses fail immediately.
func (c *Client) get(url string) ([]byte, error) {
	var lastErr error
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * c.retryWait)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == 429 || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * c.retryWait)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d failed to read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * c.retryWait)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}

// GetFile retrieves complete file data from the Figma API including the
// document tree, declared components, published styles, and file metadata.
// Rate-limited and failed requests are retried automatically.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	body, err := c.get(fmt.Sprintf("%s/files/%s", c.baseURL, fileKey))
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by their IDs.
// Duplicate IDs are collapsed before the request is made; at least one ID is
// required.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	ids := deduplicateNodeIDs(nodeIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("no node IDs provided")
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	body, err := c.get(fmt.Sprintf("%s/files/%s/nodes?%s", c.baseURL, fileKey, query.Encode()))
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &nodesResp, nil
}

// GetImages asks the Figma render service for bitmap exports of the given
// nodes and returns the short-lived download URLs. Format is png, jpg, svg,
// or pdf; scale is the export multiplier (0 keeps the API default of 1).
func (c *Client) GetImages(fileKey string, nodeIDs []string, format string, scale float64) (*ImagesResponse, error) {
	ids := deduplicateNodeIDs(nodeIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("no node IDs provided")
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	if format != "" {
		query.Set("format", format)
	}
	if scale > 0 {
		query.Set("scale", fmt.Sprintf("%g", scale))
	}

	body, err := c.get(fmt.Sprintf("%s/images/%s?%s", c.baseURL, fileKey, query.Encode()))
	if err != nil {
		return nil, err
	}

	var imagesResp ImagesResponse
	if err := json.Unmarshal(body, &imagesResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if imagesResp.Err != "" {
		return nil, fmt.Errorf("image render failed: %s", imagesResp.Err)
	}

	return &imagesResp, nil
}

// deduplicateNodeIDs removes duplicate node IDs while preserving the
// original order, so repeated selections don't inflate request URLs past API
// limits.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
