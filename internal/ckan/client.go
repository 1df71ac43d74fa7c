// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ckan is a read-only client for the CKAN Action API. It covers the
// two calls the harvester needs, package_list and package_show, and the
// decoding quirks of CKAN payloads.
package ckan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/dataset-bridge/internal/httputil"
	"github.com/pdiddy/dataset-bridge/pkg/types"
)

// actionPath is the Action API prefix under the catalog site root.
const actionPath = "/api/3/action/"

// Client calls one CKAN catalog.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// NewClient returns a Client for the catalog described by cfg. The site root
// is normalized so that BaseURL values with or without a trailing slash work.
func NewClient(cfg types.CatalogConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}
}

// BaseURL returns the normalized catalog site root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the standard CKAN Action API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *APIError       `json:"error"`
}

// APIError is the error object CKAN returns inside a non-success envelope.
type APIError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Type
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// PackageList returns the identifiers of all packages in the catalog.
func (c *Client) PackageList(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.action(ctx, "package_list", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// PackageShow returns the full record for one package.
func (c *Client) PackageShow(ctx context.Context, id string) (*Package, error) {
	params := url.Values{"id": {id}}
	var pkg Package
	if err := c.action(ctx, "package_show", params, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// action performs a GET against one Action API endpoint, unwraps the success
// envelope, and decodes the result into out.
func (c *Client) action(ctx context.Context, name string, params url.Values, out any) error {
	reqURL := c.baseURL + actionPath + name
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return fmt.Errorf("%s request: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned HTTP %d", name, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("parsing %s response: %w", name, err)
	}
	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("%s failed: %w", name, env.Error)
		}
		return fmt.Errorf("%s failed: success=false with no error detail", name)
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("decoding %s result: %w", name, err)
	}
	return nil
}
