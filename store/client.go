package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	apperrors "github.com/mediaverse/mediaverse/internal/errors"
)

// Filters are exact-match query parameters, e.g. {"user_id": "42"}.
type Filters map[string]string

// Client talks to the external record store. It owns no data and enforces no
// access control; authorization lives entirely in the session guard.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption modifies a Client instance.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// List fetches a collection, optionally filtered, decoding into out
// (a pointer to a slice).
func (c *Client) List(ctx context.Context, collection string, filters Filters, out any) error {
	endpoint := c.collectionURL(collection)
	if len(filters) > 0 {
		values := url.Values{}
		for k, v := range filters {
			values.Set(k, v)
		}
		endpoint += "?" + values.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Get fetches a single record by ID.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.recordURL(collection, id), nil, out)
}

// Create POSTs a record. The store assigns the identifier and returns the
// created record, decoded into out when non-nil.
func (c *Client) Create(ctx context.Context, collection string, record, out any) error {
	return c.do(ctx, http.MethodPost, c.collectionURL(collection), record, out)
}

// Patch partially updates a record. The store merges fields and returns the
// merged record, decoded into out when non-nil.
func (c *Client) Patch(ctx context.Context, collection, id string, fields, out any) error {
	return c.do(ctx, http.MethodPatch, c.recordURL(collection, id), fields, out)
}

// Delete removes a record by ID.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.recordURL(collection, id), nil, nil)
}

func (c *Client) collectionURL(collection string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, collection)
}

func (c *Client) recordURL(collection, id string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, collection, url.PathEscape(id))
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: the store itself is unreachable.
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "%s %s: %v", method, endpoint, err)
	}
	defer resp.Body.Close()

	log.Debug().Str("method", method).Str("url", endpoint).Int("status", resp.StatusCode).Msg("store request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Wrapf(apperrors.ErrNotFound, "%s %s", method, endpoint)
	case resp.StatusCode >= 500:
		return apperrors.Wrapf(apperrors.ErrStoreUnavailable, "%s %s: status %d", method, endpoint, resp.StatusCode)
	case resp.StatusCode >= 400:
		return errors.Errorf("[Client.do] %s %s: status %d", method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode response from %s", endpoint)
	}
	return nil
}
