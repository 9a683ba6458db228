package digitalocean

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultAPIRoot is the production API endpoint.
const DefaultAPIRoot = "https://api.digitalocean.com/v2"

// Client issues authenticated requests against the DigitalOcean API.
type Client struct {
	root       string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIRoot overrides the API base URL. Mainly used to point the client
// at a test server.
func WithAPIRoot(root string) Option {
	return func(c *Client) {
		c.root = strings.TrimRight(root, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client authenticating with the given personal access
// token.
func NewClient(token string, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c := &Client{
		root:       DefaultAPIRoot,
		httpClient: oauth2.NewClient(context.Background(), src),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one API request and decodes the response body.
//
// The request URL is {root}/{resource}/ followed by an optional {id}/ and an
// optional trailing command, which may be a sub-path ("records") or a raw
// query string ("?page=2&per_page=200"). body, when non-nil, is serialized
// as JSON.
//
// A status >= 300 is returned as *APIError carrying the status code and raw
// response text. A 204 yields a nil payload and no error. Any other 2xx
// response is decoded; a body whose "status" field equals "error" is
// converted to an *APIError even when the HTTP status looks successful.
func (c *Client) Do(ctx context.Context, method, resource, id, command string, body any) (json.RawMessage, error) {
	url := c.buildURL(resource, id, command)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observeRequest(resource, method, resp, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	// Some error responses come back with a 2xx status and an embedded
	// status/error_message pair instead.
	var envelope struct {
		Status       string          `json:"status"`
		ErrorMessage json.RawMessage `json:"error_message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", url, err)
	}
	if strings.EqualFold(envelope.Status, "error") {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(envelope.ErrorMessage)}
	}

	return raw, nil
}

func (c *Client) buildURL(resource, id, command string) string {
	var b strings.Builder
	b.WriteString(c.root)
	b.WriteByte('/')
	b.WriteString(resource)
	b.WriteByte('/')
	if id != "" {
		b.WriteString(id)
		b.WriteByte('/')
	}
	if command != "" {
		b.WriteString(command)
	}
	return b.String()
}
