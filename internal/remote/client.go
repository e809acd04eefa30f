// Package remote is the best-effort mirror client. Every call tolerates an
// unconfigured endpoint by returning a skipped result instead of an error;
// local state is always authoritative.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the outcome of one mirror call. Skipped is true when the client
// has no endpoint configured and the call did nothing.
type Result struct {
	Skipped    bool
	StatusCode int
	Body       json.RawMessage
}

// Client talks to the remote key-value mirror. The zero value (or a client
// built from an empty base URL) is valid and skips every call.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a mirror client. An empty baseURL yields an unconfigured client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client has an endpoint to talk to.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// SaveSnapshot mirrors the whole-state document. Satisfies engine.Mirror.
func (c *Client) SaveSnapshot(ctx context.Context, payload []byte) error {
	_, err := c.do(ctx, http.MethodPut, "/state", json.RawMessage(payload))
	return err
}

// LoadSnapshot fetches the mirrored whole-state document.
func (c *Client) LoadSnapshot(ctx context.Context) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/state", nil)
}

// Resource addresses one per-entity collection on the mirror.
type Resource struct {
	c    *Client
	path string
}

func (c *Client) Quests() Resource    { return Resource{c: c, path: "/quests"} }
func (c *Client) Tasks() Resource     { return Resource{c: c, path: "/tasks"} }
func (c *Client) Skills() Resource    { return Resource{c: c, path: "/skills"} }
func (c *Client) Vault() Resource     { return Resource{c: c, path: "/vault"} }
func (c *Client) Events() Resource    { return Resource{c: c, path: "/events"} }
func (c *Client) Reminders() Resource { return Resource{c: c, path: "/reminders"} }
func (c *Client) Chats() Resource     { return Resource{c: c, path: "/chats"} }

func (r Resource) List(ctx context.Context) (*Result, error) {
	return r.c.do(ctx, http.MethodGet, r.path, nil)
}

func (r Resource) Create(ctx context.Context, entity any) (*Result, error) {
	return r.c.do(ctx, http.MethodPost, r.path, entity)
}

func (r Resource) Update(ctx context.Context, id string, entity any) (*Result, error) {
	return r.c.do(ctx, http.MethodPut, r.path+"/"+id, entity)
}

func (r Resource) Delete(ctx context.Context, id string) (*Result, error) {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Result, error) {
	if !c.Configured() {
		return &Result{Skipped: true}, nil
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return &Result{StatusCode: resp.StatusCode, Body: raw}, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	return &Result{StatusCode: resp.StatusCode, Body: raw}, nil
}
