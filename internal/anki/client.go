// Package anki talks to the AnkiConnect add-on's local automation API.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultURL is where AnkiConnect listens on a stock install.
	DefaultURL = "http://localhost:8765"

	apiVersion     = 6
	requestTimeout = 10 * time.Second
)

// Client is a minimal AnkiConnect v6 client. Every call is one synchronous
// POST carrying an {action, version, params} envelope.
type Client struct {
	url    string
	client *http.Client
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// NewClient creates a client for a stock local AnkiConnect.
func NewClient() *Client {
	return NewClientURL(DefaultURL)
}

// NewClientURL creates a client for a non-default endpoint.
func NewClientURL(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// CreateDeck ensures a deck exists. Creating an existing deck is a no-op on
// the Anki side, so callers need not check first. A "parent::child" name
// creates the whole hierarchy.
func (c *Client) CreateDeck(ctx context.Context, name string) error {
	_, err := c.invoke(ctx, "createDeck", map[string]any{"deck": name})
	return err
}

// AddNote submits one card to a deck using the named note model.
func (c *Client) AddNote(ctx context.Context, deck, model string, fields map[string]string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	_, err := c.invoke(ctx, "addNote", map[string]any{
		"note": map[string]any{
			"deckName":  deck,
			"modelName": model,
			"fields":    fields,
			"tags":      tags,
			"options":   map[string]any{"allowDuplicate": false},
		},
	})
	return err
}

func (c *Client) invoke(ctx context.Context, action string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{Action: action, Version: apiVersion, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", action, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", action, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("AnkiConnect unreachable (is Anki running?): %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", action, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AnkiConnect error (%d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", action, err)
	}
	if apiResp.Error != nil && *apiResp.Error != "" {
		return nil, fmt.Errorf("%s failed: %s", action, *apiResp.Error)
	}

	return apiResp.Result, nil
}
