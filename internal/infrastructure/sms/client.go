// Package sms talks to an HTTP SMS gateway. The gateway contract is a
// simple JSON POST, so the client sits directly on net/http.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	APIURL     string
	APIKey     string
	Originator string
	Route      string
}

type Client struct {
	config Config
	http   *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	To         string `json:"to"`
	Message    string `json:"message"`
	Originator string `json:"originator,omitempty"`
	Route      string `json:"route,omitempty"`
}

func (c *Client) Send(ctx context.Context, to, message string) error {
	if c.config.APIURL == "" {
		return fmt.Errorf("sms gateway is not configured")
	}

	body, err := json.Marshal(sendRequest{
		To:         to,
		Message:    message,
		Originator: c.config.Originator,
		Route:      c.config.Route,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
