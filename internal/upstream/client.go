// Package upstream talks to the remote room-booking API. It owns the
// transport configuration, the JSON envelope decoding, and the error
// taxonomy the screens rely on. It never decides navigation: a 401 is
// surfaced as ErrUnauthorized and left to the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"room-booking-portal/config"
)

// Client is the shared transport core under both API wrappers.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// New creates a client for the configured upstream API.
func New(cfg *config.UpstreamConfig) *Client {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Upstream client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		baseURL: cfg.BaseURL,
		headers: cfg.Headers,
	}
}

// Admin returns the staff API wrapper bound to the given bearer token.
// An empty token is valid for the unauthenticated login call.
func (c *Client) Admin(token string) *AdminAPI {
	return &AdminAPI{c: c, token: token}
}

// Visitor returns the visitor API wrapper bound to the given bearer token.
func (c *Client) Visitor(token string) *VisitorAPI {
	return &VisitorAPI{c: c, token: token}
}

// envelope is the upstream's standard response body.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []fieldError    `json:"errors"`

	raw []byte // full response body, for endpoints that put fields beside the envelope
}

type fieldError struct {
	Msg string `json:"msg"`
}

// do issues one request and returns the decoded envelope. Transport
// failures map to ErrUnreachable, 401 to ErrUnauthorized, and any other
// non-2xx to an *APIError carrying the server message.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*envelope, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	env := envelope{raw: body}
	if len(body) > 0 {
		// A malformed body on an error status must not mask the status.
		if jsonErr := json.Unmarshal(body, &env); jsonErr != nil && resp.StatusCode < 400 {
			return nil, fmt.Errorf("failed to unmarshal api response: %w", jsonErr)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Message: env.errorMessage()}
	}

	return &env, nil
}

// errorMessage picks the most specific server-provided message.
func (e *envelope) errorMessage() string {
	if len(e.Errors) > 0 && e.Errors[0].Msg != "" {
		return e.Errors[0].Msg
	}
	return e.Message
}

// get is a convenience wrapper decoding envelope.Data into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	env, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func decodeData(env *envelope, out any) error {
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
