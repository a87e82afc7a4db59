// Package net owns the HTTP client used to talk to the grammar engine.
package net

import (
	"context"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"

// Client is a keep-alive HTTP client bound to one engine base URL.
type Client struct {
	base string
	hc   tls_client.HttpClient
}

// NewClient builds a Client for the given base URL, e.g.
// "https://api.languagetool.org". timeoutSeconds bounds a single request.
func NewClient(base string, timeoutSeconds int) (*Client, error) {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithClientProfile(profiles.Chrome_133),
	)
	if err != nil {
		return nil, err
	}
	return &Client{base: strings.TrimRight(base, "/"), hc: hc}, nil
}

// PostForm sends an application/x-www-form-urlencoded POST to base+path
// and returns the response body. Non-2xx statuses are the caller's problem;
// the body is returned either way so error payloads stay inspectable.
func (c *Client) PostForm(ctx context.Context, path, form string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(form))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", ua)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
