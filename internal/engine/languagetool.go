// Package engine wraps the external grammar-checking collaborator and the
// per-language instance cache in front of it.
package engine

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/proseworks/prosecheck/internal/model"
	"github.com/proseworks/prosecheck/internal/net"
	"github.com/proseworks/prosecheck/internal/parse"
)

// DefaultBaseURL is the public LanguageTool API.
const DefaultBaseURL = "https://api.languagetool.org"

// Backend is one checking engine instance. Implementations must be safe for
// concurrent use; instances are shared across requests for process lifetime.
type Backend interface {
	// Check analyses text and returns the engine's findings in engine order.
	// disabledRules suppresses the named engine rules for this request.
	Check(ctx context.Context, text string, disabledRules []string) ([]model.MatchRecord, error)
}

// LanguageTool talks to a LanguageTool-compatible HTTP API for one language.
type LanguageTool struct {
	client   *net.Client
	language string // canonical BCP-47 code, e.g. "en-US"
}

// New constructs an engine instance for lang (a BCP-47 code).
// Unset baseURL falls back to DefaultBaseURL. An unparseable language tag is
// an initialization failure — the instance is never half-built.
func New(baseURL, lang string) (*LanguageTool, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	client, err := net.NewClient(baseURL, 10)
	if err != nil {
		return nil, err
	}
	return &LanguageTool{client: client, language: tag.String()}, nil
}

// Language returns the canonical code this instance checks against.
func (lt *LanguageTool) Language() string { return lt.language }

// Check implements Backend.
func (lt *LanguageTool) Check(ctx context.Context, text string, disabledRules []string) ([]model.MatchRecord, error) {
	form := url.Values{
		"text":     {text},
		"language": {lt.language},
	}
	if len(disabledRules) > 0 {
		form.Set("disabledRules", strings.Join(disabledRules, ","))
	}

	status, body, err := lt.client.PostForm(ctx, "/v2/check", form.Encode())
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("engine returned HTTP %d: %s", status, trim(body, 200))
	}

	matches, _, err := parse.Decode(body)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func trim(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
