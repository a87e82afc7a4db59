package prosecheck

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/proseworks/prosecheck/internal/engine"
	"github.com/proseworks/prosecheck/internal/model"
	"github.com/proseworks/prosecheck/internal/util"
)

// maxReplacements caps suggestions per match in the assembled response.
const maxReplacements = 5

// Defaults used when a Checker field is left zero.
const (
	DefaultLanguage     = "en-US"
	DefaultMaxTextChars = 10_000
)

// EngineProvider hands out a checking engine per language.
// *engine.Cache satisfies it.
type EngineProvider interface {
	Get(lang string) (engine.Backend, error)
}

// Checker ties the engine cache to the enrichment core. It holds no request
// state; one Checker serves all requests concurrently.
type Checker struct {
	engines         EngineProvider
	defaultLanguage string
	maxTextChars    int
}

// NewChecker builds a Checker over the given provider. Zero values for lang
// and maxChars fall back to DefaultLanguage and DefaultMaxTextChars.
func NewChecker(engines EngineProvider, lang string, maxChars int) *Checker {
	if lang == "" {
		lang = DefaultLanguage
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxTextChars
	}
	return &Checker{engines: engines, defaultLanguage: lang, maxTextChars: maxChars}
}

// MaxTextChars reports the configured input cap in runes.
func (c *Checker) MaxTextChars() int { return c.maxTextChars }

// DefaultLang reports the language used when a request names none.
func (c *Checker) DefaultLang() string { return c.defaultLanguage }

// Check runs the full pipeline: length gate, engine dispatch, per-match
// enrichment, text metrics, assembly. ctx bounds the engine call.
//
// Empty text short-circuits to an empty result — no engine involved.
func (c *Checker) Check(ctx context.Context, text, lang string, goals model.Goals, disabledRules []string) (*model.Result, error) {
	if lang == "" {
		lang = c.defaultLanguage
	}
	if text == "" {
		return &model.Result{
			Matches:  []model.Match{},
			Language: lang,
			Metrics:  model.TextMetrics{},
			Goals:    goals,
		}, nil
	}

	n := utf8.RuneCountInString(text)
	if n > c.maxTextChars {
		return nil, fmt.Errorf("%w: %d chars (limit %d)", ErrTextTooLong, n, c.maxTextChars)
	}

	backend, err := c.engines.Get(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineInit, err)
	}

	records, err := backend.Check(ctx, text, disabledRules)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineCheck, err)
	}

	return BuildResult(text, lang, goals, records), nil
}

// BuildResult assembles the response from raw engine records: each record is
// classified and normalized; records that fail enrichment are logged and
// dropped so one malformed match never sinks the batch. Pure apart from the
// skip log line.
func BuildResult(text, lang string, goals model.Goals, records []model.MatchRecord) *model.Result {
	textLen := utf8.RuneCountInString(text)

	matches := make([]model.Match, 0, len(records))
	for i, rec := range records {
		m, err := enrich(rec, text, textLen)
		if err != nil {
			log.Printf("check: dropping match %d (rule %q): %v", i, rec.RuleID, err)
			continue
		}
		matches = append(matches, m)
	}

	return &model.Result{
		Matches:    matches,
		Language:   lang,
		TextLength: textLen,
		Metrics:    ComputeMetrics(text),
		Goals:      goals,
	}
}

// enrich turns one engine record into a response match.
// The returned error marks the record malformed, not the batch failed.
func enrich(rec model.MatchRecord, text string, textLen int) (model.Match, error) {
	if rec.RuleID == "" {
		return model.Match{}, fmt.Errorf("missing rule id")
	}
	if rec.Offset < 0 || rec.Length < 0 || rec.Offset+rec.Length > textLen {
		return model.Match{}, fmt.Errorf("span [%d,%d) outside text of %d chars",
			rec.Offset, rec.Offset+rec.Length, textLen)
	}

	origin := flaggedSpan(rec, text)

	reps := rec.Replacements
	if len(reps) > maxReplacements {
		reps = reps[:maxReplacements]
	}
	normalized := make([]model.Replacement, len(reps))
	for i, v := range reps {
		normalized[i] = model.Replacement{Value: v, Distance: util.Levenshtein(origin, v)}
	}

	return model.Match{
		Message:      rec.Message,
		ShortMessage: rec.ShortMessage,
		Offset:       rec.Offset,
		Length:       rec.Length,
		Context:      rec.Context,
		Rule: model.Rule{
			ID:        rec.RuleID,
			IssueType: rec.IssueType,
			Category:  rec.RuleCategory,
			URL:       rec.RuleURL,
		},
		Replacements:   normalized,
		Classification: Classify(rec.RuleID, rec.IssueType),
	}, nil
}

// flaggedSpan extracts the text the engine flagged, preferring the engine's
// own context snippet over re-slicing the input.
func flaggedSpan(rec model.MatchRecord, text string) string {
	if rec.Context.Text != "" {
		runes := []rune(rec.Context.Text)
		end := rec.Context.Offset + rec.Context.Length
		if rec.Context.Offset >= 0 && end <= len(runes) && rec.Context.Offset <= end {
			return string(runes[rec.Context.Offset:end])
		}
	}
	runes := []rune(text)
	return string(runes[rec.Offset : rec.Offset+rec.Length])
}
