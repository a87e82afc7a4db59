// Package prosecheck layers match classification and text-quality scoring on
// top of an external grammar-checking engine, and re-serves the combined
// result over HTTP.
package prosecheck

import (
	"strings"

	"github.com/proseworks/prosecheck/internal/model"
)

// Classify maps an engine rule identifier and issue type onto the normalized
// taxonomy. Pure and total: every input, recognized or not, yields a
// well-formed Classification.
//
// The rule chain is ordered and first-match-wins. Confidence and severity are
// hand-tuned priors reflecting how deterministic each error class is —
// misspellings are nearly unambiguous, style flags are subjective. Downstream
// consumers are tuned against these exact constants; do not adjust them.
func Classify(ruleID, issueType string) model.Classification {
	rule := strings.ToLower(ruleID)
	issue := strings.ToLower(issueType)

	c := model.Classification{
		Category:          model.CategoryOther,
		Confidence:        0.50,
		Severity:          model.SeverityMedium,
		Explanation:       "General writing suggestion",
		OriginalIssueType: issue,
	}

	switch {
	case issue == "misspelling" ||
		strings.Contains(rule, "spell") ||
		strings.Contains(rule, "morfologic") ||
		strings.Contains(rule, "hunspell"):
		c.Category = model.CategorySpelling
		c.Confidence = 0.95
		c.Severity = model.SeverityHigh
		c.Explanation = "Likely misspelled word or typographical error"

	case issue == "grammar" ||
		strings.Contains(rule, "grammar") ||
		strings.Contains(rule, "agreement") ||
		strings.Contains(rule, "verb") ||
		strings.Contains(rule, "tense"):
		c.Category = model.CategoryGrammar
		c.Confidence = 0.90
		c.Severity = model.SeverityHigh
		c.Explanation = "Grammatical error that affects meaning"

	case strings.Contains(rule, "punct") ||
		strings.Contains(rule, "comma") ||
		strings.Contains(rule, "apostrophe"):
		c.Category = model.CategoryPunctuation
		c.Confidence = 0.85
		c.Severity = model.SeverityMedium
		c.Explanation = "Punctuation rule or convention"

	case issue == "style" ||
		strings.Contains(rule, "style") ||
		strings.Contains(rule, "redundancy") ||
		strings.Contains(rule, "wordiness"):
		c.Category = model.CategoryStyle
		c.Confidence = 0.70
		c.Severity = model.SeverityLow
		c.Explanation = "Style suggestion for improved readability"
	}

	return c
}
