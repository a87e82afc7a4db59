package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proseworks/prosecheck/internal/model"
)

func TestClassify_RuleChain(t *testing.T) {
	tests := []struct {
		name       string
		ruleID     string
		issueType  string
		category   model.Category
		confidence float64
		severity   model.Severity
	}{
		{"misspelling issue type", "SOME_RULE", "misspelling", model.CategorySpelling, 0.95, model.SeverityHigh},
		{"morfologik dictionary rule", "MORFOLOGIK_RULE_EN_US", "", model.CategorySpelling, 0.95, model.SeverityHigh},
		{"hunspell rule", "HUNSPELL_NO_SUGGEST_RULE", "", model.CategorySpelling, 0.95, model.SeverityHigh},
		{"spell substring", "GERMAN_SPELLER_RULE", "", model.CategorySpelling, 0.95, model.SeverityHigh},
		{"grammar issue type", "XYZ", "grammar", model.CategoryGrammar, 0.90, model.SeverityHigh},
		{"agreement rule", "SUBJECT_VERB_AGREEMENT", "", model.CategoryGrammar, 0.90, model.SeverityHigh},
		{"tense rule", "PAST_TENSE_XYZ", "", model.CategoryGrammar, 0.90, model.SeverityHigh},
		{"punctuation comma", "COMMA_PARENTHESIS_WHITESPACE", "", model.CategoryPunctuation, 0.85, model.SeverityMedium},
		{"apostrophe", "APOSTROPHE_PLURAL", "", model.CategoryPunctuation, 0.85, model.SeverityMedium},
		{"style issue type", "XYZ", "style", model.CategoryStyle, 0.70, model.SeverityLow},
		{"redundancy rule", "REDUNDANCY_OF_THE", "", model.CategoryStyle, 0.70, model.SeverityLow},
		{"wordiness rule", "WORDINESS", "", model.CategoryStyle, 0.70, model.SeverityLow},
		{"unrecognized falls through", "EN_QUOTES", "typographical", model.CategoryOther, 0.50, model.SeverityMedium},
		{"empty input", "", "", model.CategoryOther, 0.50, model.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.ruleID, tt.issueType)
			assert.Equal(t, tt.category, c.Category)
			assert.Equal(t, tt.confidence, c.Confidence)
			assert.Equal(t, tt.severity, c.Severity)
			assert.NotEmpty(t, c.Explanation)
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upper := Classify("MORFOLOGIK_RULE_EN_US", "MISSPELLING")
	lower := Classify("morfologik_rule_en_us", "misspelling")
	assert.Equal(t, lower, upper)
	assert.Equal(t, model.CategorySpelling, upper.Category)
}

// Spelling wins over every later rule: a ruleId containing both "spell" and
// "comma" is spelling, because the chain is ordered and first match wins.
func TestClassify_FirstMatchWins(t *testing.T) {
	c := Classify("SPELL_COMMA_RULE", "style")
	assert.Equal(t, model.CategorySpelling, c.Category)
	assert.Equal(t, 0.95, c.Confidence)
}

func TestClassify_Total(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"   ", "\t"},
		{"ÜNÏCÖDE_RULE", "größe"},
		{"a", "b"},
	}
	for _, in := range inputs {
		c := Classify(in[0], in[1])
		require.GreaterOrEqual(t, c.Confidence, 0.0)
		require.LessOrEqual(t, c.Confidence, 1.0)
		require.Contains(t, []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh}, c.Severity)
		require.Contains(t, []model.Category{
			model.CategorySpelling, model.CategoryGrammar, model.CategoryPunctuation,
			model.CategoryStyle, model.CategoryOther,
		}, c.Category)
	}
}

func TestClassify_EchoesIssueTypeLowercased(t *testing.T) {
	c := Classify("EN_QUOTES", "Typographical")
	assert.Equal(t, "typographical", c.OriginalIssueType)
}
