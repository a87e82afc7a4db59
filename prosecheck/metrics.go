package prosecheck

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/proseworks/prosecheck/internal/model"
)

// Word characters are letters, digits, and underscore; Unicode-aware, since
// Go's \w is ASCII-only.
var (
	wordRe     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`) // "?!" is one boundary, not two
	spaceRe    = regexp.MustCompile(`\s+`)
)

// ComputeMetrics derives descriptive statistics from raw text, independent of
// the grammar engine. Pure and total; the empty string yields the zero value
// (including Paragraphs == 0, the one case exempt from the ≥1 floor).
//
// ReadabilityScore is a Flesch-Reading-Ease variant that substitutes
// characters-per-word for syllables-per-word. The coefficients and the
// [0,100] clamp are load-bearing; the raw formula goes negative on dense
// text and past 100 on trivial text.
func ComputeMetrics(text string) model.TextMetrics {
	if text == "" {
		return model.TextMetrics{}
	}

	words := wordRe.FindAllString(text, -1)
	wordCount := len(words)
	sentenceCount := len(sentenceRe.FindAllStringIndex(text, -1))

	paragraphCount := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphCount++
		}
	}
	paragraphCount = max(paragraphCount, 1)

	avgWordsPerSentence := float64(wordCount) / float64(max(sentenceCount, 1))
	nonSpace := utf8.RuneCountInString(spaceRe.ReplaceAllString(text, ""))
	avgCharsPerWord := float64(nonSpace) / float64(max(wordCount, 1))

	complexWords := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) >= 7 {
			complexWords++
		}
	}

	var readability float64
	if wordCount > 0 && sentenceCount > 0 {
		readability = 206.835 - 1.015*avgWordsPerSentence - 84.6*avgCharsPerWord
		readability = math.Max(0, math.Min(100, readability))
	}

	return model.TextMetrics{
		Words:               wordCount,
		Sentences:           sentenceCount,
		Paragraphs:          paragraphCount,
		AvgWordsPerSentence: round1(avgWordsPerSentence),
		AvgCharsPerWord:     round1(avgCharsPerWord),
		ComplexWords:        complexWords,
		ReadabilityScore:    readability,
	}
}

// round1 rounds to one decimal place; the averages are reported rounded but
// the readability formula above consumes them unrounded.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
