package model

// Category is the normalized error taxonomy bucket.
type Category string

const (
	CategorySpelling    Category = "spelling"
	CategoryGrammar     Category = "grammar"
	CategoryPunctuation Category = "punctuation"
	CategoryStyle       Category = "style"
	CategoryOther       Category = "other"
)

// Severity is the impact level of a flagged issue.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MatchRecord is one flagged span as reported by the external engine,
// already translated out of its wire shape. Consumed read-only.
type MatchRecord struct {
	RuleID       string
	IssueType    string
	RuleCategory string
	RuleURL      string
	Message      string
	ShortMessage string
	Offset       int // char index into the checked text
	Length       int
	Context      MatchContext
	Replacements []string // engine order
}

// MatchContext is the engine-provided snippet around the flagged span.
type MatchContext struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// Classification is the derived taxonomy for one match.
// It is a pure function's output; it carries no identity of its own.
type Classification struct {
	Category          Category `json:"category"`
	Confidence        float64  `json:"confidence"` // [0,1]
	Severity          Severity `json:"severity"`
	Explanation       string   `json:"explanation"`
	OriginalIssueType string   `json:"originalIssueType"`
}

// TextMetrics is JSON-serialisable as-is.
type TextMetrics struct {
	Words               int     `json:"words"`
	Sentences           int     `json:"sentences"`
	Paragraphs          int     `json:"paragraphs"` // ≥1 for non-empty text, 0 for ""
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	AvgCharsPerWord     float64 `json:"avgCharsPerWord"`
	ComplexWords        int     `json:"complexWords"`     // 7+ character words
	ReadabilityScore    float64 `json:"readabilityScore"` // clamped to [0,100]
}

// Replacement is one normalized suggestion for a flagged span.
type Replacement struct {
	Value    string `json:"value"`
	Distance int    `json:"distance"` // Levenshtein(flagged span, Value)
}

// Rule names the engine check that fired.
type Rule struct {
	ID        string `json:"id"`
	IssueType string `json:"issueType"`
	Category  string `json:"category,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Match is one enriched finding in the assembled response.
type Match struct {
	Message        string         `json:"message"`
	ShortMessage   string         `json:"shortMessage"`
	Offset         int            `json:"offset"`
	Length         int            `json:"length"`
	Context        MatchContext   `json:"context"`
	Rule           Rule           `json:"rule"`
	Replacements   []Replacement  `json:"replacements"` // ≤5, engine order
	Classification Classification `json:"classification"`
}

// Goals are caller-supplied writing hints. Echoed back, not yet acted upon.
type Goals struct {
	Audience string `json:"audience,omitempty"`
	Intent   string `json:"intent,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

// Result is the assembled, request-scoped check response.
type Result struct {
	Matches    []Match     `json:"matches"`
	Language   string      `json:"language"`
	TextLength int         `json:"textLength"` // rune count
	Metrics    TextMetrics `json:"metrics"`
	Goals      Goals       `json:"goals"`
}
