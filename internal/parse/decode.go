// Package parse is the single translation boundary between the grammar
// engine's wire JSON and the model types the rest of the module consumes.
package parse

import (
	"encoding/json"
	"errors"

	"github.com/proseworks/prosecheck/internal/model"
)

// ErrParse signals an unexpected response structure from the engine.
var ErrParse = errors.New("prosecheck: could not parse engine response")

// wire shapes — LanguageTool /v2/check. Field spellings vary across engine
// versions and forks; anything optional stays optional here so one missing
// field never sinks the whole payload.

type wireResponse struct {
	Language struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"language"`
	Matches []wireMatch `json:"matches"`
}

type wireMatch struct {
	Message      string             `json:"message"`
	ShortMessage string             `json:"shortMessage"`
	Offset       int                `json:"offset"`
	Length       int                `json:"length"`
	Replacements []wireReplacement  `json:"replacements"`
	Context      model.MatchContext `json:"context"`
	Rule         struct {
		ID        string `json:"id"`
		IssueType string `json:"issueType"`
		Category  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"category"`
		URLs []struct {
			Value string `json:"value"`
		} `json:"urls"`
	} `json:"rule"`
}

// wireReplacement accepts both shapes the engine family emits:
// a bare string, or an object carrying a "value" field.
type wireReplacement struct {
	Value string
}

func (r *wireReplacement) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.Value)
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.Value = obj.Value
	return nil
}

// Decode converts a raw /v2/check response body into MatchRecords.
// The second return is the language code the engine says it applied.
func Decode(raw []byte) ([]model.MatchRecord, string, error) {
	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, "", ErrParse
	}

	out := make([]model.MatchRecord, 0, len(wire.Matches))
	for _, m := range wire.Matches {
		rec := model.MatchRecord{
			RuleID:       m.Rule.ID,
			IssueType:    m.Rule.IssueType,
			RuleCategory: m.Rule.Category.Name,
			Message:      m.Message,
			ShortMessage: m.ShortMessage,
			Offset:       m.Offset,
			Length:       m.Length,
			Context:      m.Context,
		}
		if len(m.Rule.URLs) > 0 {
			rec.RuleURL = m.Rule.URLs[0].Value
		}
		if len(m.Replacements) > 0 {
			rec.Replacements = make([]string, len(m.Replacements))
			for i, rep := range m.Replacements {
				rec.Replacements[i] = rep.Value
			}
		}
		out = append(out, rec)
	}
	return out, wire.Language.Code, nil
}
