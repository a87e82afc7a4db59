package prosecheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/proseworks/prosecheck/internal/model"
	"github.com/proseworks/prosecheck/internal/util"
)

var validate = validator.New()

// CheckRequest is the HTTP request body for /api/check.
type CheckRequest struct {
	Text          string      `json:"text"`                    // text to proofread (may be empty)
	Language      string      `json:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
	Goals         model.Goals `json:"goals,omitempty"`         // echoed back, not yet acted upon
	DisabledRules []string    `json:"disabledRules,omitempty"` // engine rule IDs to suppress
	Timeout       int         `json:"timeout,omitempty" validate:"omitempty,min=1,max=300"` // seconds, default 8
}

// Server exposes the checker over HTTP. The engine cache behind the Checker
// is the only shared mutable state; handlers themselves are stateless.
type Server struct {
	checker *Checker
}

// NewServer wraps checker with the HTTP handlers.
func NewServer(checker *Checker) *Server {
	return &Server{checker: checker}
}

// CheckHandler handles POST /api/check.
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	defer r.Body.Close()

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body - 'text' must be a string")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	timeout := 8 * time.Second
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	res, err := s.checker.Check(ctx, req.Text, req.Language, req.Goals, req.DisabledRules)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextTooLong):
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Text exceeds limit of %d characters", s.checker.MaxTextChars()))
		case errors.Is(err, ErrEngineInit):
			writeError(w, http.StatusInternalServerError, "Language engine initialization failed")
		default:
			writeError(w, http.StatusInternalServerError, "Text checking failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// LanguagesHandler handles GET /api/languages with a curated static list.
// It deliberately never touches the engine.
func (s *Server) LanguagesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"languages": supportedLanguages})
}

// HealthHandler handles GET /health. It must stay cheap: no engine is ever
// constructed on this path, so liveness probes don't pay engine startup.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "prosecheck",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func (s *Server) OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func (s *Server) DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	out, err := util.MarshalNoEscape(v, true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(out)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Language is one entry of the /api/languages payload.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var supportedLanguages = []Language{
	{Code: "en-US", Name: "English (US)"},
	{Code: "en-GB", Name: "English (UK)"},
	{Code: "de-DE", Name: "German"},
	{Code: "fr-FR", Name: "French"},
	{Code: "es-ES", Name: "Spanish"},
	{Code: "it-IT", Name: "Italian"},
	{Code: "pt-PT", Name: "Portuguese"},
	{Code: "nl-NL", Name: "Dutch"},
	{Code: "pl-PL", Name: "Polish"},
	{Code: "ru-RU", Name: "Russian"},
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "prosecheck API",
    "description": "Text proofreading REST API. Delegates linguistic analysis to a LanguageTool-compatible engine and enriches each finding with a normalized classification plus whole-text quality metrics.",
    "version": "1.0.0"
  },
  "paths": {
    "/api/check": {
      "post": {
        "summary": "Check text",
        "description": "Proofreads the submitted text. Findings are classified into {spelling, grammar, punctuation, style, other} with confidence and severity; the response also carries word/sentence statistics and a readability estimate.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CheckRequest" },
              "examples": {
                "basic": {
                  "value": { "text": "This sentense has a misteak." }
                },
                "with language": {
                  "value": { "text": "Das ist ein Satz.", "language": "de-DE" }
                },
                "with goals": {
                  "value": { "text": "Some draft.", "goals": { "audience": "Academic", "intent": "Inform", "tone": "Formal" } }
                },
                "suppressing rules": {
                  "value": { "text": "Some draft.", "disabledRules": ["UPPERCASE_SENTENCE_START"] }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Check result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" }
              }
            }
          },
          "400": { "description": "Malformed body, non-string text, bad language tag, or timeout out of range" },
          "413": { "description": "Text exceeds the configured character limit" },
          "500": { "description": "Engine initialization or engine check failure" }
        }
      }
    },
    "/api/languages": {
      "get": {
        "summary": "Supported languages",
        "responses": {
          "200": {
            "description": "Curated language list",
            "content": {
              "application/json": {
                "example": { "languages": [ { "code": "en-US", "name": "English (US)" } ] }
              }
            }
          }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "description": "Liveness probe. Never constructs a checking engine.",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "prosecheck" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "CheckRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":          { "type": "string", "description": "Text to proofread" },
          "language":      { "type": "string", "description": "BCP-47 language tag (default en-US)", "example": "en-US" },
          "goals":         { "$ref": "#/components/schemas/Goals" },
          "disabledRules": { "type": "array", "items": { "type": "string" }, "description": "Engine rule IDs to suppress for this request" },
          "timeout":       { "type": "integer", "description": "Engine timeout in seconds (default 8, max 300)" }
        }
      },
      "Goals": {
        "type": "object",
        "description": "Writing goals, echoed back verbatim",
        "properties": {
          "audience": { "type": "string", "example": "General" },
          "intent":   { "type": "string", "example": "Inform" },
          "tone":     { "type": "string", "example": "Neutral" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "matches":    { "type": "array", "items": { "$ref": "#/components/schemas/Match" } },
          "language":   { "type": "string" },
          "textLength": { "type": "integer", "description": "Character (rune) count of the input" },
          "metrics":    { "$ref": "#/components/schemas/TextMetrics" },
          "goals":      { "$ref": "#/components/schemas/Goals" }
        }
      },
      "Match": {
        "type": "object",
        "properties": {
          "message":      { "type": "string" },
          "shortMessage": { "type": "string" },
          "offset":       { "type": "integer" },
          "length":       { "type": "integer" },
          "context": {
            "type": "object",
            "properties": {
              "text":   { "type": "string" },
              "offset": { "type": "integer" },
              "length": { "type": "integer" }
            }
          },
          "rule": {
            "type": "object",
            "properties": {
              "id":        { "type": "string", "example": "MORFOLOGIK_RULE_EN_US" },
              "issueType": { "type": "string", "example": "misspelling" },
              "category":  { "type": "string" },
              "url":       { "type": "string" }
            }
          },
          "replacements": {
            "type": "array",
            "description": "At most 5 suggestions, engine order",
            "items": {
              "type": "object",
              "properties": {
                "value":    { "type": "string" },
                "distance": { "type": "integer", "description": "Edit distance from the flagged span" }
              }
            }
          },
          "classification": { "$ref": "#/components/schemas/Classification" }
        }
      },
      "Classification": {
        "type": "object",
        "properties": {
          "category":          { "type": "string", "enum": ["spelling", "grammar", "punctuation", "style", "other"] },
          "confidence":        { "type": "number", "minimum": 0, "maximum": 1 },
          "severity":          { "type": "string", "enum": ["low", "medium", "high"] },
          "explanation":       { "type": "string" },
          "originalIssueType": { "type": "string" }
        }
      },
      "TextMetrics": {
        "type": "object",
        "properties": {
          "words":               { "type": "integer" },
          "sentences":           { "type": "integer" },
          "paragraphs":          { "type": "integer" },
          "avgWordsPerSentence": { "type": "number" },
          "avgCharsPerWord":     { "type": "number" },
          "complexWords":        { "type": "integer", "description": "Words of 7+ characters" },
          "readabilityScore":    { "type": "number", "minimum": 0, "maximum": 100 }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>prosecheck API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
