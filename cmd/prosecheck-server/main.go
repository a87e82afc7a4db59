// Command prosecheck-server provides the proofreading HTTP REST API.
//
// Usage:
//
//	prosecheck-server -p 5001
//	prosecheck-server -p 5001 -engine http://localhost:8010 -lang en-GB
//	TEXT_MAX_CHARS=20000 prosecheck-server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/proseworks/prosecheck/internal/engine"
	"github.com/proseworks/prosecheck/prosecheck"
)

func main() {
	// Pick up a .env file if one is present; real env always wins.
	_ = godotenv.Load()

	port     := flag.String("p", envOr("PORT", "5001"), "port to listen on")
	engineURL := flag.String("engine", envOr("ENGINE_URL", engine.DefaultBaseURL), "LanguageTool-compatible engine base URL")
	lang     := flag.String("lang", envOr("DEFAULT_LANGUAGE", prosecheck.DefaultLanguage), "default language for requests that name none")
	maxChars := flag.Int("max-chars", envOrInt("TEXT_MAX_CHARS", prosecheck.DefaultMaxTextChars), "maximum text length in characters")
	flag.Parse()

	engines := engine.NewCache(*engineURL)
	checker := prosecheck.NewChecker(engines, *lang, *maxChars)
	srv := prosecheck.NewServer(checker)

	http.HandleFunc("/api/check", srv.CheckHandler)
	http.HandleFunc("/api/languages", srv.LanguagesHandler)
	http.HandleFunc("/health", srv.HealthHandler)
	http.HandleFunc("/openapi.json", srv.OpenAPIHandler)
	http.HandleFunc("/", srv.DocsHandler)

	log.Printf("   engine  : %s (default language %s, limit %d chars)\n", *engineURL, *lang, *maxChars)
	log.Printf("🚀 prosecheck server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/api/check\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", *port), nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}
