// Command prosecheck-cli pipes stdin (or a file) through the checker
// and prints the pretty-printed JSON result.
//
// Usage:
//
//	echo "This sentense has a misteak." | prosecheck-cli
//	prosecheck-cli -f draft.txt -lang en-GB
//	prosecheck-cli -f draft.txt -disable UPPERCASE_SENTENCE_START,EN_QUOTES
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/proseworks/prosecheck/internal/engine"
	"github.com/proseworks/prosecheck/internal/model"
	"github.com/proseworks/prosecheck/internal/util"
	"github.com/proseworks/prosecheck/prosecheck"
)

func main() {
	file      := flag.String("f", "", "file to read instead of stdin")
	lang      := flag.String("lang", prosecheck.DefaultLanguage, "language to check against")
	engineURL := flag.String("engine", engine.DefaultBaseURL, "engine base URL")
	disable   := flag.String("disable", "", "comma-separated engine rule IDs to suppress")
	timeout   := flag.Duration("t", 8*time.Second, "overall timeout")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	must(err)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var disabled []string
	if *disable != "" {
		disabled = strings.Split(*disable, ",")
	}

	checker := prosecheck.NewChecker(engine.NewCache(*engineURL), *lang, prosecheck.DefaultMaxTextChars)
	res, err := checker.Check(ctx, strings.TrimSpace(string(data)), *lang, model.Goals{}, disabled)
	must(err)

	out, _ := util.MarshalNoEscape(res, true)
	fmt.Println(string(out))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "prosecheck-cli:", err)
		os.Exit(1)
	}
}
