package bench

import (
	"strings"
	"testing"

	"github.com/proseworks/prosecheck/prosecheck"
)

// build the samples once – reuse in all benches.
var (
	short = "Hello world. How are you today?"
	long  = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 500)
)

func BenchmarkComputeMetricsShort(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = prosecheck.ComputeMetrics(short)
	}
}

func BenchmarkComputeMetricsLong(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = prosecheck.ComputeMetrics(long) // ~4 500 words
	}
}

func BenchmarkClassify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = prosecheck.Classify("MORFOLOGIK_RULE_EN_US", "misspelling")
	}
}
