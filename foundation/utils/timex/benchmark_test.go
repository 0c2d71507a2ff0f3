// File: benchmark_test.go
// Title: Timex Benchmarks
// Description: Benchmarks for validation, parsing and formatting hot paths.
// Author: paisley
// Version: v0.1.0
// Created: 2026-03-09
// Modified: 2026-03-09
//
// Change History:
// - 2026-03-09 v0.1.0: Initial benchmarks

package timex

import (
	"testing"
	"time"
)

func BenchmarkMatchesPattern(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MatchesPattern("2024-01-31 08:30:15", "yyyy-MM-dd HH:mm:ss")
	}
}

func BenchmarkParseDateTime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseDateTime("20240131083015", "yyyyMMddHHmmss")
	}
}

func BenchmarkFromMinguo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = FromMinguo("民國113年1月31日", "Gyyy年M月d日")
	}
}

func BenchmarkToMinguo(b *testing.B) {
	d := MustDate(2024, time.January, 31)
	for i := 0; i < b.N; i++ {
		ToMinguo(&d, "yyy/MM/dd")
	}
}

func BenchmarkFormatterReuse(b *testing.B) {
	f, err := NewFormatter("yyyy-MM-dd HH:mm:ss.SSS")
	if err != nil {
		b.Fatal(err)
	}
	dt := DateTime{2024, time.January, 31, 8, 30, 15, 250000000}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FormatDateTime(dt)
	}
}
