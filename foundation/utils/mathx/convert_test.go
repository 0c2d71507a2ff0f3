// File: convert_test.go
// Title: Numeric Conversion Tests
// Description: Tests for lenient conversion and number formatting.
// Author: paisley
// Version: v0.1.1
// Created: 2026-09-26
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-26 v0.1.0: Initial tests
// - 2026-10-15 v0.1.1: Surrounding whitespace, negative pad widths

package mathx

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func TestToPlainString(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"plain string", "abc", "abc", true},
		{"scientific string", "1.2E+5", "120000", true},
		{"negative exponent", "-5e-3", "-0.005", true},
		{"int", 42, "42", true},
		{"int8", int8(-8), "-8", true},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615", true},
		{"float", 1.5e-7, "0.00000015", true},
		{"large float", 1e21, "1000000000000000000000", true},
		{"float32", float32(0.1), "0.1", true},
		{"decimal", MustNewDecimal("12.50"), "12.5", true},
		{"big int", big.NewInt(7), "7", true},
		{"nil big int", (*big.Int)(nil), "", false},
		{"big float", big.NewFloat(2.5), "2.5", true},
		{"unsupported", time.Second, "", false},
		{"bool", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToPlainString(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToPlainString(%v) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		input  interface{}
		want   string
		wantOK bool
	}{
		{"3.50", "3.5", true},
		{"-12", "-12", true},
		{"+7", "7", true},
		{" 12", "12", true},
		{"\t-0.5\n", "-0.5", true},
		{"1e3", "1000", true},
		{12.25, "12.25", true},
		{"1.", "", false},
		{".5", "", false},
		{"", "", false},
		{"12a", "", false},
		{math.NaN(), "", false},
		{math.Inf(1), "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, ok := ToDecimal(tt.input)
		if ok != tt.wantOK {
			t.Errorf("ToDecimal(%v) ok = %v", tt.input, ok)
			continue
		}
		if ok && got.PlainString() != tt.want {
			t.Errorf("ToDecimal(%v) = %s, want %s", tt.input, got.PlainString(), tt.want)
		}
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		input  interface{}
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{" -7 ", -7, true},
		{int64(9), 9, true},
		{MustNewDecimal("9.99"), 9, true},
		{"9.99", 0, false},
		{2.0, 2, true},
		{2.5, 0, false},
		{"99999999999999999999", 0, false},
		{"abc", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToInt(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ToInt(%v) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		input  interface{}
		width  int
		want   string
		wantOK bool
	}{
		{"7", 3, "007", true},
		{113, 3, "113", true},
		{1234, 2, "1234", true},
		{-42, 5, "-0042", true},
		{"x", 3, "", false},
		{7, 0, "7", true},
		{7, -3, "", false},
		{-7, -3, "", false},
	}

	for _, tt := range tests {
		got, ok := ZeroPad(tt.input, tt.width)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ZeroPad(%v, %d) = %q, %v", tt.input, tt.width, got, ok)
		}
	}
}

func TestToNumber(t *testing.T) {
	if got := ToNumber[int]("12.9", 0); got != 12 {
		t.Errorf("ToNumber[int](12.9) = %d", got)
	}
	if got := ToNumber[int64]("-3", 0); got != -3 {
		t.Errorf("ToNumber[int64](-3) = %d", got)
	}
	if got := ToNumber[float64]("2.5", 0); got != 2.5 {
		t.Errorf("ToNumber[float64](2.5) = %v", got)
	}
	if got := ToNumber[float32](4, 0); got != 4 {
		t.Errorf("ToNumber[float32](4) = %v", got)
	}
	if got := ToNumber[int]("n/a", 10); got != 10 {
		t.Errorf("ToNumber default = %d", got)
	}
	if got := ToNumber[int](nil, -1); got != -1 {
		t.Errorf("ToNumber(nil) = %d", got)
	}
	if got := ToNumber[int]("1e30", 5); got != 5 {
		t.Errorf("ToNumber overflow = %d", got)
	}

	type weekday int
	if got := ToNumber[weekday]("3", 0); got != 3 {
		t.Errorf("ToNumber[weekday] = %d", got)
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		input  interface{}
		want   string
		wantOK bool
	}{
		{1234567, "1,234,567", true},
		{"1234567.8915", "1,234,567.892", true},
		{"1234.5", "1,234.5", true},
		{"-1000", "-1,000", true},
		{"999", "999", true},
		{"0.0004", "0", true},
		{"0.0005", "0", true},
		{"0.0015", "0.002", true},
		{"abc", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatThousands(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FormatThousands(%v) = %q, %v; want %q", tt.input, got, ok, tt.want)
		}
	}
}

func TestFormatPattern(t *testing.T) {
	tests := []struct {
		input   interface{}
		pattern string
		want    string
		wantOK  bool
	}{
		{1234.5, "#,##0.00", "1,234.50", true},
		{"1234567", "#,##0", "1,234,567", true},
		{42, "0000", "0042", true},
		{0.456, "#.##", ".46", true},
		{0, "#", "0", true},
		{"0.125", "0.00", "0.12", true},
		{"0.135", "0.00", "0.14", true},
		{"-9876.5", "#,##0.0#", "-9,876.5", true},
		{1500, "NT$#,##0元", "NT$1,500元", true},
		{"12345678", "#,####", "1234,5678", true},
		{1, "abc", "", false},
		{1, "0.0.0", "", false},
		{1, "#0#", "", false},
		{1, "0.#0", "", false},
		{"x", "0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, ok := FormatPattern(tt.input, tt.pattern)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FormatPattern(%v, %q) = %q, %v; want %q, %v",
					tt.input, tt.pattern, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
