// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimals and lenient numeric
//              conversion and formatting helpers.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-05
// Modified: 2026-09-26
//
// Change History:
// - 2026-03-05 v0.1.0: Initial documentation
// - 2026-09-26 v0.2.0: Conversion helpers, dropped money and business math

// Package mathx provides exact decimal arithmetic and numeric conversion.
//
// Decimal wraps big.Rat. It never rounds implicitly: Round and StringFixed
// take an explicit place count, and PlainString prints the exact value
// without an exponent.
//
// The conversion helpers accept loosely typed input, typically a value from
// a decoded TOML or YAML document or a CLI argument, and report false when
// the input is nil, of an unsupported type, or not a number:
//
//	s, _ := mathx.ToPlainString(1.5e-7)              // "0.00000015"
//	n := mathx.ToNumber[int](cfg["width"], 10)       // 10 unless numeric
//	p, _ := mathx.ZeroPad("7", 3)                    // "007"
//	t, _ := mathx.FormatThousands("1234567.8915")    // "1,234,567.892"
//	f, _ := mathx.FormatPattern(1234.5, "#,##0.00")  // "1,234.50"
//
// Rounding modes follow the usual commercial and banker's definitions;
// FormatThousands and FormatPattern round half-even.
package mathx
