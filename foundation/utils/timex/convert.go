// File: convert.go
// Title: String and Civil Value Conversion
// Description: Strict pattern validation and the nil-propagating parse and
//              re-format entry points for Gregorian dates and date-times.
// Author: paisley
// Version: v0.2.1
// Created: 2026-03-07
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-07 v0.1.0: ParseDate, ParseDateTime, MatchesPattern
// - 2026-09-22 v0.2.0: Reformat, strict gate in front of every parse
// - 2026-10-15 v0.2.1: Reformat renders dates at midnight; validator
//   applies the year-of-era and am/pm rules of the parsers

package timex

import (
	"github.com/paisley/rocdate/foundation/utils/stringx"
)

// MatchesPattern reports whether raw conforms to pattern under strict
// rules. Year-of-era letters are read as proleptic years, widths are
// exact, the whole input must be consumed and every present field must be
// valid (month 1-12, day within its month, hour 0-23, a consistent
// weekday). Fields the pattern does not contain are not required, so
// "2024-01" matches "yyyy-MM".
//
// Blank input yields false. Only a malformed pattern panics.
func MatchesPattern(raw, pattern string) bool {
	if stringx.IsBlank(raw) {
		return false
	}
	return matches(raw, MustCompilePattern(pattern)) == nil
}

func matches(raw string, p *Pattern) error {
	fs, err := newParser(p.strictYears(), ISO, parseStrict).parse(raw)
	if err != nil {
		return err
	}
	// y reads years from 1 upward once the original letters are parsed
	if y, ok := fs.get(fYear); ok && y < 1 && p.hasYearOfEra() {
		return fail("year-of-era %d out of range [1, 999999999]", y)
	}
	if _, _, err := fs.resolveDate(ISO, resolveStrict, true); err != nil {
		return err
	}
	if _, _, err := fs.resolveTime(true); err != nil {
		return err
	}
	return fs.checkTwelveHour()
}

// parseISO gates raw through the strict validator and then parses it with
// the original letters, resolving smartly.
func parseISO(raw string, p *Pattern) (*fieldSet, error) {
	if err := matches(raw, p); err != nil {
		return nil, err
	}
	return newParser(p, ISO, parseStrict).parse(raw)
}

// ParseDate parses raw as a Gregorian date. Blank input yields (nil, nil).
// Text that does not strictly match pattern, or a pattern that does not
// define year, month and day, yields a CodeFormatMismatch error.
func ParseDate(raw, pattern string) (*Date, error) {
	const op = "timex.ParseDate"
	if stringx.IsBlank(raw) {
		return nil, nil
	}
	fs, err := parseISO(raw, MustCompilePattern(pattern))
	if err != nil {
		return nil, formatMismatch(op, raw, pattern, err)
	}
	d, _, err := fs.resolveDate(ISO, resolveSmart, false)
	if err != nil {
		return nil, formatMismatch(op, raw, pattern, err)
	}
	return &d, nil
}

// ParseDateTime parses raw as a Gregorian date-time. The hour is required,
// minute, second and fraction default to zero, and 12-hour clock letters
// (h, K) need the am/pm letter a.
func ParseDateTime(raw, pattern string) (*DateTime, error) {
	const op = "timex.ParseDateTime"
	if stringx.IsBlank(raw) {
		return nil, nil
	}
	fs, err := parseISO(raw, MustCompilePattern(pattern))
	if err != nil {
		return nil, formatMismatch(op, raw, pattern, err)
	}
	dt, err := resolveDateTime(fs, ISO, false)
	if err != nil {
		return nil, formatMismatch(op, raw, pattern, err)
	}
	return &dt, nil
}

// resolveDateTime combines date and time. With midnight set, a pattern
// without any time letters resolves to the start of the day.
func resolveDateTime(fs *fieldSet, c Chronology, midnight bool) (DateTime, error) {
	d, _, err := fs.resolveDate(c, resolveSmart, false)
	if err != nil {
		return DateTime{}, err
	}
	clk, ok, err := fs.resolveTime(false)
	if err != nil {
		return DateTime{}, err
	}
	if !ok {
		if midnight && !fs.anyTime() {
			return d.AtStartOfDay(), nil
		}
		return DateTime{}, fail("missing hour")
	}
	return d.AtTime(clk.hour, clk.minute, clk.second, clk.nano), nil
}

// Reformat re-renders raw from one pattern to another. The source is
// parsed strictly as a date-time when fromPattern has time letters and as
// a date otherwise; a date renders at the start of its day, so toPattern
// may add time letters. Blank input yields ("", false, nil).
func Reformat(raw, fromPattern, toPattern string) (string, bool, error) {
	if stringx.IsBlank(raw) {
		return "", false, nil
	}
	if MustCompilePattern(fromPattern).HasTimeFields() {
		dt, err := ParseDateTime(raw, fromPattern)
		if err != nil {
			return "", false, err
		}
		s, ok := FormatDateTime(dt, toPattern)
		return s, ok, nil
	}
	d, err := ParseDate(raw, fromPattern)
	if err != nil {
		return "", false, err
	}
	s, ok := FormatDateTime(StartOfDay(d), toPattern)
	return s, ok, nil
}
