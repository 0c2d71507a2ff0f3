// File: minguo.go
// Title: Gregorian and ROC (Minguo) Conversion
// Description: Formats Gregorian values under the ROC chronology and parses
//              ROC text back into Gregorian dates. ROC parsing is lenient
//              about widths and text styles and clamps impossible days,
//              unlike the strict Gregorian parse path.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-08
// Modified: 2026-09-22
//
// Change History:
// - 2026-03-08 v0.1.0: ToMinguo, FromMinguo
// - 2026-09-22 v0.2.0: DateTimeToMinguo, AD/ROC compositions, NowAsMinguo

package timex

import (
	"github.com/paisley/rocdate/foundation/utils/stringx"
)

// ToMinguo renders d under the ROC chronology, so y and yyy print the ROC
// year: 2024-01-01 with "yyy/MM/dd" is "113/01/01". A nil date yields
// ("", false). Years before 1912 print their year in the 民國前 era.
func ToMinguo(d *Date, pattern string) (string, bool) {
	if d == nil {
		return "", false
	}
	return mustRender(mustFormatter(pattern, ROC).FormatDate(*d)), true
}

// DateTimeToMinguo is ToMinguo for a date-time; the time of day is kept.
func DateTimeToMinguo(dt *DateTime, pattern string) (string, bool) {
	if dt == nil {
		return "", false
	}
	return mustRender(mustFormatter(pattern, ROC).FormatDateTime(*dt)), true
}

// NowAsMinguo renders the current ServiceZone time under the ROC
// chronology.
func NowAsMinguo(pattern string) string {
	now := Now()
	s, _ := DateTimeToMinguo(&now, pattern)
	return s
}

// FromMinguo parses ROC calendar text into a Gregorian date. Parsing is
// lenient: numbers may use 1 to 9 digits unless they sit between other
// numbers, text fields accept short and full names, a bare year is taken
// as 民國, and a day past the end of its month is clamped (民國113年2月30日
// is 2024-02-29). Blank input yields (nil, nil); anything else that does
// not resolve yields a CodeCalendarParse error.
func FromMinguo(raw, rocPattern string) (*Date, error) {
	const op = "timex.FromMinguo"
	if stringx.IsBlank(raw) {
		return nil, nil
	}
	fs, err := newParser(MustCompilePattern(rocPattern), ROC, parseLenient).parse(raw)
	if err != nil {
		return nil, calendarParse(op, raw, rocPattern, err)
	}
	d, _, err := fs.resolveDate(ROC, resolveSmart, false)
	if err != nil {
		return nil, calendarParse(op, raw, rocPattern, err)
	}
	if _, _, err := fs.resolveTime(true); err != nil {
		return nil, calendarParse(op, raw, rocPattern, err)
	}
	return &d, nil
}

// ConvertAdToRoc re-renders Gregorian text as ROC text. The Gregorian side
// is parsed strictly and a pattern without time letters reads as midnight.
// Blank input yields ("", false, nil); a strict mismatch is a
// CodeFormatMismatch error.
func ConvertAdToRoc(raw, adPattern, rocPattern string) (string, bool, error) {
	const op = "timex.ConvertAdToRoc"
	if stringx.IsBlank(raw) {
		return "", false, nil
	}
	fs, err := parseISO(raw, MustCompilePattern(adPattern))
	if err != nil {
		return "", false, formatMismatch(op, raw, adPattern, err)
	}
	dt, err := resolveDateTime(fs, ISO, true)
	if err != nil {
		return "", false, formatMismatch(op, raw, adPattern, err)
	}
	s, ok := DateTimeToMinguo(&dt, rocPattern)
	return s, ok, nil
}

// ConvertRocToAd re-renders ROC text as Gregorian text. The ROC side is
// parsed leniently as by FromMinguo and rendered at the start of its day.
// Blank input yields ("", false, nil); failures are CodeCalendarParse
// errors.
func ConvertRocToAd(raw, rocPattern, adPattern string) (string, bool, error) {
	d, err := FromMinguo(raw, rocPattern)
	if err != nil || d == nil {
		return "", false, err
	}
	s, ok := FormatDateTime(StartOfDay(d), adPattern)
	return s, ok, nil
}
