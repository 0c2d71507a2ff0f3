// File: legacy.go
// Title: Legacy Era Flip
// Description: Year-threshold conversion kept for callers of the old
//              convertRocAndAd helper. New code uses ConvertAdToRoc and
//              ConvertRocToAd.
// Author: paisley
// Version: v0.1.0
// Created: 2026-03-09
// Modified: 2026-03-09
//
// Change History:
// - 2026-03-09 v0.1.0: Ported threshold flip behind a deprecated entry point

package timex

import (
	"time"

	"github.com/paisley/rocdate/foundation/utils/stringx"
)

// legacyThreshold splits ROC from Gregorian years in FlipEraLegacy.
const legacyThreshold = 1492

// FlipEraLegacy parses raw leniently with beforePattern, moves the year by
// 1911 and renders the result with afterPattern. Years above 1492 are taken
// as Gregorian and moved down; all others are taken as ROC and moved up.
// A February 29 that lands on a common year becomes February 28. The time
// of day is kept and defaults to midnight.
//
// Blank input yields ("", false, nil); unparseable input is a
// CodeFormatMismatch error.
//
// Deprecated: the threshold misreads ROC years above 1492 and Gregorian
// years up to 1492. Use ConvertAdToRoc or ConvertRocToAd.
func FlipEraLegacy(raw, beforePattern, afterPattern string) (string, bool, error) {
	const op = "timex.FlipEraLegacy"
	if stringx.IsBlank(raw) {
		return "", false, nil
	}
	fs, err := newParser(MustCompilePattern(beforePattern), ISO, parseLenient).parse(raw)
	if err != nil {
		return "", false, formatMismatch(op, raw, beforePattern, err)
	}
	dt, err := resolveDateTime(fs, ISO, true)
	if err != nil {
		return "", false, formatMismatch(op, raw, beforePattern, err)
	}

	if dt.Year > legacyThreshold {
		dt.Year -= RocYearOffset
	} else {
		dt.Year += RocYearOffset
	}
	if dt.Month == time.February && dt.Day == 29 && !isLeap(dt.Year) {
		dt.Day = 28
	}

	s, ok := FormatDateTime(&dt, afterPattern)
	return s, ok, nil
}
