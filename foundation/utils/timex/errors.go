// File: errors.go
// Title: Calendar Error Helpers
// Description: Coded errors returned by the parse entry points and
//              predicates to recognise them through wrapped chains.
// Author: paisley
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: FormatMismatch and CalendarParse helpers

package timex

import (
	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

func formatMismatch(op, raw, pattern string, cause error) error {
	return coded(mdwerror.CodeFormatMismatch, op, raw, pattern, cause,
		"text does not match pattern")
}

func calendarParse(op, raw, pattern string, cause error) error {
	return coded(mdwerror.CodeCalendarParse, op, raw, pattern, cause,
		"text is not a valid ROC calendar date")
}

func coded(code mdwerror.Code, op, raw, pattern string, cause error, msg string) error {
	var e *mdwerror.Error
	if cause != nil {
		e = mdwerror.Wrap(cause, msg)
	} else {
		e = mdwerror.New(msg)
	}
	return e.WithCode(code).
		WithOperation(op).
		WithDetail("raw", raw).
		WithDetail("pattern", pattern)
}

// IsFormatMismatch reports whether err, or any error it wraps, is a
// CodeFormatMismatch error.
func IsFormatMismatch(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeFormatMismatch)
}

// IsCalendarParse reports whether err, or any error it wraps, is a
// CodeCalendarParse error.
func IsCalendarParse(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeCalendarParse)
}

// IsInvalidPattern reports whether err (or a recovered panic value) is a
// CodeInvalidPattern error.
func IsInvalidPattern(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidPattern)
}
