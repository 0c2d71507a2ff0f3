// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks and rune-aware padding used by the date
//              pattern engine and the CLI output.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-25
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation with core utilities
// - 2026-09-25 v0.2.0: Trimmed to the helpers rocdate uses

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string, or "" when all are blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// PadLeft pads s on the left with pad until it is width runes long.
// Longer strings are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad until it is width runes long
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center places s in the middle of width runes. An odd remainder goes to
// the right.
func Center(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}
