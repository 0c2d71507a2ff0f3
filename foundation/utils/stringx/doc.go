// Package stringx provides blank checks and padding helpers.
//
// Padding counts runes, not bytes, so "民國" pads to the same width as
// any two-letter ASCII string. Display width of wide characters is left
// to the caller.
package stringx
