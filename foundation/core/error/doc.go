// Package error provides the coded error type shared by the rocdate packages.
//
// Package: error
// Title: rocdate Error Handling
// Description: Structured errors carrying a machine-readable code, a severity,
//              the failing operation and free-form details. Calendar parsing
//              failures are recoverable values returned to the caller; malformed
//              patterns are programmer errors and surface through panics that
//              still carry an *Error with CodeInvalidPattern.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with codes and severities
// - 2026-09-21 v0.2.0: Calendar codes, chain-aware HasCode, errors.Is by code
//
// Usage:
//
//	err := error.New("text does not match pattern").
//		WithCode(error.CodeFormatMismatch).
//		WithDetail("pattern", "yyyy-MM-dd").
//		WithOperation("timex.ParseDate")
//
//	if error.HasCode(err, error.CodeFormatMismatch) {
//		// ask the user to re-enter the date
//	}
package error
