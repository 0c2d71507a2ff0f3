// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for the calendar utility, the
//              configuration layer and the command line tool.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-02 v0.1.0: Initial implementation with core error codes
// - 2026-09-21 v0.2.0: Added calendar codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar and pattern handling
	CodeFormatMismatch Code = "FORMAT_MISMATCH"
	CodeCalendarParse  Code = "CALENDAR_PARSE"
	CodeInvalidPattern Code = "INVALID_PATTERN"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeFormatMismatch, CodeCalendarParse, CodeInvalidPattern,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeFormatMismatch, CodeCalendarParse, CodeInvalidPattern:
		return "calendar"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// Recoverable reports whether callers are expected to handle the code as
// ordinary data failure rather than a defect in calling code.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidPattern, CodeInternal:
		return false
	default:
		return true
	}
}
