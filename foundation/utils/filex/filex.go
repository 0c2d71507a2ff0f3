// File: filex.go
// Title: File Access Utilities
// Description: Existence checks and whole-file reads that report failures
//              as coded errors.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Coded read errors, FirstFile for config discovery

package filex

import (
	"errors"
	"io/fs"
	"os"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FirstFile returns the first candidate that is a regular file.
func FirstFile(candidates []string) (string, bool) {
	for _, path := range candidates {
		if IsFile(path) {
			return path, true
		}
	}
	return "", false
}

// ===============================
// File Reading
// ===============================

// ReadFile reads the entire file. A missing file is a CodeNotFound error,
// a directory is CodeInvalidInput and any other failure is CodeInternal;
// every error carries the path as its "path" detail.
func ReadFile(path string) ([]byte, error) {
	const op = "filex.ReadFile"

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		return content, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, mdwerror.Wrap(err, "file not found: "+path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation(op).
			WithDetail("path", path)
	case IsDir(path):
		return nil, mdwerror.New("is a directory: "+path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("path", path)
	default:
		return nil, mdwerror.Wrap(err, "failed to read file "+path).
			WithCode(mdwerror.CodeInternal).
			WithOperation(op).
			WithDetail("path", path)
	}
}
