// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex wraps the file system calls the configuration
//              loader needs.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-04 v0.1.0: Initial documentation
// - 2026-10-15 v0.2.0: Reduced to existence checks and coded reads

// Package filex provides small file system helpers.
//
// ReadFile reports failures as *mdwerror.Error values so callers can tell a
// missing file (CodeNotFound) from an unreadable one:
//
//	content, err := filex.ReadFile(path)
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// fall back to defaults
//	}
//
// FirstFile picks the first existing regular file from a list of candidate
// paths, which is how configuration discovery searches its directories.
package filex
