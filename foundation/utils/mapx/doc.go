// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides lookup helpers for plain and decoded
//              configuration maps.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-25
//
// Change History:
// - 2026-03-04 v0.1.0: Initial documentation
// - 2026-09-25 v0.2.0: Path and DeepMerge for the config package

// Package mapx provides lookup helpers for Go maps.
//
// GetOrDefault and Lookup work on any map type and never write to the map
// they read. The remaining helpers target map[string]interface{} values as
// produced by the TOML and YAML decoders: GetAs and GetString give typed
// access to a single level, Path and SetPath address nested levels with
// dotted keys, and DeepMerge overlays one decoded document on another.
//
//	port := mapx.GetOrDefault(ports, "https", 443)
//	pattern, ok := mapx.Path(doc, "display.date_pattern")
//
// None of the functions are safe for concurrent mutation of the same map.
package mapx
