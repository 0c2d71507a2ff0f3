// File: slicex.go
// Title: Slice Utilities
// Description: Generic helpers for partitioning and building slices.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-25
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation
// - 2026-09-25 v0.2.0: Chunks no longer share spare capacity

package slicex

// Chunk splits slice into consecutive groups of size elements. The last
// group holds the remainder. A non-positive size or empty slice yields nil.
// Appending to a chunk never overwrites the next one.
func Chunk[T any](slice []T, size int) [][]T {
	if len(slice) == 0 || size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for i := 0; i < len(slice); i += size {
		end := i + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[i:end:end])
	}
	return chunks
}

// Map applies mapper to every element
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil {
		return nil
	}
	result := make([]R, len(slice))
	for i, v := range slice {
		result[i] = mapper(v)
	}
	return result
}

// Repeat returns a slice holding element n times
func Repeat[T any](element T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	result := make([]T, n)
	for i := range result {
		result[i] = element
	}
	return result
}
