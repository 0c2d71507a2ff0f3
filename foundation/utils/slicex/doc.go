// Package slicex provides generic slice helpers.
//
// Chunk partitions a slice into fixed-size groups, for example a month of
// day cells into calendar weeks:
//
//	weeks := slicex.Chunk(cells, 7)
//
// Map and Repeat build the cell slices that feed it.
package slicex
