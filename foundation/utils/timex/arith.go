// File: arith.go
// Title: Date Arithmetic and Selection
// Description: Differences between civil values, day boundaries and
//              nil-aware min/max selection.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-22
//
// Change History:
// - 2026-03-04 v0.1.0: DaysBetween, Min, Max
// - 2026-09-22 v0.2.0: SecondsBetween on epoch days, DateTime variants

package timex

import (
	"time"
)

// ===== Differences =====

// SecondsBetween returns b - a in whole seconds, rounded toward negative
// infinity. No zone is involved.
func SecondsBetween(a, b DateTime) int64 {
	days := b.Date().EpochDay() - a.Date().EpochDay()
	secs := days*secondsPerDay + int64(b.secondOfDay()-a.secondOfDay())
	if b.Nanosecond < a.Nanosecond {
		secs--
	}
	return secs
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) int64 {
	return b.EpochDay() - a.EpochDay()
}

// ===== Boundaries =====

// StartOfDay returns midnight at the start of d, or nil for nil.
func StartOfDay(d *Date) *DateTime {
	if d == nil {
		return nil
	}
	dt := d.AtStartOfDay()
	return &dt
}

// DateOf drops the time of day, or returns nil for nil.
func DateOf(dt *DateTime) *Date {
	if dt == nil {
		return nil
	}
	d := dt.Date()
	return &d
}

// DateTimeOfTime returns the wall clock reading of t in its own location,
// or nil for nil.
func DateTimeOfTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	dt := DateTimeOf(*t)
	return &dt
}

// ===== Selection =====
//
// A nil argument never wins or loses a comparison: the other argument is
// returned. On a tie the second argument is returned.

// Min returns the earlier of a and b.
func Min(a, b *time.Time) *time.Time {
	if a != nil && b != nil {
		if a.Before(*b) {
			return a
		}
		return b
	}
	if b == nil {
		return a
	}
	return b
}

// Max returns the later of a and b.
func Max(a, b *time.Time) *time.Time {
	if a != nil && b != nil {
		if a.After(*b) {
			return a
		}
		return b
	}
	if b == nil {
		return a
	}
	return b
}

// MinDateTime is Min for civil date-times.
func MinDateTime(a, b *DateTime) *DateTime {
	if a != nil && b != nil {
		if a.Before(*b) {
			return a
		}
		return b
	}
	if b == nil {
		return a
	}
	return b
}

// MaxDateTime is Max for civil date-times.
func MaxDateTime(a, b *DateTime) *DateTime {
	if a != nil && b != nil {
		if a.After(*b) {
			return a
		}
		return b
	}
	if b == nil {
		return a
	}
	return b
}
