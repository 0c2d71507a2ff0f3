// File: arith_test.go
// Title: Arithmetic and Selection Tests
// Description: Tests for SecondsBetween, DaysBetween, day boundaries and
//              the nil-aware Min/Max helpers.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-22
//
// Change History:
// - 2026-03-04 v0.1.0: Initial tests
// - 2026-09-22 v0.2.0: Floor semantics, DateTime selection

package timex

import (
	"testing"
	"time"
)

func TestSecondsBetween(t *testing.T) {
	testCases := []struct {
		name string
		a, b DateTime
		want int64
	}{
		{"same instant", DateTime{2024, 1, 1, 8, 0, 0, 0}, DateTime{2024, 1, 1, 8, 0, 0, 0}, 0},
		{"one hour", DateTime{2024, 1, 1, 8, 0, 0, 0}, DateTime{2024, 1, 1, 9, 0, 0, 0}, 3600},
		{"negative", DateTime{2024, 1, 1, 9, 0, 0, 0}, DateTime{2024, 1, 1, 8, 0, 0, 0}, -3600},
		{"across leap day", DateTime{2024, 2, 28, 0, 0, 0, 0}, DateTime{2024, 3, 1, 0, 0, 0, 0}, 2 * 86400},
		{"half second floors", DateTime{2024, 1, 1, 0, 0, 0, 500000000}, DateTime{2024, 1, 1, 0, 0, 1, 0}, 0},
		{"negative half second floors", DateTime{2024, 1, 1, 0, 0, 1, 0}, DateTime{2024, 1, 1, 0, 0, 0, 500000000}, -1},
		{"across years", DateTime{1912, 1, 1, 0, 0, 0, 0}, DateTime{2024, 1, 1, 0, 0, 0, 0}, (19723 + 21185) * 86400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SecondsBetween(tc.a, tc.b); got != tc.want {
				t.Errorf("SecondsBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSecondsBetweenMatchesDuration(t *testing.T) {
	a := DateTime{2023, 3, 14, 1, 59, 26, 535897932}
	for i := 0; i < 200; i++ {
		b := DateTimeOf(a.In(time.UTC).Add(time.Duration(i*7919) * time.Second * 13))
		want := int64(b.In(time.UTC).Sub(a.In(time.UTC)) / time.Second)
		if got := SecondsBetween(a, b); got != want {
			t.Fatalf("SecondsBetween(%v, %v) = %d, want %d", a, b, got, want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	testCases := []struct {
		a, b Date
		want int64
	}{
		{Date{2024, 1, 1}, Date{2024, 1, 31}, 30},
		{Date{2024, 1, 31}, Date{2024, 1, 1}, -30},
		{Date{2024, 1, 1}, Date{2025, 1, 1}, 366},
		{Date{2023, 1, 1}, Date{2024, 1, 1}, 365},
		{Date{2024, 1, 1}, Date{2024, 1, 1}, 0},
		{Date{1911, 12, 31}, Date{1912, 1, 1}, 1},
	}
	for _, tc := range testCases {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestBoundariesPropagateNil(t *testing.T) {
	if StartOfDay(nil) != nil {
		t.Error("StartOfDay(nil) != nil")
	}
	if DateOf(nil) != nil {
		t.Error("DateOf(nil) != nil")
	}
	if DateTimeOfTime(nil) != nil {
		t.Error("DateTimeOfTime(nil) != nil")
	}

	d := MustDate(2024, time.January, 31)
	if got := StartOfDay(&d); *got != (DateTime{2024, time.January, 31, 0, 0, 0, 0}) {
		t.Errorf("StartOfDay() = %v", *got)
	}
	dt := DateTime{2024, time.January, 31, 23, 59, 59, 1}
	if got := DateOf(&dt); *got != d {
		t.Errorf("DateOf() = %v", *got)
	}
	tm := dt.In(ServiceZone)
	if got := DateTimeOfTime(&tm); *got != dt {
		t.Errorf("DateTimeOfTime() = %v", *got)
	}
}

func TestMinMax(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, ServiceZone)
	late := early.Add(time.Hour)
	tie := early.In(time.UTC)

	testCases := []struct {
		name     string
		a, b     *time.Time
		min, max *time.Time
	}{
		{"both nil", nil, nil, nil, nil},
		{"first nil", nil, &late, &late, &late},
		{"second nil", &early, nil, &early, &early},
		{"ordered", &early, &late, &early, &late},
		{"reversed", &late, &early, &early, &late},
		{"tie returns second", &early, &tie, &tie, &tie},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Min(tc.a, tc.b); got != tc.min {
				t.Errorf("Min() = %v, want %v", got, tc.min)
			}
			if got := Max(tc.a, tc.b); got != tc.max {
				t.Errorf("Max() = %v, want %v", got, tc.max)
			}
		})
	}
}

func TestMinMaxDateTime(t *testing.T) {
	a := DateTime{2024, 1, 1, 8, 0, 0, 0}
	b := DateTime{2024, 1, 1, 9, 0, 0, 0}
	same := a

	if MinDateTime(nil, nil) != nil || MaxDateTime(nil, nil) != nil {
		t.Error("nil, nil should stay nil")
	}
	if MaxDateTime(nil, &b) != &b || MinDateTime(&a, nil) != &a {
		t.Error("a nil argument must not win")
	}
	if MinDateTime(&b, &a) != &a || MaxDateTime(&a, &b) != &b {
		t.Error("ordering wrong")
	}
	if MinDateTime(&a, &same) != &same || MaxDateTime(&a, &same) != &same {
		t.Error("tie should return the second argument")
	}
}
