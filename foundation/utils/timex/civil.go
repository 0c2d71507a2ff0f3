// File: civil.go
// Title: Civil Date and Date-Time Values
// Description: Immutable proleptic-Gregorian Date and DateTime values without
//              a zone, plus the epoch-day arithmetic they are built on.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-04
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-04 v0.1.0: Initial Date/DateTime implementation
// - 2026-09-21 v0.2.0: Epoch-day based comparisons, nanosecond precision

package timex

import (
	"fmt"
	"time"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

const (
	secondsPerDay = 24 * 60 * 60
	nanosPerSec   = int64(time.Second)

	// days between 0000-03-01 and 1970-01-01
	epochShift = 719468
	daysPer400 = 146097
)

// Date is a calendar date in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, or a
// CodeValueOutOfRange error when the combination does not exist.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, mdwerror.Newf("invalid date %04d-%02d-%02d", year, int(month), day).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("timex.NewDate")
	}
	return d, nil
}

// MustDate is like NewDate but panics on invalid input.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromEpochDay returns the date n days after 1970-01-01.
func DateFromEpochDay(n int64) Date {
	z := n + epochShift
	era := floorDiv(z, daysPer400)
	doe := z - era*daysPer400
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return Date{Year: int(y), Month: time.Month(m), Day: int(d)}
}

// IsValid reports whether the date exists in the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysIn(d.Month, d.Year)
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400 + doe - epochShift
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return DateFromEpochDay(d.EpochDay() + int64(n))
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	return time.Weekday(floorMod(d.EpochDay()+4, 7))
}

// LengthOfMonth returns the number of days in the date's month.
func (d Date) LengthOfMonth() int {
	return daysIn(d.Month, d.Year)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool { return d == other }

// AtStartOfDay returns midnight at the start of d.
func (d Date) AtStartOfDay() DateTime {
	return DateTime{Year: d.Year, Month: d.Month, Day: d.Day}
}

// AtTime combines d with a time of day. The result is not validated.
func (d Date) AtTime(hour, minute, second, nanosecond int) DateTime {
	return DateTime{
		Year: d.Year, Month: d.Month, Day: d.Day,
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
	}
}

// String returns the ISO-8601 form, e.g. 2024-01-31.
func (d Date) String() string {
	if d.Year < 0 || d.Year > 9999 {
		return fmt.Sprintf("%+05d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateTime is a Date combined with a time of day, without a zone.
type DateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewDateTime validates and returns a DateTime.
func NewDateTime(year int, month time.Month, day, hour, minute, second, nanosecond int) (DateTime, error) {
	dt := DateTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
	}
	if !dt.IsValid() {
		return DateTime{}, mdwerror.Newf("invalid date-time %s", dt.String()).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("timex.NewDateTime")
	}
	return dt, nil
}

// DateTimeOf returns the wall clock reading of t in t's own location.
func DateTimeOf(t time.Time) DateTime {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return DateTime{
		Year: y, Month: m, Day: d,
		Hour: h, Minute: mi, Second: s, Nanosecond: t.Nanosecond(),
	}
}

// DateTimeFromEpochMilli interprets ms as an instant and reads it in
// ServiceZone.
func DateTimeFromEpochMilli(ms int64) DateTime {
	return DateTimeOf(time.UnixMilli(ms).In(ServiceZone))
}

// IsValid reports whether every field is in range.
func (dt DateTime) IsValid() bool {
	return dt.Date().IsValid() &&
		dt.Hour >= 0 && dt.Hour < 24 &&
		dt.Minute >= 0 && dt.Minute < 60 &&
		dt.Second >= 0 && dt.Second < 60 &&
		dt.Nanosecond >= 0 && dt.Nanosecond < int(nanosPerSec)
}

// Date drops the time of day.
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// In returns the instant at which dt is the wall clock reading in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = ServiceZone
	}
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// EpochMilli returns the instant of dt read in ServiceZone as milliseconds
// since the Unix epoch.
func (dt DateTime) EpochMilli() int64 {
	return dt.In(ServiceZone).UnixMilli()
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to
// or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.Date().Compare(other.Date()); c != 0 {
		return c
	}
	if c := sign(dt.secondOfDay() - other.secondOfDay()); c != 0 {
		return c
	}
	return sign(dt.Nanosecond - other.Nanosecond)
}

// Before reports whether dt is before other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is after other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// Equal reports whether dt and other are the same date-time.
func (dt DateTime) Equal(other DateTime) bool { return dt == other }

// String returns the ISO-8601 local date-time form, e.g. 2024-01-31T08:30:00.
// Fractional seconds are printed only when non-zero.
func (dt DateTime) String() string {
	s := fmt.Sprintf("%sT%02d:%02d:%02d", dt.Date().String(), dt.Hour, dt.Minute, dt.Second)
	if dt.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", dt.Nanosecond)
	}
	return s
}

func (dt DateTime) secondOfDay() int {
	return dt.Hour*3600 + dt.Minute*60 + dt.Second
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(m time.Month, year int) int {
	switch m {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
