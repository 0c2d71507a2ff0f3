// File: format.go
// Title: Pattern Formatting
// Description: Renders Date and DateTime values through a compiled Pattern
//              under the ISO or ROC chronology, plus the nil-propagating
//              package-level formatting entry points.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-06
// Modified: 2026-09-21
//
// Change History:
// - 2026-03-06 v0.1.0: FormatDate, FormatDateTime, FormatEpochMilli
// - 2026-09-21 v0.2.0: Formatter with locale and chronology options

package timex

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/stringx"
)

// ===== Formatter =====

// Formatter renders values with one pattern, chronology and locale.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	pattern *Pattern
	chrono  Chronology
	locale  language.Tag
	table   *textTable
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocale selects the text tables closest to tag.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) {
		f.locale = tag
		f.table = tableFor(tag)
	}
}

// WithChronology selects how year and era tokens are numbered.
func WithChronology(c Chronology) Option {
	return func(f *Formatter) {
		f.chrono = c
	}
}

// NewFormatter compiles pattern and applies opts. The defaults are the ISO
// chronology and the zh-TW locale.
func NewFormatter(pattern string, opts ...Option) (*Formatter, error) {
	p, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	f := &Formatter{pattern: p, chrono: ISO, locale: Locale, table: tableFor(Locale)}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func mustFormatter(pattern string, chrono Chronology) *Formatter {
	return &Formatter{
		pattern: MustCompilePattern(pattern),
		chrono:  chrono,
		locale:  Locale,
		table:   zhTW,
	}
}

// Pattern returns the compiled pattern.
func (f *Formatter) Pattern() *Pattern { return f.pattern }

// Locale returns the requested locale tag.
func (f *Formatter) Locale() language.Tag { return f.locale }

// FormatDate renders d. Patterns with time-of-day tokens return a
// CodeInvalidPattern error.
func (f *Formatter) FormatDate(d Date) (string, error) {
	return f.render(d.AtStartOfDay(), false)
}

// FormatDateTime renders dt.
func (f *Formatter) FormatDateTime(dt DateTime) (string, error) {
	return f.render(dt, true)
}

func (f *Formatter) render(dt DateTime, hasTime bool) (string, error) {
	var b strings.Builder
	proleptic := f.chrono.prolepticYear(dt.Year)
	era, yoe := eraOf(proleptic)

	for _, t := range f.pattern.tokens {
		if t.isTime() && !hasTime {
			return "", mdwerror.Newf("pattern %q needs a time of day, value is a date", f.pattern.source).
				WithCode(mdwerror.CodeInvalidPattern).
				WithOperation("timex.Format").
				WithDetail("pattern", f.pattern.source).
				WithDetail("letter", string(t.letter))
		}

		switch t.kind {
		case kindLiteral:
			b.WriteString(t.literal)
		case kindEra:
			b.WriteString(f.table.eras[f.chrono][era])
		case kindYearOfEra:
			writeYear(&b, yoe, t.count)
		case kindYear:
			writeYear(&b, proleptic, t.count)
		case kindMonth:
			if t.count >= 3 {
				b.WriteString(f.table.month(int(dt.Month), styleFor(t.count)))
			} else {
				writePadded(&b, int(dt.Month), t.count)
			}
		case kindDay:
			writePadded(&b, dt.Day, t.count)
		case kindWeekday:
			b.WriteString(f.table.weekday(int(dt.Date().Weekday()), styleFor(t.count)))
		case kindAmPm:
			b.WriteString(f.table.ampm[dt.Hour/12])
		case kindHourOfDay:
			writePadded(&b, dt.Hour, t.count)
		case kindClockHourAmPm:
			h := dt.Hour % 12
			if h == 0 {
				h = 12
			}
			writePadded(&b, h, t.count)
		case kindHourOfAmPm:
			writePadded(&b, dt.Hour%12, t.count)
		case kindClockHourOfDay:
			h := dt.Hour
			if h == 0 {
				h = 24
			}
			writePadded(&b, h, t.count)
		case kindMinute:
			writePadded(&b, dt.Minute, t.count)
		case kindSecond:
			writePadded(&b, dt.Second, t.count)
		case kindFraction:
			// truncate, never round
			writePadded(&b, dt.Nanosecond/pow10(9-t.count), t.count)
		case kindNano:
			writePadded(&b, dt.Nanosecond, t.count)
		}
	}
	return b.String(), nil
}

// writeYear prints a year. Two letters print the last two digits; four or
// more letters print a '+' when the year needs more digits than letters.
func writeYear(b *strings.Builder, year, count int) {
	if count == 2 {
		writePadded(b, int(floorMod(int64(year), 100)), 2)
		return
	}
	if year < 0 {
		b.WriteByte('-')
		writePadded(b, -year, count)
		return
	}
	digits := strconv.Itoa(year)
	if count >= 4 && len(digits) > count {
		b.WriteByte('+')
	}
	writePadded(b, year, count)
}

func writePadded(b *strings.Builder, v, width int) {
	b.WriteString(stringx.PadLeft(strconv.Itoa(v), width, '0'))
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// ===== Package-level formatting =====

// FormatDate renders d with pattern in the zh-TW locale. A nil date yields
// ("", false). A malformed pattern, or a pattern with time-of-day tokens,
// panics with a CodeInvalidPattern error.
func FormatDate(d *Date, pattern string) (string, bool) {
	if d == nil {
		return "", false
	}
	return mustRender(mustFormatter(pattern, ISO).FormatDate(*d)), true
}

// FormatDateTime renders dt with pattern in the zh-TW locale. A nil value
// yields ("", false). A malformed pattern panics.
func FormatDateTime(dt *DateTime, pattern string) (string, bool) {
	if dt == nil {
		return "", false
	}
	return mustRender(mustFormatter(pattern, ISO).FormatDateTime(*dt)), true
}

// FormatTime renders the wall clock reading of t in t's own location.
func FormatTime(t *time.Time, pattern string) (string, bool) {
	if t == nil {
		return "", false
	}
	dt := DateTimeOf(*t)
	return FormatDateTime(&dt, pattern)
}

// FormatEpochMilli renders the instant ms (milliseconds since the Unix
// epoch) as read in ServiceZone.
func FormatEpochMilli(ms int64, pattern string) string {
	return FormatEpochMilliIn(ms, pattern, ServiceZone)
}

// FormatEpochMilliIn renders the instant ms as read in loc. A nil loc
// means ServiceZone.
func FormatEpochMilliIn(ms int64, pattern string, loc *time.Location) string {
	if loc == nil {
		loc = ServiceZone
	}
	dt := DateTimeOf(time.UnixMilli(ms).In(loc))
	s, _ := FormatDateTime(&dt, pattern)
	return s
}

func mustRender(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

