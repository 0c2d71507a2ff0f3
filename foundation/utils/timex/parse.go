// File: parse.go
// Title: Pattern Parsing Engine
// Description: Reads raw text against a compiled Pattern into a set of
//              field values, then resolves them into a Date and a time of
//              day. Parsing is strict or lenient about widths and text
//              styles; resolution is strict (reject) or smart (clamp the day).
// Author: paisley
// Version: v0.2.1
// Created: 2026-03-07
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-07 v0.1.0: Initial strict parser
// - 2026-09-22 v0.2.0: Lenient mode, adjacent value parsing, smart resolution
// - 2026-10-15 v0.2.1: checkTwelveHour shared with the validator

package timex

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// maxDigits bounds variable-width numbers so values always fit an int.
const maxDigits = 9

type parseStyle int

const (
	// parseStrict enforces token widths and the exact text style.
	parseStrict parseStyle = iota
	// parseLenient accepts 1-9 digits for variable or lone numbers and any
	// text style.
	parseLenient
)

type resolverStyle int

const (
	// resolveStrict rejects days beyond the month length and never
	// assumes an era.
	resolveStrict resolverStyle = iota
	// resolveSmart clamps the day to the month length and assumes the
	// current era for a bare year-of-era.
	resolveSmart
)

// field slots
const (
	fEra = iota
	fYearOfEra
	fYear
	fMonth
	fDay
	fWeekday
	fAmPm
	fHourOfDay
	fClockHourAmPm
	fHourOfAmPm
	fClockHourOfDay
	fMinute
	fSecond
	fNano
	numFields
)

var fieldNames = [numFields]string{
	"era", "year-of-era", "year", "month", "day", "weekday", "am/pm",
	"hour-of-day", "clock-hour-of-am/pm", "hour-of-am/pm", "clock-hour-of-day",
	"minute", "second", "nano",
}

func slotOf(k fieldKind) int {
	switch k {
	case kindEra:
		return fEra
	case kindYearOfEra:
		return fYearOfEra
	case kindYear:
		return fYear
	case kindMonth:
		return fMonth
	case kindDay:
		return fDay
	case kindWeekday:
		return fWeekday
	case kindAmPm:
		return fAmPm
	case kindHourOfDay:
		return fHourOfDay
	case kindClockHourAmPm:
		return fClockHourAmPm
	case kindHourOfAmPm:
		return fHourOfAmPm
	case kindClockHourOfDay:
		return fClockHourOfDay
	case kindMinute:
		return fMinute
	case kindSecond:
		return fSecond
	default:
		return fNano
	}
}

// parseError is the internal failure of a parse or resolve step. Entry
// points wrap it into a coded error.
type parseError struct {
	pos    int
	reason string
}

func (e *parseError) Error() string {
	if e.pos < 0 {
		return e.reason
	}
	return fmt.Sprintf("%s at index %d", e.reason, e.pos)
}

func failAt(pos int, format string, args ...interface{}) error {
	return &parseError{pos: pos, reason: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...interface{}) error {
	return failAt(-1, format, args...)
}

// ===== Field set =====

type fieldSet struct {
	values [numFields]int
	set    [numFields]bool
}

func (fs *fieldSet) put(slot, v, pos int) error {
	if fs.set[slot] && fs.values[slot] != v {
		return failAt(pos, "conflicting %s %d and %d", fieldNames[slot], fs.values[slot], v)
	}
	fs.values[slot] = v
	fs.set[slot] = true
	return nil
}

func (fs *fieldSet) get(slot int) (int, bool) {
	return fs.values[slot], fs.set[slot]
}

func (fs *fieldSet) anyTime() bool {
	for slot := fAmPm; slot < numFields; slot++ {
		if fs.set[slot] {
			return true
		}
	}
	return false
}

// ===== Parser =====

type parser struct {
	pattern *Pattern
	chrono  Chronology
	style   parseStyle
	table   *textTable
}

func newParser(p *Pattern, chrono Chronology, style parseStyle) *parser {
	return &parser{pattern: p, chrono: chrono, style: style, table: zhTW}
}

// parse reads every token in order and requires the whole of raw to be
// consumed.
func (p *parser) parse(raw string) (*fieldSet, error) {
	fs := &fieldSet{}
	pos := 0
	for i, t := range p.pattern.tokens {
		switch {
		case t.kind == kindLiteral:
			if !strings.HasPrefix(raw[pos:], t.literal) {
				return nil, failAt(pos, "expected %q", t.literal)
			}
			pos += len(t.literal)

		case t.numeric():
			v, width, err := p.readNumber(raw, pos, i)
			if err != nil {
				return nil, err
			}
			if err := fs.put(slotOf(t.kind), v, pos); err != nil {
				return nil, err
			}
			pos += width

		default:
			v, width, ok := matchText(raw[pos:], p.textCandidates(t))
			if !ok {
				return nil, failAt(pos, "unrecognised %s text", fieldNames[slotOf(t.kind)])
			}
			if err := fs.put(slotOf(t.kind), v, pos); err != nil {
				return nil, err
			}
			pos += width
		}
	}
	if pos != len(raw) {
		return nil, failAt(pos, "unparsed text %q", raw[pos:])
	}
	return fs, nil
}

// strictWidths returns the digit range a numeric token accepts in strict
// mode.
func strictWidths(t token) (int, int) {
	switch {
	case t.kind == kindFraction:
		return t.count, t.count
	case t.reduced():
		return 2, 2
	case t.kind == kindYear || t.kind == kindYearOfEra:
		if t.count >= 4 {
			return t.count, t.count
		}
		return t.count, maxDigits
	case t.kind == kindNano || t.count == 1:
		return t.count, maxDigits
	default:
		return t.count, t.count
	}
}

func fixedWidth(t token) bool {
	lo, hi := strictWidths(t)
	return lo == hi
}

// follower reports whether token i directly continues a run of numeric
// tokens with a fixed width. Followers keep their width in every mode and
// the run's first token leaves room for them.
func (p *parser) follower(i int) bool {
	toks := p.pattern.tokens
	return i > 0 && toks[i].numeric() && toks[i-1].numeric() && fixedWidth(toks[i])
}

// reserved sums the widths of the followers after token i.
func (p *parser) reserved(i int) int {
	toks := p.pattern.tokens
	n := 0
	for j := i + 1; j < len(toks) && p.follower(j); j++ {
		n += toks[j].count
	}
	return n
}

func (p *parser) widths(i int) (lo, hi int) {
	t := p.pattern.tokens[i]
	lo, hi = strictWidths(t)
	if p.style == parseStrict || p.follower(i) {
		return lo, hi
	}
	if lo == hi && p.reserved(i) > 0 {
		return lo, hi
	}
	return 1, maxDigits
}

func (p *parser) readNumber(raw string, pos, i int) (value, width int, err error) {
	t := p.pattern.tokens[i]
	lo, hi := p.widths(i)
	reserve := 0
	if !p.follower(i) {
		reserve = p.reserved(i)
	}

	avail := 0
	for pos+avail < len(raw) && avail < hi+reserve && isDigit(raw[pos+avail]) {
		avail++
	}
	n := avail
	if reserve > 0 {
		n = avail - reserve
		if n < lo {
			n = lo
		}
		if n > avail {
			n = avail
		}
	}
	if n > hi {
		n = hi
	}
	if n < lo {
		return 0, 0, failAt(pos, "expected %d digits for %s", lo, fieldNames[slotOf(t.kind)])
	}

	v := 0
	for _, c := range raw[pos : pos+n] {
		v = v*10 + int(c-'0')
	}

	switch {
	case t.kind == kindFraction:
		v *= pow10(9 - n)
	case t.reduced() && n == 2:
		v = reduceYear(v, p.chrono.reducedBase())
	}
	return v, n, nil
}

// reduceYear expands a two-digit year into [base, base+99].
func reduceYear(v, base int) int {
	year := base - int(floorMod(int64(base), 100)) + v
	if year < base {
		year += 100
	}
	return year
}

func (p *parser) textCandidates(t token) []candidate {
	var cands []candidate
	switch t.kind {
	case kindMonth:
		if p.style == parseLenient {
			cands = p.table.monthCandidates(styleFull, styleShort)
		} else {
			cands = p.table.monthCandidates(styleFor(t.count))
		}
	case kindWeekday:
		if p.style == parseLenient {
			cands = p.table.weekdayCandidates(styleFull, styleShort)
		} else {
			cands = p.table.weekdayCandidates(styleFor(t.count))
		}
	case kindAmPm:
		cands = p.table.ampmCandidates()
	case kindEra:
		cands = p.table.eraCandidates(p.chrono)
	}
	// longest first so 民國前 wins over 民國
	sort.SliceStable(cands, func(a, b int) bool {
		return len(cands[a].text) > len(cands[b].text)
	})
	return cands
}

func matchText(s string, cands []candidate) (int, int, bool) {
	for _, c := range cands {
		if strings.HasPrefix(s, c.text) {
			return c.value, len(c.text), true
		}
	}
	return 0, 0, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ===== Resolution =====

// checkRanges validates every parsed field on its own.
func (fs *fieldSet) checkRanges() error {
	limits := []struct {
		slot   int
		lo, hi int
	}{
		{fYearOfEra, 1, 999999999},
		{fMonth, 1, 12},
		{fDay, 1, 31},
		{fHourOfDay, 0, 23},
		{fClockHourAmPm, 1, 12},
		{fHourOfAmPm, 0, 11},
		{fClockHourOfDay, 1, 24},
		{fMinute, 0, 59},
		{fSecond, 0, 59},
		{fNano, 0, 999999999},
	}
	for _, l := range limits {
		if v, ok := fs.get(l.slot); ok && (v < l.lo || v > l.hi) {
			return fail("%s %d out of range [%d, %d]", fieldNames[l.slot], v, l.lo, l.hi)
		}
	}
	return nil
}

// resolveYear combines era, year-of-era and proleptic year. A bare
// year-of-era resolves only in smart mode.
func (fs *fieldSet) resolveYear(rs resolverStyle) (int, bool, error) {
	year, hasYear := fs.get(fYear)
	era, hasEra := fs.get(fEra)

	if yoe, ok := fs.get(fYearOfEra); ok {
		var proleptic int
		switch {
		case hasEra:
			proleptic = prolepticFromEra(Era(era), yoe)
		case hasYear:
			proleptic = yoe
			if year <= 0 {
				proleptic = 1 - yoe
			}
		case rs == resolveStrict:
			return 0, false, nil
		default:
			proleptic = yoe
		}
		if hasYear && year != proleptic {
			return 0, false, fail("year %d conflicts with year-of-era %d", year, yoe)
		}
		return proleptic, true, nil
	}

	if !hasYear {
		return 0, false, nil
	}
	if hasEra {
		if e, _ := eraOf(year); e != Era(era) {
			return 0, false, fail("year %d conflicts with era", year)
		}
	}
	return year, true, nil
}

// resolveDate builds the Date. With partial set, missing fields are not an
// error and the second result reports whether a full date was present.
func (fs *fieldSet) resolveDate(c Chronology, rs resolverStyle, partial bool) (Date, bool, error) {
	if err := fs.checkRanges(); err != nil {
		return Date{}, false, err
	}
	proleptic, hasYear, err := fs.resolveYear(rs)
	if err != nil {
		return Date{}, false, err
	}
	month, hasMonth := fs.get(fMonth)
	day, hasDay := fs.get(fDay)

	if !hasYear || !hasMonth || !hasDay {
		if partial {
			return Date{}, false, nil
		}
		switch {
		case !hasYear:
			return Date{}, false, fail("missing year")
		case !hasMonth:
			return Date{}, false, fail("missing month")
		default:
			return Date{}, false, fail("missing day")
		}
	}

	year := c.isoYear(proleptic)
	if last := daysIn(time.Month(month), year); day > last {
		if rs == resolveStrict {
			return Date{}, false, fail("day %d out of range for %04d-%02d", day, year, month)
		}
		day = last
	}
	d := Date{Year: year, Month: time.Month(month), Day: day}

	if w, ok := fs.get(fWeekday); ok && time.Weekday(w) != d.Weekday() {
		return Date{}, false, fail("weekday does not match %s", d)
	}
	return d, true, nil
}

var errNoAmPm = fail("12-hour clock field needs an am/pm marker")

// checkTwelveHour rejects an h or K hour that neither an am/pm marker nor
// a 24-hour field places in the day.
func (fs *fieldSet) checkTwelveHour() error {
	_, clockHour := fs.get(fClockHourAmPm)
	_, hourOfAmPm := fs.get(fHourOfAmPm)
	if !clockHour && !hourOfAmPm {
		return nil
	}
	_, hasAmPm := fs.get(fAmPm)
	_, hasHour := fs.get(fHourOfDay)
	_, hasClockHour := fs.get(fClockHourOfDay)
	if hasAmPm || hasHour || hasClockHour {
		return nil
	}
	return errNoAmPm
}

type clock struct {
	hour, minute, second, nano int
}

// resolveTime builds the time of day. The second result is false when no
// hour could be derived; minute, second and nano default to zero.
func (fs *fieldSet) resolveTime(partial bool) (clock, bool, error) {
	if err := fs.checkRanges(); err != nil {
		return clock{}, false, err
	}

	hour, hasHour := fs.get(fHourOfDay)
	setHour := func(h int) error {
		if hasHour && hour != h {
			return fail("conflicting hour %d and %d", hour, h)
		}
		hour, hasHour = h, true
		return nil
	}

	if k, ok := fs.get(fClockHourOfDay); ok {
		if err := setHour(k % 24); err != nil {
			return clock{}, false, err
		}
	}

	hoap, hasHoap := -1, false
	if h, ok := fs.get(fClockHourAmPm); ok {
		hoap, hasHoap = h%12, true
	}
	if k, ok := fs.get(fHourOfAmPm); ok {
		if hasHoap && hoap != k {
			return clock{}, false, fail("conflicting hour-of-am/pm %d and %d", hoap, k)
		}
		hoap, hasHoap = k, true
	}

	ampm, hasAmPm := fs.get(fAmPm)
	switch {
	case hasAmPm && hasHoap:
		if err := setHour(ampm*12 + hoap); err != nil {
			return clock{}, false, err
		}
	case hasAmPm && hasHour:
		if hour/12 != ampm {
			return clock{}, false, fail("hour %d conflicts with am/pm", hour)
		}
	case hasHoap && hasHour:
		if hour%12 != hoap {
			return clock{}, false, fail("hour %d conflicts with hour-of-am/pm %d", hour, hoap)
		}
	case hasHoap && !partial:
		return clock{}, false, errNoAmPm
	}

	if !hasHour {
		return clock{}, false, nil
	}
	minute, _ := fs.get(fMinute)
	second, _ := fs.get(fSecond)
	nano, _ := fs.get(fNano)
	return clock{hour: hour, minute: minute, second: second, nano: nano}, true, nil
}
