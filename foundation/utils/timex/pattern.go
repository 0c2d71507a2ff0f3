// File: pattern.go
// Title: Pattern Compiler
// Description: Compiles letter-based date/time patterns (yyyy-MM-dd HH:mm:ss,
//              yyy/MM/dd, ...) into immutable token lists shared by the
//              formatter, the parser and the strict validator.
// Author: paisley
// Version: v0.2.1
// Created: 2026-03-05
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-05 v0.1.0: Initial tokenizer
// - 2026-09-21 v0.2.0: Quoted literals, per-letter count limits, strict year rewrite
// - 2026-10-15 v0.2.1: hasYearOfEra

package timex

import (
	"fmt"
	"strings"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

type fieldKind int

const (
	kindLiteral fieldKind = iota
	kindEra
	kindYearOfEra
	kindYear
	kindMonth
	kindDay
	kindWeekday
	kindAmPm
	kindHourOfDay      // H 0-23
	kindClockHourAmPm  // h 1-12
	kindHourOfAmPm     // K 0-11
	kindClockHourOfDay // k 1-24
	kindMinute
	kindSecond
	kindFraction
	kindNano
)

// letter properties: pattern letter -> kind and the largest accepted count
var letters = map[byte]struct {
	kind     fieldKind
	maxCount int
}{
	'G': {kindEra, 4},
	'y': {kindYearOfEra, 9},
	'u': {kindYear, 9},
	'M': {kindMonth, 4},
	'L': {kindMonth, 4},
	'd': {kindDay, 2},
	'E': {kindWeekday, 4},
	'a': {kindAmPm, 1},
	'H': {kindHourOfDay, 2},
	'h': {kindClockHourAmPm, 2},
	'K': {kindHourOfAmPm, 2},
	'k': {kindClockHourOfDay, 2},
	'm': {kindMinute, 2},
	's': {kindSecond, 2},
	'S': {kindFraction, 9},
	'n': {kindNano, 9},
}

type token struct {
	kind    fieldKind
	letter  byte
	count   int
	literal string
}

// numeric reports whether the token is printed and parsed as digits.
func (t token) numeric() bool {
	switch t.kind {
	case kindLiteral, kindEra, kindWeekday, kindAmPm:
		return false
	case kindMonth:
		return t.count <= 2
	default:
		return true
	}
}

func (t token) isTime() bool {
	return t.kind >= kindAmPm
}

func (t token) isDate() bool {
	return t.kind >= kindEra && t.kind <= kindWeekday
}

// reduced reports whether the token is a two-digit year.
func (t token) reduced() bool {
	return (t.kind == kindYear || t.kind == kindYearOfEra) && t.count == 2
}

// Pattern is a compiled date/time pattern. A Pattern is immutable and safe
// for concurrent use.
type Pattern struct {
	source string
	tokens []token
}

// CompilePattern parses pattern. Letters A-Z and a-z are reserved: the
// supported ones are G u y M L d E a H h K k m s S n. Text between single
// quotes is literal, and two single quotes stand for one quote. The
// characters [ ] { } # are reserved as well.
func CompilePattern(pattern string) (*Pattern, error) {
	var (
		tokens []token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: kindLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if j >= len(pattern) {
					return nil, invalidPattern(pattern, i, "unterminated quote")
				}
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				lit.WriteByte(pattern[j])
				j++
			}
			i = j + 1

		case isASCIILetter(c):
			info, ok := letters[c]
			if !ok {
				return nil, invalidPattern(pattern, i, fmt.Sprintf("unknown pattern letter %q", c))
			}
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			if n > info.maxCount {
				return nil, invalidPattern(pattern, i, fmt.Sprintf("too many pattern letters %q", strings.Repeat(string(c), n)))
			}
			flush()
			tokens = append(tokens, token{kind: info.kind, letter: c, count: n})
			i += n

		case strings.IndexByte("[]{}#", c) >= 0:
			return nil, invalidPattern(pattern, i, fmt.Sprintf("reserved character %q", c))

		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	return &Pattern{source: pattern, tokens: tokens}, nil
}

// MustCompilePattern is like CompilePattern but panics with a
// CodeInvalidPattern error when the pattern is malformed.
func MustCompilePattern(pattern string) *Pattern {
	p, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// HasDateFields reports whether any token selects a date field.
func (p *Pattern) HasDateFields() bool {
	for _, t := range p.tokens {
		if t.isDate() {
			return true
		}
	}
	return false
}

// HasTimeFields reports whether any token selects a time-of-day field.
func (p *Pattern) HasTimeFields() bool {
	for _, t := range p.tokens {
		if t.isTime() {
			return true
		}
	}
	return false
}

func (p *Pattern) hasYearOfEra() bool {
	for _, t := range p.tokens {
		if t.kind == kindYearOfEra {
			return true
		}
	}
	return false
}

// strictYears returns a copy in which every year-of-era token reads the
// proleptic year, so validation never invents an era. Quoted literals are
// left alone.
func (p *Pattern) strictYears() *Pattern {
	out := &Pattern{source: p.source, tokens: make([]token, len(p.tokens))}
	copy(out.tokens, p.tokens)
	for i, t := range out.tokens {
		if t.kind == kindYearOfEra {
			out.tokens[i].kind = kindYear
			out.tokens[i].letter = 'u'
		}
	}
	return out
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func invalidPattern(pattern string, pos int, reason string) *mdwerror.Error {
	return mdwerror.Newf("invalid pattern %q at %d: %s", pattern, pos, reason).
		WithCode(mdwerror.CodeInvalidPattern).
		WithOperation("timex.CompilePattern").
		WithDetail("pattern", pattern).
		WithDetail("position", pos)
}
