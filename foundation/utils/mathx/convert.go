// File: convert.go
// Title: Numeric Conversion Helpers
// Description: Lenient conversion of loosely typed values (decoded config
//              entries, CLI arguments) into numbers and formatted strings.
//              Every function reports false instead of failing when the
//              input is absent or not numeric.
// Author: paisley
// Version: v0.1.1
// Created: 2026-09-26
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-26 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: ToDecimal trims once, ZeroPad rejects negative widths

package mathx

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	scientificRe = regexp.MustCompile(`^[+-]?\d\.?\d*[Ee][+-]?\d+$`)
	decimalRe    = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	integerRe    = regexp.MustCompile(`^[+-]?\d+$`)
)

// Number is the set of built-in numeric types ToNumber converts to
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToPlainString renders v as a string with scientific notation expanded.
// Strings, built-in numbers, Decimal, *big.Int and *big.Float are
// supported; any other type, nil included, reports false.
func ToPlainString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		if scientificRe.MatchString(x) {
			if d, err := NewDecimal(x); err == nil {
				return d.PlainString(), true
			}
		}
		return x, true
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case Decimal:
		return x.PlainString(), true
	case *big.Int:
		if x == nil {
			return "", false
		}
		return x.String(), true
	case *big.Float:
		if x == nil {
			return "", false
		}
		return x.Text('f', -1), true
	default:
		return "", false
	}
}

// ToDecimal converts v when its plain form is a decimal number such as
// "-12" or "3.50". Blank strings, exponents left after conversion and
// non-finite floats report false.
func ToDecimal(v interface{}) (Decimal, bool) {
	if d, ok := v.(Decimal); ok {
		return d, true
	}
	s, ok := ToPlainString(v)
	if !ok {
		return Decimal{}, false
	}
	s = strings.TrimSpace(s)
	if !decimalRe.MatchString(s) {
		return Decimal{}, false
	}
	d, err := NewDecimal(s)
	if err != nil {
		return Decimal{}, false
	}
	return d, true
}

// ToInt converts integer strings and numbers without a fractional part.
// A Decimal is truncated toward zero.
func ToInt(v interface{}) (int, bool) {
	if d, ok := v.(Decimal); ok {
		i, err := d.Int64()
		if err != nil || i > math.MaxInt || i < math.MinInt {
			return 0, false
		}
		return int(i), true
	}
	s, ok := ToPlainString(v)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if !integerRe.MatchString(s) {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ZeroPad renders an integer value left-padded with zeros to width
// characters. A minus sign counts toward the width; a negative width
// reports false.
func ZeroPad(v interface{}, width int) (string, bool) {
	i, ok := ToInt(v)
	if !ok || width < 0 {
		return "", false
	}
	return fmt.Sprintf("%0*d", width, i), true
}

// ToNumber converts v to T, or returns def when v is not numeric.
// Integer targets truncate toward zero.
func ToNumber[T Number](v interface{}, def T) T {
	d, ok := ToDecimal(v)
	if !ok {
		return def
	}
	if T(1)/T(2) != 0 {
		return T(d.Float64())
	}
	i, err := d.Int64()
	if err != nil {
		return def
	}
	return T(i)
}

// FormatThousands groups the integer digits of v with commas and keeps at
// most three fraction digits, rounding half-even.
//
//	FormatThousands(1234567.8915) // "1,234,567.892"
func FormatThousands(v interface{}) (string, bool) {
	d, ok := ToDecimal(v)
	if !ok {
		return "", false
	}
	return render(d, numberFormat{group: 3, maxFrac: 3, minInt: 1}), true
}

// FormatPattern formats v with a DecimalFormat-style pattern such as
// "#,##0.00" or "0000". Characters before the first and after the last
// pattern symbol are copied as prefix and suffix. An unusable pattern
// reports false.
func FormatPattern(v interface{}, pattern string) (string, bool) {
	d, ok := ToDecimal(v)
	if !ok {
		return "", false
	}
	nf, ok := compileNumberPattern(pattern)
	if !ok {
		return "", false
	}
	return render(d, nf), true
}

type numberFormat struct {
	prefix, suffix string
	group          int
	minInt         int
	minFrac        int
	maxFrac        int
}

func isPatternSymbol(r rune) bool {
	return r == '#' || r == '0' || r == ',' || r == '.'
}

func compileNumberPattern(pattern string) (numberFormat, bool) {
	start := strings.IndexFunc(pattern, isPatternSymbol)
	end := strings.LastIndexFunc(pattern, isPatternSymbol)
	if start < 0 {
		return numberFormat{}, false
	}
	nf := numberFormat{prefix: pattern[:start], suffix: pattern[end+1:]}
	body := pattern[start : end+1]

	intPart, fracPart, hasPoint := strings.Cut(body, ".")
	if strings.Contains(fracPart, ".") || strings.Contains(fracPart, ",") {
		return numberFormat{}, false
	}
	if strings.IndexFunc(body, func(r rune) bool { return !isPatternSymbol(r) }) >= 0 {
		return numberFormat{}, false
	}

	if i := strings.LastIndex(intPart, ","); i >= 0 {
		nf.group = len(intPart) - i - 1
		if nf.group == 0 {
			return numberFormat{}, false
		}
	}
	digits := strings.ReplaceAll(intPart, ",", "")
	if i := strings.Index(digits, "0"); i >= 0 {
		if strings.Contains(digits[i:], "#") {
			return numberFormat{}, false
		}
		nf.minInt = len(digits) - i
	}

	if hasPoint {
		nf.minFrac = strings.Count(fracPart, "0")
		nf.maxFrac = len(fracPart)
		if strings.Contains(strings.TrimRight(fracPart, "#"), "#") {
			return numberFormat{}, false
		}
	}
	return nf, true
}

func render(d Decimal, nf numberFormat) string {
	rounded := d.Round(nf.maxFrac, RoundingModeHalfEven)
	negative := rounded.Sign() < 0
	if negative {
		rounded = rounded.Neg()
	}

	plain := rounded.rat().FloatString(nf.maxFrac)
	intDigits, frac, _ := strings.Cut(plain, ".")

	frac = strings.TrimRight(frac, "0")
	for len(frac) < nf.minFrac {
		frac += "0"
	}

	intDigits = strings.TrimLeft(intDigits, "0")
	for len(intDigits) < nf.minInt {
		intDigits = "0" + intDigits
	}
	if intDigits == "" && frac == "" {
		intDigits = "0"
	}
	if nf.group > 0 {
		intDigits = groupDigits(intDigits, nf.group)
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(nf.prefix)
	b.WriteString(intDigits)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(nf.suffix)
	return b.String()
}

func groupDigits(digits string, size int) string {
	if len(digits) <= size {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % size
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}
