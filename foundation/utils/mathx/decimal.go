// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Exact decimal values backed by big.Rat with explicit rounding
//              and plain (exponent-free) rendering.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-05
// Modified: 2026-09-26
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation with core decimal operations
// - 2026-09-26 v0.2.0: Exact rounding on big.Int, PlainString, dropped pools

package mathx

import (
	"math/big"
	"strings"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds 0.5 to the even neighbour (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds 0.5 toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero
	RoundingModeDown
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// Decimal represents a decimal number with arbitrary precision. The zero
// value is 0.
type Decimal struct {
	value *big.Rat
}

// NewDecimal parses s. Plain decimals ("-12.50") and scientific notation
// ("1.5E+3") are accepted.
func NewDecimal(s string) (Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.Contains(trimmed, "/") {
		return Decimal{}, invalidDecimal(s)
	}
	rat, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Decimal{}, invalidDecimal(s)
	}
	return Decimal{value: rat}, nil
}

func invalidDecimal(s string) error {
	return mdwerror.New("invalid decimal format: "+s).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("mathx.NewDecimal").
		WithDetail("input", s)
}

// MustNewDecimal creates a new Decimal from a string, panicking on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Sign returns -1, 0 or 1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d is 0
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsInteger reports whether d has no fractional part
func (d Decimal) IsInteger() bool {
	return d.rat().IsInt()
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d and other are numerically equal
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Round rounds d to places fraction digits. Negative places round to the
// left of the decimal point.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	r := d.rat()
	scale := pow10(abs(places))

	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	if places >= 0 {
		num.Mul(num, scale)
	} else {
		den.Mul(den, scale)
	}

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && roundAway(q, rem, den, mode) {
		if num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	result := new(big.Rat)
	if places >= 0 {
		result.SetFrac(q, scale)
	} else {
		result.SetInt(q.Mul(q, scale))
	}
	return Decimal{value: result}
}

// roundAway decides whether a truncated quotient moves away from zero
func roundAway(q, rem, den *big.Int, mode RoundingMode) bool {
	twice := new(big.Int).Mul(new(big.Int).Abs(rem), bigTwo)
	half := twice.Cmp(den)
	switch mode {
	case RoundingModeUp:
		return true
	case RoundingModeDown:
		return false
	case RoundingModeHalfDown:
		return half > 0
	case RoundingModeHalfEven:
		return half > 0 || (half == 0 && q.Bit(0) == 1)
	default:
		return half >= 0
	}
}

// Truncate drops fraction digits beyond places
func (d Decimal) Truncate(places int) Decimal {
	return d.Round(places, RoundingModeDown)
}

// Scale returns the number of fraction digits needed to print d exactly,
// or -1 when its expansion does not terminate.
func (d Decimal) Scale() int {
	den := new(big.Int).Set(d.rat().Denom())
	twos, fives := 0, 0
	five := big.NewInt(5)
	m := new(big.Int)
	for {
		if q, r := new(big.Int).QuoRem(den, bigTwo, m); r.Sign() == 0 {
			den = q
			twos++
			continue
		}
		break
	}
	for {
		if q, r := new(big.Int).QuoRem(den, five, m); r.Sign() == 0 {
			den = q
			fives++
			continue
		}
		break
	}
	if den.Cmp(bigOne) != 0 {
		return -1
	}
	if twos > fives {
		return twos
	}
	return fives
}

// PlainString renders d without an exponent. Non-terminating values are
// cut to 16 fraction digits with half-even rounding.
func (d Decimal) PlainString() string {
	scale := d.Scale()
	if scale < 0 {
		return trimFraction(d.Round(16, RoundingModeHalfEven).rat().FloatString(16))
	}
	return d.rat().FloatString(scale)
}

// String is PlainString
func (d Decimal) String() string {
	return d.PlainString()
}

// StringFixed renders d with exactly places fraction digits, half-up
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Int64 returns the integer part of d, truncated toward zero
func (d Decimal) Int64() (int64, error) {
	r := d.rat()
	i := new(big.Int).Quo(r.Num(), r.Denom())
	if !i.IsInt64() {
		return 0, mdwerror.New("decimal out of int64 range: "+d.PlainString()).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("mathx.Decimal.Int64")
	}
	return i.Int64(), nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// trimFraction removes trailing fraction zeros and a bare decimal point
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
