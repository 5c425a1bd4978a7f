package quantities

import (
	"math"
	"time"
)

// Frequency is stored in hertz.
type Frequency struct {
	base float64
}

// Hertz returns a Frequency of v hertz.
func Hertz(v float64) Frequency { return Frequency{base: v} }

// Kilohertz returns a Frequency of v kilohertz.
func Kilohertz(v float64) Frequency { return Frequency{base: toBase(v, Kilo)} }

// Megahertz returns a Frequency of v megahertz.
func Megahertz(v float64) Frequency { return Frequency{base: toBase(v, Mega)} }

// Gigahertz returns a Frequency of v gigahertz.
func Gigahertz(v float64) Frequency { return Frequency{base: toBase(v, Giga)} }

// NewFrequency returns a Frequency of v hertz scaled by the given prefix.
func NewFrequency(v float64, pfx Prefix) Frequency { return Frequency{base: toBase(v, pfx)} }

// ParseFrequency parses text like "50 Hz" or "2.4 GHz".
func ParseFrequency(s string) (Frequency, error) {
	v, err := parseQuantity(s, hertzUnit)
	if err != nil {
		return Frequency{}, err
	}
	return Frequency{base: v}, nil
}

// Hertz returns the frequency in hertz.
func (f Frequency) Hertz() float64 { return f.base }

// Kilohertz returns the frequency in kilohertz.
func (f Frequency) Kilohertz() float64 { return fromBase(f.base, Kilo) }

// Megahertz returns the frequency in megahertz.
func (f Frequency) Megahertz() float64 { return fromBase(f.base, Mega) }

// Gigahertz returns the frequency in gigahertz.
func (f Frequency) Gigahertz() float64 { return fromBase(f.base, Giga) }

// In returns the frequency at the given prefix.
func (f Frequency) In(pfx Prefix) float64 { return fromBase(f.base, pfx) }

// BaseValue returns the stored base magnitude in hertz.
func (f Frequency) BaseValue() float64 { return f.base }

// Period returns the duration of one cycle, at nanosecond resolution.
// Fails with ErrDivisionByZero at exactly zero hertz, and with
// ErrDurationOutOfRange when the cycle cannot be represented by a
// time.Duration.
func (f Frequency) Period() (time.Duration, error) {
	if f.base == 0 {
		return 0, ErrDivisionByZero
	}
	return asDuration(float64(time.Second) / f.base)
}

func (f Frequency) IsZero() bool     { return f.base == 0 }
func (f Frequency) IsNegative() bool { return f.base < 0 }
func (f Frequency) IsNaN() bool      { return math.IsNaN(f.base) }
func (f Frequency) IsInf() bool      { return math.IsInf(f.base, 0) }

func (f Frequency) Abs() Frequency { return Frequency{base: math.Abs(f.base)} }
func (f Frequency) Neg() Frequency { return Frequency{base: -f.base} }

func (f Frequency) Equal(o Frequency) bool { return f.base == o.base }
func (f Frequency) LT(o Frequency) bool    { return f.base < o.base }
func (f Frequency) LTE(o Frequency) bool   { return f.base <= o.base }
func (f Frequency) GT(o Frequency) bool    { return f.base > o.base }
func (f Frequency) GTE(o Frequency) bool   { return f.base >= o.base }

// IsClose reports whether f and o agree within the larger of the
// relative and absolute tolerances.
func (f Frequency) IsClose(o Frequency, relTol, absTol float64) bool {
	return isClose(f.base, o.base, relTol, absTol)
}

// Round returns the frequency with the hertz magnitude rounded to the
// given number of decimals, half to even.
func (f Frequency) Round(decimals int) Frequency { return Frequency{base: roundTo(f.base, decimals)} }

func (f Frequency) Add(o Frequency) Frequency { return Frequency{base: f.base + o.base} }
func (f Frequency) Sub(o Frequency) Frequency { return Frequency{base: f.base - o.base} }
func (f Frequency) Mul(v float64) Frequency   { return Frequency{base: f.base * v} }
func (f Frequency) Div(v float64) Frequency   { return Frequency{base: f.base / v} }

// String renders the canonical form at DefaultPrecision, e.g. "50 Hz".
func (f Frequency) String() string { return formatQuantity(f.base, hertzUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (f Frequency) Text(prec int) string { return formatQuantity(f.base, hertzUnit, prec) }
