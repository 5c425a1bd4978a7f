package quantities

import "math"

// Current is electric current, stored in amperes.
type Current struct {
	base float64
}

// Milliamperes returns a Current of v milliamperes.
func Milliamperes(v float64) Current { return Current{base: toBase(v, Milli)} }

// Amperes returns a Current of v amperes.
func Amperes(v float64) Current { return Current{base: v} }

// NewCurrent returns a Current of v amperes scaled by the given prefix.
func NewCurrent(v float64, pfx Prefix) Current { return Current{base: toBase(v, pfx)} }

// ParseCurrent parses text like "-200 mA" or "10 A".
func ParseCurrent(s string) (Current, error) {
	v, err := parseQuantity(s, ampereUnit)
	if err != nil {
		return Current{}, err
	}
	return Current{base: v}, nil
}

// Milliamperes returns the current in milliamperes.
func (c Current) Milliamperes() float64 { return fromBase(c.base, Milli) }

// Amperes returns the current in amperes.
func (c Current) Amperes() float64 { return c.base }

// In returns the current at the given prefix.
func (c Current) In(pfx Prefix) float64 { return fromBase(c.base, pfx) }

// BaseValue returns the stored base magnitude in amperes.
func (c Current) BaseValue() float64 { return c.base }

func (c Current) IsZero() bool     { return c.base == 0 }
func (c Current) IsNegative() bool { return c.base < 0 }
func (c Current) IsNaN() bool      { return math.IsNaN(c.base) }
func (c Current) IsInf() bool      { return math.IsInf(c.base, 0) }

func (c Current) Abs() Current { return Current{base: math.Abs(c.base)} }
func (c Current) Neg() Current { return Current{base: -c.base} }

func (c Current) Equal(o Current) bool { return c.base == o.base }
func (c Current) LT(o Current) bool    { return c.base < o.base }
func (c Current) LTE(o Current) bool   { return c.base <= o.base }
func (c Current) GT(o Current) bool    { return c.base > o.base }
func (c Current) GTE(o Current) bool   { return c.base >= o.base }

// IsClose reports whether c and o agree within the larger of the
// relative and absolute tolerances.
func (c Current) IsClose(o Current, relTol, absTol float64) bool {
	return isClose(c.base, o.base, relTol, absTol)
}

// Round returns the current with the ampere magnitude rounded to the
// given number of decimals, half to even.
func (c Current) Round(decimals int) Current { return Current{base: roundTo(c.base, decimals)} }

func (c Current) Add(o Current) Current { return Current{base: c.base + o.base} }
func (c Current) Sub(o Current) Current { return Current{base: c.base - o.base} }
func (c Current) Mul(f float64) Current { return Current{base: c.base * f} }
func (c Current) Div(f float64) Current { return Current{base: c.base / f} }

// MulVoltage returns the power drawn at this current and the given
// voltage.
func (c Current) MulVoltage(v Voltage) Power {
	return Power{base: c.base * v.base}
}

// String renders the canonical form at DefaultPrecision, e.g. "10 A".
func (c Current) String() string { return formatQuantity(c.base, ampereUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (c Current) Text(prec int) string { return formatQuantity(c.base, ampereUnit, prec) }
