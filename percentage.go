package quantities

import "math"

// Percentage is a dimensionless ratio, stored as a fraction where 1.0
// is 100%. Its text form shows percent points, so Fraction(0.123)
// renders as "12.3 %".
type Percentage struct {
	base float64
}

// Percent returns a Percentage of v percent points, so Percent(50) is
// one half.
func Percent(v float64) Percentage { return Percentage{base: v / 100} }

// Fraction returns a Percentage of the fraction v, so Fraction(0.5)
// is 50%.
func Fraction(v float64) Percentage { return Percentage{base: v} }

// NewPercentage returns a Percentage of the fraction v scaled by the
// given prefix.
func NewPercentage(v float64, pfx Prefix) Percentage {
	return Percentage{base: toBase(v, pfx)}
}

// ParsePercentage parses text like "12.3 %".
func ParsePercentage(s string) (Percentage, error) {
	v, err := parseQuantity(s, percentUnit)
	if err != nil {
		return Percentage{}, err
	}
	return Percentage{base: v}, nil
}

// Percent returns the ratio in percent points.
func (p Percentage) Percent() float64 { return p.base * 100 }

// Fraction returns the ratio as a fraction.
func (p Percentage) Fraction() float64 { return p.base }

// In returns the fraction at the given prefix.
func (p Percentage) In(pfx Prefix) float64 { return fromBase(p.base, pfx) }

// BaseValue returns the stored fraction.
func (p Percentage) BaseValue() float64 { return p.base }

// Within reports whether p lies in the inclusive range [lo, hi].
func (p Percentage) Within(lo, hi Percentage) bool {
	return p.base >= lo.base && p.base <= hi.base
}

func (p Percentage) IsZero() bool     { return p.base == 0 }
func (p Percentage) IsNegative() bool { return p.base < 0 }
func (p Percentage) IsNaN() bool      { return math.IsNaN(p.base) }
func (p Percentage) IsInf() bool      { return math.IsInf(p.base, 0) }

func (p Percentage) Abs() Percentage { return Percentage{base: math.Abs(p.base)} }
func (p Percentage) Neg() Percentage { return Percentage{base: -p.base} }

func (p Percentage) Equal(o Percentage) bool { return p.base == o.base }
func (p Percentage) LT(o Percentage) bool    { return p.base < o.base }
func (p Percentage) LTE(o Percentage) bool   { return p.base <= o.base }
func (p Percentage) GT(o Percentage) bool    { return p.base > o.base }
func (p Percentage) GTE(o Percentage) bool   { return p.base >= o.base }

// IsClose reports whether p and o agree within the larger of the
// relative and absolute tolerances.
func (p Percentage) IsClose(o Percentage, relTol, absTol float64) bool {
	return isClose(p.base, o.base, relTol, absTol)
}

// Round returns the percentage with the stored fraction rounded to
// the given number of decimals, half to even.
func (p Percentage) Round(decimals int) Percentage {
	return Percentage{base: roundTo(p.base, decimals)}
}

func (p Percentage) Add(o Percentage) Percentage { return Percentage{base: p.base + o.base} }
func (p Percentage) Sub(o Percentage) Percentage { return Percentage{base: p.base - o.base} }
func (p Percentage) Mul(f float64) Percentage    { return Percentage{base: p.base * f} }
func (p Percentage) Div(f float64) Percentage    { return Percentage{base: p.base / f} }

// MulPower returns the given share of pw, so Percent(50) of 200 W is
// 100 W.
func (p Percentage) MulPower(pw Power) Power {
	return Power{base: p.base * pw.base}
}

// String renders percent points at DefaultPrecision, e.g. "12.3 %".
func (p Percentage) String() string { return formatQuantity(p.base, percentUnit, DefaultPrecision) }

// Text renders percent points with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (p Percentage) Text(prec int) string { return formatQuantity(p.base, percentUnit, prec) }
