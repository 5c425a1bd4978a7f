package quantities

import "math"

// ApparentPower is apparent power, stored in volt-amperes.
type ApparentPower struct {
	base float64
}

// VoltAmperes returns an ApparentPower of v volt-amperes.
func VoltAmperes(v float64) ApparentPower { return ApparentPower{base: v} }

// KilovoltAmperes returns an ApparentPower of v kilovolt-amperes.
func KilovoltAmperes(v float64) ApparentPower { return ApparentPower{base: toBase(v, Kilo)} }

// MegavoltAmperes returns an ApparentPower of v megavolt-amperes.
func MegavoltAmperes(v float64) ApparentPower { return ApparentPower{base: toBase(v, Mega)} }

// NewApparentPower returns an ApparentPower of v volt-amperes scaled
// by the given prefix.
func NewApparentPower(v float64, pfx Prefix) ApparentPower {
	return ApparentPower{base: toBase(v, pfx)}
}

// ParseApparentPower parses text like "5 kVA".
func ParseApparentPower(s string) (ApparentPower, error) {
	v, err := parseQuantity(s, vaUnit)
	if err != nil {
		return ApparentPower{}, err
	}
	return ApparentPower{base: v}, nil
}

// VoltAmperes returns the apparent power in volt-amperes.
func (a ApparentPower) VoltAmperes() float64 { return a.base }

// KilovoltAmperes returns the apparent power in kilovolt-amperes.
func (a ApparentPower) KilovoltAmperes() float64 { return fromBase(a.base, Kilo) }

// MegavoltAmperes returns the apparent power in megavolt-amperes.
func (a ApparentPower) MegavoltAmperes() float64 { return fromBase(a.base, Mega) }

// In returns the apparent power at the given prefix.
func (a ApparentPower) In(pfx Prefix) float64 { return fromBase(a.base, pfx) }

// BaseValue returns the stored base magnitude in volt-amperes.
func (a ApparentPower) BaseValue() float64 { return a.base }

func (a ApparentPower) IsZero() bool     { return a.base == 0 }
func (a ApparentPower) IsNegative() bool { return a.base < 0 }
func (a ApparentPower) IsNaN() bool      { return math.IsNaN(a.base) }
func (a ApparentPower) IsInf() bool      { return math.IsInf(a.base, 0) }

func (a ApparentPower) Abs() ApparentPower { return ApparentPower{base: math.Abs(a.base)} }
func (a ApparentPower) Neg() ApparentPower { return ApparentPower{base: -a.base} }

func (a ApparentPower) Equal(o ApparentPower) bool { return a.base == o.base }
func (a ApparentPower) LT(o ApparentPower) bool    { return a.base < o.base }
func (a ApparentPower) LTE(o ApparentPower) bool   { return a.base <= o.base }
func (a ApparentPower) GT(o ApparentPower) bool    { return a.base > o.base }
func (a ApparentPower) GTE(o ApparentPower) bool   { return a.base >= o.base }

// IsClose reports whether a and o agree within the larger of the
// relative and absolute tolerances.
func (a ApparentPower) IsClose(o ApparentPower, relTol, absTol float64) bool {
	return isClose(a.base, o.base, relTol, absTol)
}

// Round returns the apparent power with the volt-ampere magnitude
// rounded to the given number of decimals, half to even.
func (a ApparentPower) Round(decimals int) ApparentPower {
	return ApparentPower{base: roundTo(a.base, decimals)}
}

func (a ApparentPower) Add(o ApparentPower) ApparentPower { return ApparentPower{base: a.base + o.base} }
func (a ApparentPower) Sub(o ApparentPower) ApparentPower { return ApparentPower{base: a.base - o.base} }
func (a ApparentPower) Mul(f float64) ApparentPower       { return ApparentPower{base: a.base * f} }
func (a ApparentPower) Div(f float64) ApparentPower       { return ApparentPower{base: a.base / f} }

// String renders the canonical form at DefaultPrecision, e.g. "5 kVA".
func (a ApparentPower) String() string { return formatQuantity(a.base, vaUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (a ApparentPower) Text(prec int) string { return formatQuantity(a.base, vaUnit, prec) }
