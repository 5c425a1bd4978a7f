package quantities

import "math"

// ReactivePower is reactive power, stored in volt-amperes reactive.
type ReactivePower struct {
	base float64
}

// VoltAmperesReactive returns a ReactivePower of v volt-amperes reactive.
func VoltAmperesReactive(v float64) ReactivePower { return ReactivePower{base: v} }

// KilovoltAmperesReactive returns a ReactivePower of v kilovolt-amperes
// reactive.
func KilovoltAmperesReactive(v float64) ReactivePower {
	return ReactivePower{base: toBase(v, Kilo)}
}

// MegavoltAmperesReactive returns a ReactivePower of v megavolt-amperes
// reactive.
func MegavoltAmperesReactive(v float64) ReactivePower {
	return ReactivePower{base: toBase(v, Mega)}
}

// NewReactivePower returns a ReactivePower of v volt-amperes reactive
// scaled by the given prefix.
func NewReactivePower(v float64, pfx Prefix) ReactivePower {
	return ReactivePower{base: toBase(v, pfx)}
}

// ParseReactivePower parses text like "5 kVAr".
func ParseReactivePower(s string) (ReactivePower, error) {
	v, err := parseQuantity(s, varUnit)
	if err != nil {
		return ReactivePower{}, err
	}
	return ReactivePower{base: v}, nil
}

// VoltAmperesReactive returns the reactive power in volt-amperes reactive.
func (r ReactivePower) VoltAmperesReactive() float64 { return r.base }

// KilovoltAmperesReactive returns the reactive power in kilovolt-amperes
// reactive.
func (r ReactivePower) KilovoltAmperesReactive() float64 { return fromBase(r.base, Kilo) }

// MegavoltAmperesReactive returns the reactive power in megavolt-amperes
// reactive.
func (r ReactivePower) MegavoltAmperesReactive() float64 { return fromBase(r.base, Mega) }

// In returns the reactive power at the given prefix.
func (r ReactivePower) In(pfx Prefix) float64 { return fromBase(r.base, pfx) }

// BaseValue returns the stored base magnitude in volt-amperes reactive.
func (r ReactivePower) BaseValue() float64 { return r.base }

func (r ReactivePower) IsZero() bool     { return r.base == 0 }
func (r ReactivePower) IsNegative() bool { return r.base < 0 }
func (r ReactivePower) IsNaN() bool      { return math.IsNaN(r.base) }
func (r ReactivePower) IsInf() bool      { return math.IsInf(r.base, 0) }

func (r ReactivePower) Abs() ReactivePower { return ReactivePower{base: math.Abs(r.base)} }
func (r ReactivePower) Neg() ReactivePower { return ReactivePower{base: -r.base} }

func (r ReactivePower) Equal(o ReactivePower) bool { return r.base == o.base }
func (r ReactivePower) LT(o ReactivePower) bool    { return r.base < o.base }
func (r ReactivePower) LTE(o ReactivePower) bool   { return r.base <= o.base }
func (r ReactivePower) GT(o ReactivePower) bool    { return r.base > o.base }
func (r ReactivePower) GTE(o ReactivePower) bool   { return r.base >= o.base }

// IsClose reports whether r and o agree within the larger of the
// relative and absolute tolerances.
func (r ReactivePower) IsClose(o ReactivePower, relTol, absTol float64) bool {
	return isClose(r.base, o.base, relTol, absTol)
}

// Round returns the reactive power with the volt-ampere-reactive
// magnitude rounded to the given number of decimals, half to even.
func (r ReactivePower) Round(decimals int) ReactivePower {
	return ReactivePower{base: roundTo(r.base, decimals)}
}

func (r ReactivePower) Add(o ReactivePower) ReactivePower { return ReactivePower{base: r.base + o.base} }
func (r ReactivePower) Sub(o ReactivePower) ReactivePower { return ReactivePower{base: r.base - o.base} }
func (r ReactivePower) Mul(f float64) ReactivePower       { return ReactivePower{base: r.base * f} }
func (r ReactivePower) Div(f float64) ReactivePower       { return ReactivePower{base: r.base / f} }

// String renders the canonical form at DefaultPrecision, e.g. "5 kVAr".
func (r ReactivePower) String() string { return formatQuantity(r.base, varUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (r ReactivePower) Text(prec int) string { return formatQuantity(r.base, varUnit, prec) }
