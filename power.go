package quantities

import (
	"math"
	"time"
)

// Power is active power, stored in watts.
type Power struct {
	base float64
}

// Milliwatts returns a Power of v milliwatts.
func Milliwatts(v float64) Power { return Power{base: toBase(v, Milli)} }

// Watts returns a Power of v watts.
func Watts(v float64) Power { return Power{base: v} }

// Kilowatts returns a Power of v kilowatts.
func Kilowatts(v float64) Power { return Power{base: toBase(v, Kilo)} }

// Megawatts returns a Power of v megawatts.
func Megawatts(v float64) Power { return Power{base: toBase(v, Mega)} }

// NewPower returns a Power of v watts scaled by the given prefix, so
// NewPower(5, Kilo) equals Kilowatts(5).
func NewPower(v float64, pfx Prefix) Power { return Power{base: toBase(v, pfx)} }

// ParsePower parses text like "5 kW" or "-0.3 W".
func ParsePower(s string) (Power, error) {
	v, err := parseQuantity(s, wattUnit)
	if err != nil {
		return Power{}, err
	}
	return Power{base: v}, nil
}

// Milliwatts returns the power in milliwatts.
func (p Power) Milliwatts() float64 { return fromBase(p.base, Milli) }

// Watts returns the power in watts.
func (p Power) Watts() float64 { return p.base }

// Kilowatts returns the power in kilowatts.
func (p Power) Kilowatts() float64 { return fromBase(p.base, Kilo) }

// Megawatts returns the power in megawatts.
func (p Power) Megawatts() float64 { return fromBase(p.base, Mega) }

// In returns the power at the given prefix, so In(Kilo) is kilowatts.
func (p Power) In(pfx Prefix) float64 { return fromBase(p.base, pfx) }

// BaseValue returns the stored base magnitude in watts.
func (p Power) BaseValue() float64 { return p.base }

// IsZero reports whether the power is exactly zero watts.
func (p Power) IsZero() bool { return p.base == 0 }

// IsNegative reports whether the power is below zero.
func (p Power) IsNegative() bool { return p.base < 0 }

// IsNaN reports whether the magnitude is not a number.
func (p Power) IsNaN() bool { return math.IsNaN(p.base) }

// IsInf reports whether the magnitude is infinite.
func (p Power) IsInf() bool { return math.IsInf(p.base, 0) }

// Abs returns the power with a non-negative magnitude.
func (p Power) Abs() Power { return Power{base: math.Abs(p.base)} }

// Neg returns the power with the sign flipped.
func (p Power) Neg() Power { return Power{base: -p.base} }

// Equal reports exact base-magnitude equality.
func (p Power) Equal(o Power) bool { return p.base == o.base }

// LT reports whether p is strictly less than o.
func (p Power) LT(o Power) bool { return p.base < o.base }

// LTE reports whether p is less than or equal to o.
func (p Power) LTE(o Power) bool { return p.base <= o.base }

// GT reports whether p is strictly greater than o.
func (p Power) GT(o Power) bool { return p.base > o.base }

// GTE reports whether p is greater than or equal to o.
func (p Power) GTE(o Power) bool { return p.base >= o.base }

// IsClose reports whether p and o agree within the larger of the
// relative and absolute tolerances.
func (p Power) IsClose(o Power, relTol, absTol float64) bool {
	return isClose(p.base, o.base, relTol, absTol)
}

// Round returns the power with the watt magnitude rounded to the
// given number of decimals, half to even.
func (p Power) Round(decimals int) Power { return Power{base: roundTo(p.base, decimals)} }

// Add returns p + o.
func (p Power) Add(o Power) Power { return Power{base: p.base + o.base} }

// Sub returns p - o.
func (p Power) Sub(o Power) Power { return Power{base: p.base - o.base} }

// Mul scales the power by a dimensionless factor.
func (p Power) Mul(f float64) Power { return Power{base: p.base * f} }

// Div divides the power by a dimensionless factor. Division follows
// IEEE semantics; a zero factor yields an infinite magnitude.
func (p Power) Div(f float64) Power { return Power{base: p.base / f} }

// MulDuration returns the energy accumulated at this power over d.
func (p Power) MulDuration(d time.Duration) Energy {
	return Energy{base: p.base * d.Hours()}
}

// MulPercentage returns the given share of the power.
func (p Power) MulPercentage(pct Percentage) Power {
	return Power{base: p.base * pct.base}
}

// DivVoltage returns the current flowing at this power and the given
// voltage. Fails with ErrDivisionByZero when v is exactly zero volts.
func (p Power) DivVoltage(v Voltage) (Current, error) {
	if v.base == 0 {
		return Current{}, ErrDivisionByZero
	}
	return Current{base: p.base / v.base}, nil
}

// DivCurrent returns the voltage across a load drawing this power at
// the given current. Fails with ErrDivisionByZero when i is exactly
// zero amperes.
func (p Power) DivCurrent(i Current) (Voltage, error) {
	if i.base == 0 {
		return Voltage{}, ErrDivisionByZero
	}
	return Voltage{base: p.base / i.base}, nil
}

// DivPower returns p as a share of o. Fails with ErrDivisionByZero
// when o is exactly zero watts.
func (p Power) DivPower(o Power) (Percentage, error) {
	if o.base == 0 {
		return Percentage{}, ErrDivisionByZero
	}
	return Percentage{base: p.base / o.base}, nil
}

// String renders the canonical form at DefaultPrecision, e.g. "5.2 kW".
func (p Power) String() string { return formatQuantity(p.base, wattUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (p Power) Text(prec int) string { return formatQuantity(p.base, wattUnit, prec) }
