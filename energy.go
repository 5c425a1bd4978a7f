package quantities

import (
	"math"
	"time"
)

// Energy is electrical energy, stored in watt-hours.
type Energy struct {
	base float64
}

// WattHours returns an Energy of v watt-hours.
func WattHours(v float64) Energy { return Energy{base: v} }

// KilowattHours returns an Energy of v kilowatt-hours.
func KilowattHours(v float64) Energy { return Energy{base: toBase(v, Kilo)} }

// MegawattHours returns an Energy of v megawatt-hours.
func MegawattHours(v float64) Energy { return Energy{base: toBase(v, Mega)} }

// NewEnergy returns an Energy of v watt-hours scaled by the given prefix.
func NewEnergy(v float64, pfx Prefix) Energy { return Energy{base: toBase(v, pfx)} }

// ParseEnergy parses text like "200 Wh" or "1.5 MWh".
func ParseEnergy(s string) (Energy, error) {
	v, err := parseQuantity(s, wattHourUnit)
	if err != nil {
		return Energy{}, err
	}
	return Energy{base: v}, nil
}

// WattHours returns the energy in watt-hours.
func (e Energy) WattHours() float64 { return e.base }

// KilowattHours returns the energy in kilowatt-hours.
func (e Energy) KilowattHours() float64 { return fromBase(e.base, Kilo) }

// MegawattHours returns the energy in megawatt-hours.
func (e Energy) MegawattHours() float64 { return fromBase(e.base, Mega) }

// In returns the energy at the given prefix.
func (e Energy) In(pfx Prefix) float64 { return fromBase(e.base, pfx) }

// BaseValue returns the stored base magnitude in watt-hours.
func (e Energy) BaseValue() float64 { return e.base }

func (e Energy) IsZero() bool     { return e.base == 0 }
func (e Energy) IsNegative() bool { return e.base < 0 }
func (e Energy) IsNaN() bool      { return math.IsNaN(e.base) }
func (e Energy) IsInf() bool      { return math.IsInf(e.base, 0) }

func (e Energy) Abs() Energy { return Energy{base: math.Abs(e.base)} }
func (e Energy) Neg() Energy { return Energy{base: -e.base} }

func (e Energy) Equal(o Energy) bool { return e.base == o.base }
func (e Energy) LT(o Energy) bool    { return e.base < o.base }
func (e Energy) LTE(o Energy) bool   { return e.base <= o.base }
func (e Energy) GT(o Energy) bool    { return e.base > o.base }
func (e Energy) GTE(o Energy) bool   { return e.base >= o.base }

// IsClose reports whether e and o agree within the larger of the
// relative and absolute tolerances.
func (e Energy) IsClose(o Energy, relTol, absTol float64) bool {
	return isClose(e.base, o.base, relTol, absTol)
}

// Round returns the energy with the watt-hour magnitude rounded to
// the given number of decimals, half to even.
func (e Energy) Round(decimals int) Energy { return Energy{base: roundTo(e.base, decimals)} }

func (e Energy) Add(o Energy) Energy  { return Energy{base: e.base + o.base} }
func (e Energy) Sub(o Energy) Energy  { return Energy{base: e.base - o.base} }
func (e Energy) Mul(f float64) Energy { return Energy{base: e.base * f} }
func (e Energy) Div(f float64) Energy { return Energy{base: e.base / f} }

// DivDuration returns the mean power that accumulates this energy
// over d. Fails with ErrDivisionByZero when d is zero.
func (e Energy) DivDuration(d time.Duration) (Power, error) {
	if d == 0 {
		return Power{}, ErrDivisionByZero
	}
	return Power{base: e.base / d.Hours()}, nil
}

// DivPower returns how long the given power takes to accumulate this
// energy, at nanosecond resolution. Fails with ErrDivisionByZero when
// p is exactly zero watts, and with ErrDurationOutOfRange when the
// span cannot be represented by a time.Duration.
func (e Energy) DivPower(p Power) (time.Duration, error) {
	if p.base == 0 {
		return 0, ErrDivisionByZero
	}
	return asDuration(e.base / p.base * float64(time.Hour))
}

// String renders the canonical form at DefaultPrecision, e.g. "1.5 MWh".
func (e Energy) String() string { return formatQuantity(e.base, wattHourUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (e Energy) Text(prec int) string { return formatQuantity(e.base, wattHourUnit, prec) }
