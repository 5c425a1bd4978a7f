package quantities

import "math"

// Voltage is electric potential, stored in volts.
type Voltage struct {
	base float64
}

// Millivolts returns a Voltage of v millivolts.
func Millivolts(v float64) Voltage { return Voltage{base: toBase(v, Milli)} }

// Volts returns a Voltage of v volts.
func Volts(v float64) Voltage { return Voltage{base: v} }

// Kilovolts returns a Voltage of v kilovolts.
func Kilovolts(v float64) Voltage { return Voltage{base: toBase(v, Kilo)} }

// NewVoltage returns a Voltage of v volts scaled by the given prefix.
func NewVoltage(v float64, pfx Prefix) Voltage { return Voltage{base: toBase(v, pfx)} }

// ParseVoltage parses text like "230 V" or "10.5 kV".
func ParseVoltage(s string) (Voltage, error) {
	v, err := parseQuantity(s, voltUnit)
	if err != nil {
		return Voltage{}, err
	}
	return Voltage{base: v}, nil
}

// Millivolts returns the voltage in millivolts.
func (v Voltage) Millivolts() float64 { return fromBase(v.base, Milli) }

// Volts returns the voltage in volts.
func (v Voltage) Volts() float64 { return v.base }

// Kilovolts returns the voltage in kilovolts.
func (v Voltage) Kilovolts() float64 { return fromBase(v.base, Kilo) }

// In returns the voltage at the given prefix.
func (v Voltage) In(pfx Prefix) float64 { return fromBase(v.base, pfx) }

// BaseValue returns the stored base magnitude in volts.
func (v Voltage) BaseValue() float64 { return v.base }

func (v Voltage) IsZero() bool     { return v.base == 0 }
func (v Voltage) IsNegative() bool { return v.base < 0 }
func (v Voltage) IsNaN() bool      { return math.IsNaN(v.base) }
func (v Voltage) IsInf() bool      { return math.IsInf(v.base, 0) }

func (v Voltage) Abs() Voltage { return Voltage{base: math.Abs(v.base)} }
func (v Voltage) Neg() Voltage { return Voltage{base: -v.base} }

func (v Voltage) Equal(o Voltage) bool { return v.base == o.base }
func (v Voltage) LT(o Voltage) bool    { return v.base < o.base }
func (v Voltage) LTE(o Voltage) bool   { return v.base <= o.base }
func (v Voltage) GT(o Voltage) bool    { return v.base > o.base }
func (v Voltage) GTE(o Voltage) bool   { return v.base >= o.base }

// IsClose reports whether v and o agree within the larger of the
// relative and absolute tolerances.
func (v Voltage) IsClose(o Voltage, relTol, absTol float64) bool {
	return isClose(v.base, o.base, relTol, absTol)
}

// Round returns the voltage with the volt magnitude rounded to the
// given number of decimals, half to even.
func (v Voltage) Round(decimals int) Voltage { return Voltage{base: roundTo(v.base, decimals)} }

func (v Voltage) Add(o Voltage) Voltage { return Voltage{base: v.base + o.base} }
func (v Voltage) Sub(o Voltage) Voltage { return Voltage{base: v.base - o.base} }
func (v Voltage) Mul(f float64) Voltage { return Voltage{base: v.base * f} }
func (v Voltage) Div(f float64) Voltage { return Voltage{base: v.base / f} }

// MulCurrent returns the power delivered at this voltage and the
// given current.
func (v Voltage) MulCurrent(c Current) Power {
	return Power{base: v.base * c.base}
}

// String renders the canonical form at DefaultPrecision, e.g. "230 V".
func (v Voltage) String() string { return formatQuantity(v.base, voltUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (v Voltage) Text(prec int) string { return formatQuantity(v.base, voltUnit, prec) }
