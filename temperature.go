package quantities

import "math"

// Temperature is stored in degrees Celsius. It has no metric prefix
// scales and takes part only in same-kind arithmetic.
type Temperature struct {
	base float64
}

// Celsius returns a Temperature of v degrees Celsius.
func Celsius(v float64) Temperature { return Temperature{base: v} }

// Fahrenheit returns a Temperature of v degrees Fahrenheit.
func Fahrenheit(v float64) Temperature { return Temperature{base: (v - 32) * 5 / 9} }

// NewTemperature returns a Temperature of v degrees Celsius scaled by
// the given prefix.
func NewTemperature(v float64, pfx Prefix) Temperature {
	return Temperature{base: toBase(v, pfx)}
}

// ParseTemperature parses text like "21.5 °C".
func ParseTemperature(s string) (Temperature, error) {
	v, err := parseQuantity(s, celsiusUnit)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{base: v}, nil
}

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return t.base }

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 { return t.base*9/5 + 32 }

// In returns the Celsius magnitude at the given prefix.
func (t Temperature) In(pfx Prefix) float64 { return fromBase(t.base, pfx) }

// BaseValue returns the stored base magnitude in degrees Celsius.
func (t Temperature) BaseValue() float64 { return t.base }

func (t Temperature) IsZero() bool     { return t.base == 0 }
func (t Temperature) IsNegative() bool { return t.base < 0 }
func (t Temperature) IsNaN() bool      { return math.IsNaN(t.base) }
func (t Temperature) IsInf() bool      { return math.IsInf(t.base, 0) }

func (t Temperature) Abs() Temperature { return Temperature{base: math.Abs(t.base)} }
func (t Temperature) Neg() Temperature { return Temperature{base: -t.base} }

func (t Temperature) Equal(o Temperature) bool { return t.base == o.base }
func (t Temperature) LT(o Temperature) bool    { return t.base < o.base }
func (t Temperature) LTE(o Temperature) bool   { return t.base <= o.base }
func (t Temperature) GT(o Temperature) bool    { return t.base > o.base }
func (t Temperature) GTE(o Temperature) bool   { return t.base >= o.base }

// IsClose reports whether t and o agree within the larger of the
// relative and absolute tolerances.
func (t Temperature) IsClose(o Temperature, relTol, absTol float64) bool {
	return isClose(t.base, o.base, relTol, absTol)
}

// Round returns the temperature with the Celsius magnitude rounded to
// the given number of decimals, half to even.
func (t Temperature) Round(decimals int) Temperature {
	return Temperature{base: roundTo(t.base, decimals)}
}

func (t Temperature) Add(o Temperature) Temperature { return Temperature{base: t.base + o.base} }
func (t Temperature) Sub(o Temperature) Temperature { return Temperature{base: t.base - o.base} }
func (t Temperature) Mul(f float64) Temperature     { return Temperature{base: t.base * f} }
func (t Temperature) Div(f float64) Temperature     { return Temperature{base: t.base / f} }

// String renders the canonical form at DefaultPrecision, e.g. "21.5 °C".
func (t Temperature) String() string { return formatQuantity(t.base, celsiusUnit, DefaultPrecision) }

// Text renders the canonical form with prec fraction digits; prec < 0
// selects the shortest representation that parses back exactly.
func (t Temperature) Text(prec int) string { return formatQuantity(t.base, celsiusUnit, prec) }
