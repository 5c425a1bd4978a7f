package quantities

import (
	"math"

	"github.com/pkg/errors"
)

// Prefix is a metric prefix expressed as a decimal exponent,
// so Kilo is 3 and Milli is -3. The zero value is the bare unit.
type Prefix int

const (
	Nano  Prefix = -9
	Micro Prefix = -6
	Milli Prefix = -3
	None  Prefix = 0
	Kilo  Prefix = 3
	Mega  Prefix = 6
	Giga  Prefix = 9
)

// prefixSymbols maps prefixes to their SI symbols, ascending by exponent.
var prefixSymbols = []struct {
	prefix Prefix
	symbol string
}{
	{Nano, "n"},
	{Micro, "µ"},
	{Milli, "m"},
	{None, ""},
	{Kilo, "k"},
	{Mega, "M"},
	{Giga, "G"},
}

// Symbol returns the SI symbol for the prefix, or "" for None and
// for exponents outside the supported table.
func (p Prefix) Symbol() string {
	for _, e := range prefixSymbols {
		if e.prefix == p {
			return e.symbol
		}
	}
	return ""
}

// Factor returns the multiplier the prefix denotes, e.g. 1000 for Kilo.
func (p Prefix) Factor() float64 {
	return math.Pow10(int(p))
}

// ParsePrefix resolves a prefix symbol. The ASCII alias "u" is
// accepted for Micro.
func ParsePrefix(s string) (Prefix, error) {
	if s == "u" {
		return Micro, nil
	}
	for _, e := range prefixSymbols {
		if e.symbol == s {
			return e.prefix, nil
		}
	}
	return None, errors.Errorf("unknown metric prefix %q", s)
}

// stdScales is the prefix ladder used by the electrical kinds.
var stdScales = []Prefix{Nano, Micro, Milli, None, Kilo, Mega, Giga}

// baseOnly is used by kinds that never scale, such as Percentage.
var baseOnly = []Prefix{None}

// displayScale picks the largest prefix from scales whose factor does
// not exceed the magnitude, so 999 stays bare while 1000 moves to
// Kilo. Zero and non-finite magnitudes stay bare; magnitudes below
// the smallest factor clamp to the smallest prefix.
func displayScale(mag float64, scales []Prefix) Prefix {
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return None
	}
	mag = math.Abs(mag)
	for i := len(scales) - 1; i >= 0; i-- {
		if mag >= scales[i].Factor() {
			return scales[i]
		}
	}
	return scales[0]
}

// nextScale returns the scale one step above p, when the set has one.
func nextScale(p Prefix, scales []Prefix) (Prefix, bool) {
	for i, q := range scales {
		if q == p && i+1 < len(scales) {
			return scales[i+1], true
		}
	}
	return p, false
}
