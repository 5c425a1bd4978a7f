package quantities

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DefaultPrecision is the number of fraction digits String renders
// before trimming trailing zeros.
const DefaultPrecision = 3

// unit describes one quantity kind to the shared format/parse engine.
type unit struct {
	// symbol is the base unit symbol, e.g. "W".
	symbol string
	// scales is the ascending set of prefixes the kind displays with.
	scales []Prefix
	// display is applied to base magnitudes before rendering and
	// inverted while parsing. Percentage stores a fraction but shows
	// percent points, so it uses 100; every other kind uses 1.
	display float64
}

var (
	wattUnit     = unit{symbol: "W", scales: stdScales, display: 1}
	vaUnit       = unit{symbol: "VA", scales: stdScales, display: 1}
	varUnit      = unit{symbol: "VAr", scales: stdScales, display: 1}
	ampereUnit   = unit{symbol: "A", scales: stdScales, display: 1}
	voltUnit     = unit{symbol: "V", scales: stdScales, display: 1}
	wattHourUnit = unit{symbol: "Wh", scales: stdScales, display: 1}
	hertzUnit    = unit{symbol: "Hz", scales: stdScales, display: 1}
	percentUnit  = unit{symbol: "%", scales: baseOnly, display: 100}
	celsiusUnit  = unit{symbol: "°C", scales: baseOnly, display: 1}
)

func toBase(v float64, p Prefix) float64 {
	return v * p.Factor()
}

func fromBase(v float64, p Prefix) float64 {
	return v / p.Factor()
}

// formatQuantity renders a base magnitude as "<value> <prefix><symbol>".
// prec fixes the number of fraction digits, with trailing zeros trimmed;
// prec < 0 uses the shortest representation that round trips exactly.
// Non-finite magnitudes render with the bare base symbol.
func formatQuantity(v float64, u unit, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64) + " " + u.symbol
	}
	v *= u.display
	p := displayScale(v, u.scales)
	s := strconv.FormatFloat(fromBase(v, p), 'f', prec, 64)
	// Rounding at prec can carry the mantissa to four integer digits,
	// 999.9995 W printing as "1000.000 W". Reselect the scale once.
	if q, ok := nextScale(p, u.scales); ok && pastWindow(s) {
		p = q
		s = strconv.FormatFloat(fromBase(v, p), 'f', prec, 64)
	}
	if prec > 0 && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s + " " + p.Symbol() + u.symbol
}

// pastWindow reports whether a rendered mantissa reached four integer
// digits, the point where the next prefix takes over.
func pastWindow(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return len(s) > 3
}

// parseQuantity parses "<value> <prefix><symbol>" back into a base
// magnitude. The unit symbol is required; the prefix is optional and
// must belong to the kind's scale set; whitespace around and between
// the tokens is ignored.
func parseQuantity(s string, u unit) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, newParseError(s, u.symbol, errors.New("empty input"))
	}
	if !strings.HasSuffix(t, u.symbol) {
		return 0, newParseError(s, u.symbol, errors.Errorf("missing %q unit suffix", u.symbol))
	}
	t = strings.TrimSpace(strings.TrimSuffix(t, u.symbol))
	if t == "" {
		return 0, newParseError(s, u.symbol, errors.New("missing value"))
	}
	// Prefixless fast path. ParseFloat also accepts scientific
	// notation and the NaN/Inf spellings, none of which carry a prefix.
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return v / u.display, nil
	}
	r, size := utf8.DecodeLastRuneInString(t)
	if !unicode.IsLetter(r) {
		return 0, newParseError(s, u.symbol, errors.Errorf("invalid value %q", t))
	}
	p, err := ParsePrefix(string(r))
	if err != nil {
		return 0, newParseError(s, u.symbol, err)
	}
	if !containsPrefix(u.scales, p) {
		return 0, newParseError(s, u.symbol, errors.Errorf("prefix %q not valid for %q", string(r), u.symbol))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(t[:len(t)-size]), 64)
	if err != nil {
		return 0, newParseError(s, u.symbol, errors.Errorf("invalid value %q", t))
	}
	return toBase(v, p) / u.display, nil
}

func containsPrefix(scales []Prefix, p Prefix) bool {
	for _, q := range scales {
		if q == p {
			return true
		}
	}
	return false
}

// roundTo rounds to the given number of fraction digits, half to even.
// Negative decimals round to tens, hundreds and so on. Values too large
// to scale carry no fraction digits at that precision and pass through
// unchanged; a scale factor that underflows rounds everything to zero.
func roundTo(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f := math.Pow10(decimals)
	if f == 0 {
		return math.Copysign(0, v)
	}
	scaled := v * f
	if math.IsInf(f, 0) || math.IsInf(scaled, 0) {
		return v
	}
	return math.RoundToEven(scaled) / f
}

// isClose reports whether a and b agree within the larger of the
// relative and absolute tolerances. Equal values, including equal
// infinities, are always close; NaN never is.
func isClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

// asDuration converts a nanosecond count to time.Duration ticks.
// float64(math.MaxInt64) rounds up to 2^63, one past the largest tick,
// so the upper comparison is inclusive while the lower is strict.
func asDuration(ns float64) (time.Duration, error) {
	if math.IsNaN(ns) || ns >= float64(math.MaxInt64) || ns < float64(math.MinInt64) {
		return 0, ErrDurationOutOfRange
	}
	return time.Duration(ns), nil
}
