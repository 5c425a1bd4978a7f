package quantities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquant/quantities"
)

func TestPercentageConstructors(t *testing.T) {
	tests := []struct {
		got      quantities.Percentage
		fraction float64
	}{
		{quantities.Percent(50), 0.5},
		{quantities.Percent(100), 1},
		{quantities.Percent(0), 0},
		{quantities.Fraction(0.25), 0.25},
		{quantities.Fraction(1), 1},
		// the prefixed constructor scales the fraction form
		{quantities.NewPercentage(0.125, quantities.None), 0.125},
		{quantities.NewPercentage(500, quantities.Milli), 0.5},
		{quantities.NewPercentage(5, quantities.Kilo), 5000},
	}

	for idx, test := range tests {
		assert.Equal(t, test.fraction, test.got.Fraction(), "idx:%v", idx)
	}
}

func TestPercentageAccessors(t *testing.T) {
	p := quantities.Percent(12.5)

	assert.Equal(t, 12.5, p.Percent())
	assert.Equal(t, 0.125, p.Fraction())
	assert.Equal(t, 0.125, p.BaseValue())

	assert.Equal(t, 50.0, quantities.Fraction(0.5).Percent())
}

func TestPercentageWithin(t *testing.T) {
	tests := []struct {
		val, lo, hi float64 // percent points
		within      bool
	}{
		{50, 0, 100, true},
		{0, 0, 100, true},
		{100, 0, 100, true},
		{101, 0, 100, false},
		{-1, 0, 100, false},
		{25, 30, 60, false},
	}

	for _, test := range tests {
		got := quantities.Percent(test.val).Within(quantities.Percent(test.lo), quantities.Percent(test.hi))
		assert.Equal(t, test.within, got, "val:%v lo:%v hi:%v", test.val, test.lo, test.hi)
	}
}

func TestPercentageMulPower(t *testing.T) {
	got := quantities.Percent(50).MulPower(quantities.Watts(200))
	assert.Equal(t, quantities.Watts(100), got)

	// both orders of the same table row agree
	assert.Equal(t, quantities.Watts(200).MulPercentage(quantities.Percent(50)), got)
}

func TestPercentageArithmetic(t *testing.T) {
	a := quantities.Percent(60)
	b := quantities.Percent(25)

	assert.Equal(t, quantities.Percent(85), a.Add(b))
	assert.Equal(t, quantities.Percent(35), a.Sub(b))
	assert.Equal(t, quantities.Percent(50), b.Mul(2))
	assert.Equal(t, quantities.Percent(12.5), b.Div(2))
	assert.True(t, b.LT(a))
}

func TestPercentageFormat(t *testing.T) {
	tests := []struct {
		p    quantities.Percentage
		text string
	}{
		{quantities.Percent(0), "0 %"},
		{quantities.Percent(50), "50 %"},
		{quantities.Percent(12.3), "12.3 %"},
		{quantities.Percent(-10), "-10 %"},
		{quantities.Fraction(1), "100 %"},
		// never scales to a metric prefix
		{quantities.Percent(12500), "12500 %"},
	}

	for _, test := range tests {
		assert.Equal(t, test.text, test.p.String(), test.text)
	}
}

func TestPercentageParse(t *testing.T) {
	tests := []struct {
		text string
		want quantities.Percentage
		ok   bool
	}{
		{"50 %", quantities.Percent(50), true},
		{"12.3 %", quantities.Percent(12.3), true},
		{"-10 %", quantities.Percent(-10), true},
		{"0 %", quantities.Percent(0), true},

		{"5 k%", quantities.Percentage{}, false},
		{"50", quantities.Percentage{}, false},
		{"", quantities.Percentage{}, false},
	}

	for _, test := range tests {
		p, err := quantities.ParsePercentage(test.text)
		if !test.ok {
			assert.Error(t, err, test.text)
			continue
		}
		if !assert.NoError(t, err, test.text) {
			continue
		}
		assert.Equal(t, test.want, p, test.text)
	}
}

func TestPercentageTextRoundTrip(t *testing.T) {
	tests := []quantities.Percentage{
		quantities.Percent(0),
		quantities.Percent(50),
		quantities.Percent(12.5),
		quantities.Percent(-10),
		quantities.Fraction(0.25),
	}

	for _, want := range tests {
		text := want.Text(-1)
		got, err := quantities.ParsePercentage(text)
		require.NoError(t, err, text)
		assert.True(t, want.Equal(got), text)
	}
}
