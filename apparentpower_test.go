package quantities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquant/quantities"
)

func TestApparentPowerConstructors(t *testing.T) {
	tests := []struct {
		got         quantities.ApparentPower
		voltAmperes float64
	}{
		{quantities.VoltAmperes(5), 5},
		{quantities.KilovoltAmperes(1.5), 1500},
		{quantities.MegavoltAmperes(3), 3e6},
		{quantities.NewApparentPower(2, quantities.Kilo), 2000},
	}

	for idx, test := range tests {
		assert.Equal(t, test.voltAmperes, test.got.VoltAmperes(), "idx:%v", idx)
	}
}

func TestApparentPowerAccessors(t *testing.T) {
	a := quantities.KilovoltAmperes(1.5)

	assert.Equal(t, 1500.0, a.VoltAmperes())
	assert.Equal(t, 1.5, a.KilovoltAmperes())
	assert.Equal(t, 0.0015, a.MegavoltAmperes())
	assert.Equal(t, 1500.0, a.BaseValue())
}

func TestApparentPowerArithmetic(t *testing.T) {
	a := quantities.VoltAmperes(100)
	b := quantities.VoltAmperes(50)

	assert.Equal(t, quantities.VoltAmperes(150), a.Add(b))
	assert.Equal(t, quantities.VoltAmperes(50), a.Sub(b))
	assert.Equal(t, quantities.VoltAmperes(100), b.Mul(2))
	assert.Equal(t, quantities.VoltAmperes(25), b.Div(2))
	assert.True(t, a.Add(b).Sub(b).Equal(a))
	assert.True(t, b.LT(a))
}

func TestApparentPowerFormat(t *testing.T) {
	tests := []struct {
		a    quantities.ApparentPower
		text string
	}{
		{quantities.VoltAmperes(0), "0 VA"},
		{quantities.VoltAmperes(999), "999 VA"},
		{quantities.KilovoltAmperes(1.5), "1.5 kVA"},
		{quantities.MegavoltAmperes(3), "3 MVA"},
	}

	for _, test := range tests {
		assert.Equal(t, test.text, test.a.String(), test.text)
	}
}

func TestApparentPowerParse(t *testing.T) {
	tests := []struct {
		text string
		want quantities.ApparentPower
		ok   bool
	}{
		{"5 VA", quantities.VoltAmperes(5), true},
		{"1.5 kVA", quantities.KilovoltAmperes(1.5), true},
		{"3 MVA", quantities.MegavoltAmperes(3), true},

		// reactive power is a different unit entirely
		{"5 VAr", quantities.ApparentPower{}, false},
		{"5 kVAr", quantities.ApparentPower{}, false},
		{"5 W", quantities.ApparentPower{}, false},
		{"", quantities.ApparentPower{}, false},
	}

	for _, test := range tests {
		a, err := quantities.ParseApparentPower(test.text)
		if !test.ok {
			assert.Error(t, err, test.text)
			continue
		}
		if !assert.NoError(t, err, test.text) {
			continue
		}
		assert.Equal(t, test.want, a, test.text)
	}
}

func TestApparentPowerTextRoundTrip(t *testing.T) {
	tests := []quantities.ApparentPower{
		quantities.VoltAmperes(0),
		quantities.VoltAmperes(999),
		quantities.KilovoltAmperes(1.5),
		quantities.MegavoltAmperes(3),
	}

	for _, want := range tests {
		text := want.Text(-1)
		got, err := quantities.ParseApparentPower(text)
		require.NoError(t, err, text)
		assert.True(t, want.Equal(got), text)
	}
}
