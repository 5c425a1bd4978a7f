package quantities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquant/quantities"
)

func TestVoltageConstructors(t *testing.T) {
	tests := []struct {
		got   quantities.Voltage
		volts float64
	}{
		{quantities.Volts(230), 230},
		{quantities.Millivolts(250), 0.25},
		{quantities.Kilovolts(10.5), 10500},
		{quantities.NewVoltage(11, quantities.Kilo), 11000},
	}

	for idx, test := range tests {
		assert.Equal(t, test.volts, test.got.Volts(), "idx:%v", idx)
	}
}

func TestVoltageAccessors(t *testing.T) {
	v := quantities.Kilovolts(10.5)

	assert.Equal(t, 10500.0, v.Volts())
	assert.Equal(t, 10.5, v.Kilovolts())
	assert.Equal(t, 10500.0, v.BaseValue())
	assert.Equal(t, 10.5, v.In(quantities.Kilo))
}

func TestVoltageMulCurrent(t *testing.T) {
	p := quantities.Volts(230).MulCurrent(quantities.Amperes(10))
	assert.Equal(t, quantities.Watts(2300), p)
}

func TestVoltageArithmetic(t *testing.T) {
	a := quantities.Volts(230)
	b := quantities.Volts(10)

	assert.Equal(t, quantities.Volts(240), a.Add(b))
	assert.Equal(t, quantities.Volts(220), a.Sub(b))
	assert.Equal(t, quantities.Volts(460), a.Mul(2))
	assert.Equal(t, quantities.Volts(115), a.Div(2))
	assert.True(t, a.Add(b).Sub(b).Equal(a))
	assert.True(t, b.LT(a))
	assert.True(t, a.GTE(b))
}

func TestVoltageFormat(t *testing.T) {
	tests := []struct {
		v    quantities.Voltage
		text string
	}{
		{quantities.Volts(0), "0 V"},
		{quantities.Volts(230), "230 V"},
		{quantities.Kilovolts(10.5), "10.5 kV"},
		{quantities.Millivolts(250), "250 mV"},
	}

	for _, test := range tests {
		assert.Equal(t, test.text, test.v.String(), test.text)
	}
}

func TestVoltageParse(t *testing.T) {
	tests := []struct {
		text string
		want quantities.Voltage
		ok   bool
	}{
		{"230 V", quantities.Volts(230), true},
		{"10.5 kV", quantities.Kilovolts(10.5), true},
		{"250 mV", quantities.Millivolts(250), true},

		{"230 W", quantities.Voltage{}, false},
		{"5 VA", quantities.Voltage{}, false},
		{"", quantities.Voltage{}, false},
	}

	for _, test := range tests {
		v, err := quantities.ParseVoltage(test.text)
		if !test.ok {
			assert.Error(t, err, test.text)
			continue
		}
		if !assert.NoError(t, err, test.text) {
			continue
		}
		assert.Equal(t, test.want, v, test.text)
	}
}

func TestVoltageTextRoundTrip(t *testing.T) {
	tests := []quantities.Voltage{
		quantities.Volts(0),
		quantities.Volts(230),
		quantities.Volts(-0.5),
		quantities.Kilovolts(10.5),
		quantities.Millivolts(250),
	}

	for _, want := range tests {
		text := want.Text(-1)
		got, err := quantities.ParseVoltage(text)
		require.NoError(t, err, text)
		assert.True(t, want.Equal(got), text)
	}
}
