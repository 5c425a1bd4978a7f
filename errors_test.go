package quantities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquant/quantities"
)

func TestParseErrorFields(t *testing.T) {
	tests := []string{
		"",
		"5",
		"5 kV",
		"5 qW",
		"1..2 kW",
	}

	for _, text := range tests {
		_, err := quantities.ParsePower(text)
		require.Error(t, err, text)

		var perr *quantities.ParseError
		require.ErrorAs(t, err, &perr, text)
		assert.Equal(t, text, perr.Input, text)
		assert.Equal(t, "W", perr.Symbol, text)
		assert.NotNil(t, errors.Unwrap(perr), text)
		assert.Contains(t, err.Error(), `"W"`, text)
	}
}

func TestParseErrorAcrossKinds(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		parse  func(string) error
	}{
		{"power", "W", func(s string) error { _, err := quantities.ParsePower(s); return err }},
		{"apparent power", "VA", func(s string) error { _, err := quantities.ParseApparentPower(s); return err }},
		{"reactive power", "VAr", func(s string) error { _, err := quantities.ParseReactivePower(s); return err }},
		{"current", "A", func(s string) error { _, err := quantities.ParseCurrent(s); return err }},
		{"voltage", "V", func(s string) error { _, err := quantities.ParseVoltage(s); return err }},
		{"energy", "Wh", func(s string) error { _, err := quantities.ParseEnergy(s); return err }},
		{"frequency", "Hz", func(s string) error { _, err := quantities.ParseFrequency(s); return err }},
		{"percentage", "%", func(s string) error { _, err := quantities.ParsePercentage(s); return err }},
		{"temperature", "°C", func(s string) error { _, err := quantities.ParseTemperature(s); return err }},
	}

	for _, test := range tests {
		err := test.parse("not a quantity")
		require.Error(t, err, test.name)

		var perr *quantities.ParseError
		require.ErrorAs(t, err, &perr, test.name)
		assert.Equal(t, test.symbol, perr.Symbol, test.name)
		assert.Equal(t, "not a quantity", perr.Input, test.name)
	}
}

func TestErrDivisionByZeroIdentity(t *testing.T) {
	_, err := quantities.Watts(5).DivCurrent(quantities.Amperes(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, quantities.ErrDivisionByZero)
	assert.Equal(t, quantities.ErrDivisionByZero, err)
}

func TestErrDurationOutOfRangeIdentity(t *testing.T) {
	_, err := quantities.MegawattHours(10).DivPower(quantities.Milliwatts(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, quantities.ErrDurationOutOfRange)
	assert.Equal(t, quantities.ErrDurationOutOfRange, err)

	_, err = quantities.Hertz(1e-11).Period()
	assert.ErrorIs(t, err, quantities.ErrDurationOutOfRange)
}
