// Package quantities provides strongly typed physical quantities for
// electrical metering and power systems work.
//
// Each kind (Power, Current, Voltage, Energy, ApparentPower,
// ReactivePower, Frequency, Percentage, Temperature) is a distinct
// type holding a single float64 in the kind's base unit. Values of
// different kinds cannot be mixed by accident; the only cross-kind
// operations are the explicit physics derivations such as
// Voltage.MulCurrent or Energy.DivDuration.
//
// Construction goes through unit-named helpers:
//
//	p := quantities.Kilowatts(5)
//	v := quantities.Volts(230)
//	i, err := p.DivVoltage(v)
//
// Text round trips use canonical "<value> <prefix><symbol>" strings,
// for example "5 kW" or "-3.2 mA". Parse accepts the same forms with
// flexible spacing. All kinds implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, and decode from YAML scalars directly.
package quantities
