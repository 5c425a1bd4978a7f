package quantities

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Every kind implements encoding.TextMarshaler and
// encoding.TextUnmarshaler over the canonical text form, which also
// carries JSON round trips (quantities marshal as strings).
// MarshalText keeps full precision instead of String's display
// rounding. YAML decoding additionally accepts a bare number, read
// as base units; yaml.v3 encodes through MarshalText on its own.

func unmarshalYAMLQuantity(node *yaml.Node, u unit) (float64, error) {
	v, err := parseQuantity(node.Value, u)
	if err == nil {
		return v, nil
	}
	if f, ferr := strconv.ParseFloat(node.Value, 64); ferr == nil {
		return f, nil
	}
	return 0, err
}

func (p Power) MarshalText() ([]byte, error) {
	return []byte(p.Text(-1)), nil
}

func (p *Power) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), wattUnit)
	if err != nil {
		return err
	}
	p.base = v
	return nil
}

func (p *Power) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, wattUnit)
	if err != nil {
		return err
	}
	p.base = v
	return nil
}

func (a ApparentPower) MarshalText() ([]byte, error) {
	return []byte(a.Text(-1)), nil
}

func (a *ApparentPower) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), vaUnit)
	if err != nil {
		return err
	}
	a.base = v
	return nil
}

func (a *ApparentPower) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, vaUnit)
	if err != nil {
		return err
	}
	a.base = v
	return nil
}

func (r ReactivePower) MarshalText() ([]byte, error) {
	return []byte(r.Text(-1)), nil
}

func (r *ReactivePower) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), varUnit)
	if err != nil {
		return err
	}
	r.base = v
	return nil
}

func (r *ReactivePower) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, varUnit)
	if err != nil {
		return err
	}
	r.base = v
	return nil
}

func (c Current) MarshalText() ([]byte, error) {
	return []byte(c.Text(-1)), nil
}

func (c *Current) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), ampereUnit)
	if err != nil {
		return err
	}
	c.base = v
	return nil
}

func (c *Current) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, ampereUnit)
	if err != nil {
		return err
	}
	c.base = v
	return nil
}

func (v Voltage) MarshalText() ([]byte, error) {
	return []byte(v.Text(-1)), nil
}

func (v *Voltage) UnmarshalText(text []byte) error {
	b, err := parseQuantity(string(text), voltUnit)
	if err != nil {
		return err
	}
	v.base = b
	return nil
}

func (v *Voltage) UnmarshalYAML(node *yaml.Node) error {
	b, err := unmarshalYAMLQuantity(node, voltUnit)
	if err != nil {
		return err
	}
	v.base = b
	return nil
}

func (e Energy) MarshalText() ([]byte, error) {
	return []byte(e.Text(-1)), nil
}

func (e *Energy) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), wattHourUnit)
	if err != nil {
		return err
	}
	e.base = v
	return nil
}

func (e *Energy) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, wattHourUnit)
	if err != nil {
		return err
	}
	e.base = v
	return nil
}

func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.Text(-1)), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), hertzUnit)
	if err != nil {
		return err
	}
	f.base = v
	return nil
}

func (f *Frequency) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, hertzUnit)
	if err != nil {
		return err
	}
	f.base = v
	return nil
}

func (p Percentage) MarshalText() ([]byte, error) {
	return []byte(p.Text(-1)), nil
}

func (p *Percentage) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), percentUnit)
	if err != nil {
		return err
	}
	p.base = v
	return nil
}

func (p *Percentage) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, percentUnit)
	if err != nil {
		return err
	}
	p.base = v
	return nil
}

func (t Temperature) MarshalText() ([]byte, error) {
	return []byte(t.Text(-1)), nil
}

func (t *Temperature) UnmarshalText(text []byte) error {
	v, err := parseQuantity(string(text), celsiusUnit)
	if err != nil {
		return err
	}
	t.base = v
	return nil
}

func (t *Temperature) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLQuantity(node, celsiusUnit)
	if err != nil {
		return err
	}
	t.base = v
	return nil
}
