package magic

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ColorValue is either a free-form color string ("#ff0000", "rgb(1,2,3)")
// or an RGB triple.
type ColorValue struct {
	text  string
	rgb   RGB
	isRGB bool
}

// TextColor returns a ColorValue holding a color string.
func TextColor(s string) ColorValue {
	return ColorValue{text: s}
}

// RGBColor returns a ColorValue holding an RGB triple.
func RGBColor(c RGB) ColorValue {
	return ColorValue{rgb: c, isRGB: true}
}

// RGB returns the triple and true if the value holds one.
func (c ColorValue) RGB() (RGB, bool) {
	return c.rgb, c.isRGB
}

// String returns the color string, formatting RGB triples as "rgb(r,g,b)".
func (c ColorValue) String() string {
	if c.isRGB {
		return c.rgb.CSS()
	}
	return c.text
}

// MarshalYAML writes strings as scalars and triples as sequences.
func (c ColorValue) MarshalYAML() (any, error) {
	if c.isRGB {
		return []float64{c.rgb[0], c.rgb[1], c.rgb[2]}, nil
	}
	return c.text, nil
}

// UnmarshalYAML accepts a scalar string or a three-element number sequence.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = TextColor(node.Value)
		return nil
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		if len(vals) != 3 {
			return fmt.Errorf("color: want 3 components, got %d", len(vals))
		}
		*c = RGBColor(RGB{vals[0], vals[1], vals[2]})
		return nil
	default:
		return fmt.Errorf("color: line %d: expected string or [r, g, b]", node.Line)
	}
}

// Params is the parameter bundle for casting a magic type.
type Params struct {
	Type     Type           `yaml:"type"`
	Color    ColorValue     `yaml:"color"`
	Power    float64        `yaml:"power"`
	Behavior map[string]any `yaml:"behavior,omitempty"`
}

// Overrides replaces fields of the base Params. Nil fields keep the base.
// Set fields replace the base value entirely; Behavior is not merged key by key.
type Overrides struct {
	Color    *ColorValue    `yaml:"color,omitempty"`
	Power    *float64       `yaml:"power,omitempty"`
	Behavior map[string]any `yaml:"behavior,omitempty"`
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.Color == nil && o.Power == nil && o.Behavior == nil
}

// CreateParams builds the Params for t: the variant's base color as an
// "rgb(r,g,b)" string and power 1, with o applied on top.
func CreateParams(t Type, o Overrides) (Params, error) {
	sys, err := Lookup(t)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		Type:  t,
		Color: TextColor(sys.Color.CSS()),
		Power: 1,
	}

	if o.Color != nil {
		p.Color = *o.Color
	}
	if o.Power != nil {
		p.Power = *o.Power
	}
	if o.Behavior != nil {
		p.Behavior = o.Behavior
	}
	return p, nil
}
