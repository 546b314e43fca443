package magic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var anyTargets = []StatusEffect{
	{Status: StatusNormal, Elapsed: 0},
	{Status: StatusBurning, Elapsed: 5},
	{Status: StatusBurning, Elapsed: 0.25},
}

func TestFireOnHitAlwaysIgnites(t *testing.T) {
	fire := MustLookup(Fire)
	for _, target := range anyTargets {
		assert.Equal(t, StatusEffect{Status: StatusBurning, Elapsed: 0}, fire.OnHit(target))
	}
	assert.False(t, fire.CanExtinguish())
	assert.Nil(t, fire.ShouldExtinguish)
}

func TestWaterOnHitAlwaysNormal(t *testing.T) {
	water := MustLookup(Water)
	for _, target := range anyTargets {
		assert.Equal(t, StatusEffect{Status: StatusNormal, Elapsed: 0}, water.OnHit(target))
	}
}

func TestWaterShouldExtinguish(t *testing.T) {
	water := MustLookup(Water)
	require.True(t, water.CanExtinguish())

	assert.True(t, water.ShouldExtinguish(StatusEffect{Status: StatusBurning, Elapsed: 1}))
	assert.False(t, water.ShouldExtinguish(StatusEffect{Status: StatusNormal}))
}

func TestLookupKnownTypes(t *testing.T) {
	tests := []struct {
		typ   Type
		color RGB
	}{
		{Fire, RGB{1, 0.2, 0}},
		{Water, RGB{0.2, 0.5, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			sys, err := Lookup(tc.typ)
			require.NoError(t, err)
			assert.Equal(t, tc.typ, sys.Type)
			assert.Equal(t, tc.color, sys.Color)
		})
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, err := Lookup(Type("unknown"))
	require.Error(t, err)
	assert.EqualError(t, err, "unknown magic type: unknown")

	var typed *UnknownTypeError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, Type("unknown"), typed.Type)
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Fire ")
	require.NoError(t, err)
	assert.Equal(t, Fire, got)

	_, err = ParseType("lightning")
	assert.EqualError(t, err, "unknown magic type: lightning")
}

func TestTypeNextCycles(t *testing.T) {
	assert.Equal(t, Water, Fire.Next())
	assert.Equal(t, Fire, Water.Next())
	assert.Equal(t, Fire, Type("bogus").Next())
}

func TestStatusEffectTick(t *testing.T) {
	e := StatusEffect{Status: StatusBurning}.Tick(0.5).Tick(0.25)
	assert.InDelta(t, 0.75, e.Elapsed, 1e-9)
	assert.True(t, e.Burning())
}

func TestRGBCSS(t *testing.T) {
	assert.Equal(t, "rgb(255,51,0)", fireColor.CSS())
	assert.Equal(t, "rgb(51,128,255)", waterColor.CSS())
	assert.Equal(t, "rgb(0,255,0)", RGB{-1, 2, 0}.CSS(), "components are clamped")
}

func TestCreateParamsDefaults(t *testing.T) {
	tests := []struct {
		typ   Type
		color string
	}{
		{Fire, "rgb(255,51,0)"},
		{Water, "rgb(51,128,255)"},
	}

	for _, tc := range tests {
		p, err := CreateParams(tc.typ, Overrides{})
		require.NoError(t, err)
		assert.Equal(t, tc.typ, p.Type)
		assert.Equal(t, tc.color, p.Color.String())
		assert.Equal(t, 1.0, p.Power)
		assert.Nil(t, p.Behavior)
	}
}

func TestCreateParamsOverridesReplaceBase(t *testing.T) {
	power := 2.0
	color := TextColor("#ff0000")

	p, err := CreateParams(Fire, Overrides{
		Power:    &power,
		Color:    &color,
		Behavior: map[string]any{"custom": true},
	})
	require.NoError(t, err)

	assert.Equal(t, Fire, p.Type)
	assert.Equal(t, 2.0, p.Power)
	assert.Equal(t, "#ff0000", p.Color.String())
	assert.Equal(t, map[string]any{"custom": true}, p.Behavior)
}

func TestCreateParamsUnknownType(t *testing.T) {
	_, err := CreateParams(Type("earth"), Overrides{})
	assert.EqualError(t, err, "unknown magic type: earth")
}

func TestColorValueYAML(t *testing.T) {
	var o Overrides
	require.NoError(t, yaml.Unmarshal([]byte("color: [0.5, 0, 1]\npower: 3\n"), &o))
	require.NotNil(t, o.Color)
	rgb, ok := o.Color.RGB()
	require.True(t, ok)
	assert.Equal(t, RGB{0.5, 0, 1}, rgb)
	assert.Equal(t, 3.0, *o.Power)

	var s Overrides
	require.NoError(t, yaml.Unmarshal([]byte(`color: "#00ff00"`), &s))
	assert.Equal(t, "#00ff00", s.Color.String())

	var bad Overrides
	assert.Error(t, yaml.Unmarshal([]byte("color: [1, 2]"), &bad))
}

func TestParamsMarshalYAML(t *testing.T) {
	p, err := CreateParams(Water, Overrides{})
	require.NoError(t, err)

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: water")
	assert.Contains(t, string(out), "color: rgb(51,128,255)")
	assert.Contains(t, string(out), "power: 1")
}
