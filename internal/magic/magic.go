// Package magic defines the closed set of magic types and how each one changes
// the status of whatever it hits.
//
// The variant set is fixed, so behaviour is selected with a switch on Type
// rather than through an interface.
package magic

import (
	"fmt"
	"strings"
)

// Type identifies a magic variant.
type Type string

const (
	Fire  Type = "fire"
	Water Type = "water"
)

// Types returns every known magic type in display order.
func Types() []Type {
	return []Type{Fire, Water}
}

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// Next returns the type that follows t in Types, wrapping around.
// Unknown types map to the first type.
func (t Type) Next() Type {
	all := Types()
	for i, v := range all {
		if v == t {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(t); err != nil {
		return "", &UnknownTypeError{Type: Type(s)}
	}
	return t, nil
}

// UnknownTypeError is returned when a magic type outside the known set is
// requested.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown magic type: %s", string(e.Type))
}

// Status is the condition of an object that magic can hit.
type Status uint8

const (
	StatusNormal Status = iota
	StatusBurning
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusBurning:
		return "burning"
	default:
		return "unknown"
	}
}

// StatusEffect is the status attached to a hittable object.
// Elapsed is the time in seconds the object has spent in Status.
// The zero value is a normal object.
type StatusEffect struct {
	Status  Status
	Elapsed float64
}

// Burning reports whether the target is on fire.
func (e StatusEffect) Burning() bool {
	return e.Status == StatusBurning
}

// Tick returns the effect with dt seconds added to Elapsed.
func (e StatusEffect) Tick(dt float64) StatusEffect {
	e.Elapsed += dt
	return e
}

// RGB is a color with components in [0, 1].
type RGB [3]float64

// CSS formats the color as "rgb(r,g,b)" with 0-255 integer components.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	// Round half up, matching CSS channel rounding.
	return int(v*255 + 0.5)
}

// System is one magic variant.
type System struct {
	Type  Type
	Color RGB

	// ShouldExtinguish is set only for variants that can put out a burning
	// target. It is nil for every other variant.
	ShouldExtinguish func(target StatusEffect) bool
}

// CanExtinguish reports whether the variant carries the extinguish capability.
func (s System) CanExtinguish() bool {
	return s.ShouldExtinguish != nil
}

// OnHit returns the target's status after being hit by this variant.
// The previous status is ignored: fire always (re)ignites with a fresh timer
// and water always leaves the target normal.
func (s System) OnHit(_ StatusEffect) StatusEffect {
	switch s.Type {
	case Fire:
		return StatusEffect{Status: StatusBurning}
	case Water:
		return StatusEffect{Status: StatusNormal}
	default:
		return StatusEffect{}
	}
}

var (
	fireColor  = RGB{1, 0.2, 0}
	waterColor = RGB{0.2, 0.5, 1}
)

// Lookup returns the System for t, or an *UnknownTypeError.
func Lookup(t Type) (System, error) {
	switch t {
	case Fire:
		return System{Type: Fire, Color: fireColor}, nil
	case Water:
		return System{
			Type:             Water,
			Color:            waterColor,
			ShouldExtinguish: extinguishes,
		}, nil
	default:
		return System{}, &UnknownTypeError{Type: t}
	}
}

// MustLookup is like Lookup but panics on unknown types.
// Use only with the exported constants.
func MustLookup(t Type) System {
	s, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return s
}

func extinguishes(target StatusEffect) bool {
	return target.Status == StatusBurning
}
