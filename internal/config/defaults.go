package config

import (
	_ "embed"

	"github.com/vovakirdan/magicsim/internal/magic"
)

//go:embed defaults/magicsim.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/magicsim.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	one := 1.0
	return Config{
		Board: Board{
			Cols: 8,
			Rows: 8,
		},
		Player: Player{
			Col:    3,
			Row:    4,
			Facing: "n",
		},
		Crates: []Tile{
			{Col: 1, Row: 1},
			{Col: 5, Row: 2},
			{Col: 2, Row: 5},
			{Col: 6, Row: 6},
			{Col: 4, Row: 2},
		},
		Fire: Fire{
			MaxTiles: 5,
			FlightMS: 400,
			BurnMS:   800,
		},
		Magic: map[magic.Type]magic.Overrides{
			magic.Fire:  {Power: &one},
			magic.Water: {Power: &one},
		},
		Input: Input{
			RepeatGuardMS: 90,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
