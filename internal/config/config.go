// Package config provides YAML-based configuration loading and validation
// for magicsim.
package config

import (
	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

// Config contains everything the game and its front end read at startup.
type Config struct {
	Board  Board                          `yaml:"board"`
	Player Player                         `yaml:"player"`
	Crates []Tile                         `yaml:"crates"`
	Fire   Fire                           `yaml:"fire"`
	Magic  map[magic.Type]magic.Overrides `yaml:"magic"`
	Input  Input                          `yaml:"input"`
	Log    Log                            `yaml:"log"`
}

// Board defines the grid dimensions in tiles.
type Board struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Player defines where the player starts and which way it faces.
type Player struct {
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
	Facing string `yaml:"facing"` // n, s, e, w or full names
}

// Position returns the start tile.
func (p Player) Position() grid.Position {
	return grid.P(p.Col, p.Row)
}

// Direction returns the parsed facing, defaulting to north.
func (p Player) Direction() grid.Direction {
	d, ok := grid.ParseDirection(p.Facing)
	if !ok {
		return grid.North
	}
	return d
}

// Tile is a board coordinate in YAML form.
type Tile struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Position converts the tile to a grid position.
func (t Tile) Position() grid.Position {
	return grid.P(t.Col, t.Row)
}

// Fire defines projectile range and timing.
type Fire struct {
	MaxTiles int `yaml:"max_tiles"` // Maximum tiles a cast travels
	FlightMS int `yaml:"flight_ms"` // Time a projectile is in flight
	BurnMS   int `yaml:"burn_ms"`   // Time a burning crate takes to be destroyed
}

// Input defines keyboard handling parameters.
type Input struct {
	// RepeatGuardMS drops a repeated identical key arriving within this window,
	// treating it as terminal auto-repeat. 0 disables the guard.
	RepeatGuardMS int `yaml:"repeat_guard_ms"`
}

// Log defines logging output.
type Log struct {
	Path  string `yaml:"path"`  // Log file; empty disables file logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// CratePositions returns the starting crate layout as grid positions.
func (c Config) CratePositions() []grid.Position {
	out := make([]grid.Position, len(c.Crates))
	for i, t := range c.Crates {
		out[i] = t.Position()
	}
	return out
}

// MagicParams returns the parameter bundle for t with configured overrides.
func (c Config) MagicParams(t magic.Type) (magic.Params, error) {
	return magic.CreateParams(t, c.Magic[t])
}
