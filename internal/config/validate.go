package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together; each one wraps ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	cols, rows := c.Board.Cols, c.Board.Rows
	if cols <= 0 || rows <= 0 {
		invalid("board must be at least 1x1, got %dx%d", cols, rows)
		// Bounds checks below are meaningless without a board.
		return errors.Join(errs...)
	}

	player := c.Player.Position()
	if !grid.InBounds(player, cols, rows) {
		invalid("player start %v is outside the %dx%d board", player, cols, rows)
	}
	if c.Player.Facing != "" {
		if _, ok := grid.ParseDirection(c.Player.Facing); !ok {
			invalid("player facing %q is not one of n, s, e, w", c.Player.Facing)
		}
	}

	seen := make(map[grid.Position]bool, len(c.Crates))
	for i, t := range c.Crates {
		p := t.Position()
		switch {
		case !grid.InBounds(p, cols, rows):
			invalid("crate %d at %v is outside the board", i, p)
		case p == player:
			invalid("crate %d at %v overlaps the player start", i, p)
		case seen[p]:
			invalid("crate %d at %v duplicates another crate", i, p)
		}
		seen[p] = true
	}

	if c.Fire.MaxTiles < 0 {
		invalid("fire.max_tiles must not be negative, got %d", c.Fire.MaxTiles)
	}
	if c.Fire.FlightMS <= 0 {
		invalid("fire.flight_ms must be positive, got %d", c.Fire.FlightMS)
	}
	if c.Fire.BurnMS < 0 {
		invalid("fire.burn_ms must not be negative, got %d", c.Fire.BurnMS)
	}

	for _, t := range slices.Sorted(maps.Keys(c.Magic)) {
		if _, err := magic.Lookup(t); err != nil {
			errs = append(errs, fmt.Errorf("%w: magic: %w", ErrInvalid, err))
		}
	}

	if c.Input.RepeatGuardMS < 0 {
		invalid("input.repeat_guard_ms must not be negative, got %d", c.Input.RepeatGuardMS)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			invalid("log.level %q: %v", c.Log.Level, err)
		}
	}

	return errors.Join(errs...)
}
