package magicsim

import (
	"fmt"

	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

// EventKind identifies something that happened to the board.
type EventKind uint8

const (
	EventCrateIgnited EventKind = iota + 1
	EventCrateReignited
	EventCrateExtinguished
	EventCrateDestroyed
	EventProjectileFizzled // landed on a tile whose crate had moved away
	EventMapReset
	EventCleared
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventCrateIgnited:
		return "crate_ignited"
	case EventCrateReignited:
		return "crate_reignited"
	case EventCrateExtinguished:
		return "crate_extinguished"
	case EventCrateDestroyed:
		return "crate_destroyed"
	case EventProjectileFizzled:
		return "projectile_fizzled"
	case EventMapReset:
		return "map_reset"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is returned from Game methods in place of a global broadcast.
// Magic is empty for events not caused by a projectile.
type Event struct {
	Kind  EventKind
	Tile  grid.Position
	Magic magic.Type
}

func (e Event) String() string {
	switch e.Kind {
	case EventMapReset, EventCleared:
		return e.Kind.String()
	}
	if e.Magic == "" {
		return fmt.Sprintf("%s at %v", e.Kind, e.Tile)
	}
	return fmt.Sprintf("%s at %v by %s", e.Kind, e.Tile, e.Magic)
}
