package magicsim

import (
	"fmt"

	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateCleared     GameStateType = "cleared"
	StatePausedSmall GameStateType = "paused_small_window"
)

// CrateSnapshot is one crate and its status.
type CrateSnapshot struct {
	Tile    grid.Position
	Status  magic.Status
	Elapsed float64
}

// Snapshot captures the complete board state for tests and the debug window.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Player      grid.Position
	Facing      grid.Direction
	Magic       magic.Type
	Crates      []CrateSnapshot
	Projectiles int
	Moves       int
	Casts       int
	Destroyed   int
	Elapsed     float64
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateCleared
	case g.paused:
		state = StatePaused
	}

	crates := make([]CrateSnapshot, len(g.crates))
	for i, c := range g.crates {
		crates[i] = CrateSnapshot{Tile: c, Status: g.effects[i].Status, Elapsed: g.effects[i].Elapsed}
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Player:      g.player,
		Facing:      g.facing,
		Magic:       g.active,
		Crates:      crates,
		Projectiles: len(g.projectiles),
		Moves:       g.moves,
		Casts:       g.casts,
		Destroyed:   g.destroyed,
		Elapsed:     g.elapsed,
		State:       state,
	}
}

// DebugLines returns the board state as short lines for the debug window.
func (g *Game) DebugLines() []string {
	s := g.Snapshot()
	lines := []string{
		fmt.Sprintf("tick %d  t=%.2fs  state=%s", s.Tick, s.Elapsed, s.State),
		fmt.Sprintf("player %v facing %s  magic %s", s.Player, s.Facing, s.Magic),
		fmt.Sprintf("moves %d  casts %d  destroyed %d  in flight %d", s.Moves, s.Casts, s.Destroyed, s.Projectiles),
	}
	for _, c := range s.Crates {
		if c.Status == magic.StatusBurning {
			lines = append(lines, fmt.Sprintf("crate %v %s %.2fs", c.Tile, c.Status, c.Elapsed))
		}
	}
	for _, p := range g.projectiles {
		lines = append(lines, fmt.Sprintf("proj #%d %s %v->%v %.0f%%", p.ID, p.Magic, p.Start, p.End, p.Progress()*100))
	}
	return lines
}
