// Package magicsim is the playable board: a player walking a tile grid,
// pushing crates and casting fire and water at them.
//
// Game owns the board state and feeds it through the pure resolvers in
// internal/grid and internal/magic. Everything that happens is reported back
// to the caller as Events; nothing is broadcast.
package magicsim

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/magicsim/internal/config"
	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
	"github.com/vovakirdan/magicsim/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeSandbox Mode = "sandbox" // free play
	ModeClear   Mode = "clear"   // ends when every crate is destroyed
)

// Package-level config, set by the CLI before games are created.
var gameConfig = config.DefaultConfig()

// SetConfig sets the board layout and tuning used by games reset afterwards.
func SetConfig(cfg config.Config) {
	gameConfig = cfg
}

// Game implements the magic sim board.
type Game struct {
	mode Mode
	cfg  config.Config
	tick uint64

	cols, rows int
	player     grid.Position
	facing     grid.Direction

	// crates and effects are parallel: effects[i] is the status of crates[i].
	crates  []grid.Position
	effects []magic.StatusEffect

	projectiles []Projectile
	nextID      int
	active      magic.Type
	params      map[magic.Type]magic.Params

	moves     int
	casts     int
	destroyed int
	elapsed   float64 // seconds of unpaused play

	paused   bool
	gameOver bool

	screenW, screenH int
	tickSeconds      float64
	layout           layout
}

// New creates a sandbox game.
func New() *Game {
	return &Game{mode: ModeSandbox}
}

// NewClear creates a game that ends once all crates are destroyed.
func NewClear() *Game {
	return &Game{mode: ModeClear}
}

func init() {
	registry.Register(string(ModeSandbox), "Free play", func() registry.Game {
		return New()
	})
	registry.Register(string(ModeClear), "The round ends when every crate has burned down", func() registry.Game {
		return NewClear()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClear {
		return "Magic Sim (Clear the Board)"
	}
	return "Magic Sim (Sandbox)"
}

// Reset picks up the current package config and restores the starting layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.tick = 0
	g.tickSeconds = cfg.TickSeconds()
	g.cols = g.cfg.Board.Cols
	g.rows = g.cfg.Board.Rows
	g.active = magic.Fire
	g.params = make(map[magic.Type]magic.Params, len(magic.Types()))
	for _, t := range magic.Types() {
		p, err := g.cfg.MagicParams(t)
		if err != nil {
			// Types() only yields known types.
			panic(err)
		}
		g.params[t] = p
	}

	g.restoreLayout()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.cols, g.rows, w, h)
}

// ResetMap restores the starting layout, keeping the active magic type.
func (g *Game) ResetMap() []Event {
	g.restoreLayout()
	return []Event{{Kind: EventMapReset}}
}

func (g *Game) restoreLayout() {
	g.player = g.cfg.Player.Position()
	g.facing = g.cfg.Player.Direction()
	g.crates = g.cfg.CratePositions()
	g.effects = make([]magic.StatusEffect, len(g.crates))
	g.projectiles = nil
	g.moves = 0
	g.casts = 0
	g.destroyed = 0
	g.elapsed = 0
	g.paused = false
	g.gameOver = false
}

// Move turns the player to face d and tries to step, pushing at most one
// crate. The player turns even when the step is blocked.
func (g *Game) Move(d grid.Direction) grid.MoveOutcome {
	if g.gameOver {
		return grid.MoveOutcome{Player: g.player, Obstacles: slices.Clone(g.crates)}
	}

	g.facing = d
	out := grid.TryMove(g.player, d, g.crates, g.cols, g.rows)
	if !out.Success {
		return out
	}

	if out.Player != g.player {
		g.moves++
	}
	g.player = out.Player
	// TryMove keeps obstacle order, so effects still line up by index.
	// The outcome belongs to the caller; burnDown edits g.crates in place.
	g.crates = slices.Clone(out.Obstacles)
	return out
}

// Cast launches the active magic in the facing direction.
// It returns false when the projectile would not leave the player's tile.
func (g *Game) Cast() (Projectile, bool) {
	if g.gameOver {
		return Projectile{}, false
	}

	res := grid.CastRay(g.player, g.facing, g.crates, g.cols, g.rows, g.cfg.Fire.MaxTiles)
	if res.End == g.player {
		return Projectile{}, false
	}

	g.nextID++
	g.casts++
	p := Projectile{
		ID:       g.nextID,
		Magic:    g.active,
		Start:    g.player,
		End:      res.End,
		Hit:      res.Hit,
		Duration: float64(g.cfg.Fire.FlightMS) / 1000,
	}
	g.projectiles = append(g.projectiles, p)
	return p, true
}

// SwitchMagic makes the next magic type active and returns it.
func (g *Game) SwitchMagic() magic.Type {
	g.active = g.active.Next()
	return g.active
}

// ActiveMagic returns the magic type Cast will launch.
func (g *Game) ActiveMagic() magic.Type {
	return g.active
}

// ActiveParams returns the parameter bundle of the active magic type.
func (g *Game) ActiveParams() magic.Params {
	return g.params[g.active]
}

// Advance moves simulated time forward by dt seconds: burning crates age,
// projectiles that reach the end of their flight apply their hit, and crates
// that burned for fire.burn_ms are destroyed.
func (g *Game) Advance(dt float64) []Event {
	if g.paused || g.gameOver || dt <= 0 {
		return nil
	}
	g.elapsed += dt

	for i := range g.effects {
		if g.effects[i].Burning() {
			g.effects[i] = g.effects[i].Tick(dt)
		}
	}

	var events []Event
	inFlight := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Age += dt
		if p.Done() {
			events = append(events, g.land(p)...)
			continue
		}
		inFlight = append(inFlight, p)
	}
	g.projectiles = inFlight

	events = append(events, g.burnDown()...)

	if g.mode == ModeClear && len(g.crates) == 0 && len(g.cfg.Crates) > 0 {
		g.gameOver = true
		events = append(events, Event{Kind: EventCleared})
	}
	return events
}

// land applies a finished projectile's hit to the crate on its hit tile.
func (g *Game) land(p Projectile) []Event {
	if p.Hit == nil {
		return nil
	}
	i := grid.IndexOf(*p.Hit, g.crates)
	if i < 0 {
		return []Event{{Kind: EventProjectileFizzled, Tile: *p.Hit, Magic: p.Magic}}
	}

	sys, err := magic.Lookup(p.Magic)
	if err != nil {
		return nil
	}
	before := g.effects[i]

	if sys.CanExtinguish() {
		if !sys.ShouldExtinguish(before) {
			return nil
		}
		g.effects[i] = sys.OnHit(before)
		return []Event{{Kind: EventCrateExtinguished, Tile: *p.Hit, Magic: p.Magic}}
	}

	g.effects[i] = sys.OnHit(before)
	if !g.effects[i].Burning() {
		return nil
	}
	kind := EventCrateIgnited
	if before.Burning() {
		kind = EventCrateReignited
	}
	return []Event{{Kind: kind, Tile: *p.Hit, Magic: p.Magic}}
}

// burnDown removes crates that have burned for the configured time.
func (g *Game) burnDown() []Event {
	burn := float64(g.cfg.Fire.BurnMS) / 1000

	var events []Event
	for i := 0; i < len(g.crates); {
		e := g.effects[i]
		if !e.Burning() || e.Elapsed < burn {
			i++
			continue
		}
		events = append(events, Event{Kind: EventCrateDestroyed, Tile: g.crates[i], Magic: magic.Fire})
		g.crates = slices.Delete(g.crates, i, i+1)
		g.effects = slices.Delete(g.effects, i, i+1)
		g.destroyed++
	}
	return events
}

// Step applies one tick of platform input and advances time by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var notes []string

	if in.Has(core.ActionReset) {
		notes = appendEvents(notes, g.ResetMap())
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || g.layout.tooSmall {
		return core.StepResult{State: g.State(), Notes: notes}
	}

	for _, a := range in.Moves() {
		d, ok := directionFor(a)
		if !ok {
			continue
		}
		before := g.crates
		out := g.Move(d)
		switch {
		case !out.Success:
			notes = append(notes, fmt.Sprintf("blocked moving %s at %v", d, g.player))
		case out.Pushed(before):
			notes = append(notes, fmt.Sprintf("pushed crate %s to %v", d, out.Player))
		}
	}

	if in.Has(core.ActionSwitchMagic) {
		notes = append(notes, fmt.Sprintf("magic switched to %s", g.SwitchMagic()))
	}

	if in.Has(core.ActionCast) {
		if p, ok := g.Cast(); ok {
			notes = append(notes, castNote(p))
		}
	}

	notes = appendEvents(notes, g.Advance(g.tickSeconds))
	return core.StepResult{State: g.State(), Notes: notes}
}

func castNote(p Projectile) string {
	res := grid.ProjectileResolution{End: p.End, Hit: p.Hit}
	if res.HitObstacle() {
		return fmt.Sprintf("cast %s from %v, hits crate at %v (%d tiles)", p.Magic, p.Start, p.End, res.Distance(p.Start))
	}
	return fmt.Sprintf("cast %s from %v to %v (%d tiles)", p.Magic, p.Start, p.End, res.Distance(p.Start))
}

func appendEvents(notes []string, events []Event) []string {
	for _, e := range events {
		notes = append(notes, e.String())
	}
	return notes
}

func directionFor(a core.Action) (grid.Direction, bool) {
	switch a {
	case core.ActionMoveNorth:
		return grid.North, true
	case core.ActionMoveSouth:
		return grid.South, true
	case core.ActionMoveEast:
		return grid.East, true
	case core.ActionMoveWest:
		return grid.West, true
	default:
		return 0, false
	}
}

// State returns the current game state.
// Score is the number of crates destroyed since the last reset.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.destroyed,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Player returns the player's tile and facing.
func (g *Game) Player() (grid.Position, grid.Direction) {
	return g.player, g.facing
}

// Crates returns a copy of the crate tiles.
func (g *Game) Crates() []grid.Position {
	return slices.Clone(g.crates)
}

// CrateStatus returns the status of the crate on pos, if there is one.
func (g *Game) CrateStatus(pos grid.Position) (magic.StatusEffect, bool) {
	i := grid.IndexOf(pos, g.crates)
	if i < 0 {
		return magic.StatusEffect{}, false
	}
	return g.effects[i], true
}

// Projectiles returns a copy of the projectiles in flight.
func (g *Game) Projectiles() []Projectile {
	return slices.Clone(g.projectiles)
}
