package magicsim

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/magicsim/internal/config"
	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
	"github.com/vovakirdan/magicsim/internal/registry"
)

// flight is slightly longer than the default 400ms projectile flight.
const flight = 0.41

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func testConfig(player grid.Position, crates ...grid.Position) config.Config {
	cfg := config.DefaultConfig()
	cfg.Player = config.Player{Col: player.Col, Row: player.Row, Facing: "n"}
	cfg.Crates = nil
	for _, c := range crates {
		cfg.Crates = append(cfg.Crates, config.Tile{Col: c.Col, Row: c.Row})
	}
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultConfig()) })

	g := New()
	g.Reset(testRuntime)
	return g
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func wantKinds(t *testing.T, events []Event, want ...EventKind) {
	t.Helper()
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"sandbox", "clear"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Errorf("mode %q not registered: %v", id, err)
			continue
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestResetUsesConfig(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())

	pos, facing := g.Player()
	if pos != grid.P(3, 4) || facing != grid.North {
		t.Errorf("player = %v facing %s, want (3,4) facing north", pos, facing)
	}
	if got := len(g.Crates()); got != 5 {
		t.Errorf("crates = %d, want 5", got)
	}
	if g.ActiveMagic() != magic.Fire {
		t.Errorf("active magic = %s, want fire", g.ActiveMagic())
	}
}

func TestMovePushesCrate(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 3)))

	out := g.Move(grid.North)
	if !out.Success {
		t.Fatal("push should succeed")
	}

	pos, _ := g.Player()
	if pos != grid.P(3, 3) {
		t.Errorf("player = %v, want (3,3)", pos)
	}
	if crates := g.Crates(); crates[0] != grid.P(3, 2) {
		t.Errorf("crate = %v, want (3,2)", crates[0])
	}
	if s := g.Snapshot(); s.Moves != 1 {
		t.Errorf("moves = %d, want 1", s.Moves)
	}
}

func TestMoveOutcomeIsDetached(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 3), grid.P(6, 0)))

	out := g.Move(grid.North)
	if !out.Pushed([]grid.Position{grid.P(3, 3), grid.P(6, 0)}) {
		t.Fatalf("obstacles = %v, want a push", out.Obstacles)
	}

	out.Obstacles[1] = grid.P(7, 7)
	crates := g.Crates()
	if crates[0] != grid.P(3, 2) || crates[1] != grid.P(6, 0) {
		t.Errorf("crates = %v, want [(3,2) (6,0)]", crates)
	}
}

func TestBurnDownLeavesMoveOutcomeAlone(t *testing.T) {
	cfg := testConfig(grid.P(3, 4), grid.P(3, 3), grid.P(4, 2))
	cfg.Fire.BurnMS = 0
	g := newTestGame(t, cfg)

	out := g.Move(grid.North) // pushes (3,3) to (3,2)
	held := slices.Clone(out.Obstacles)

	if _, ok := g.Cast(); !ok {
		t.Fatal("cast failed")
	}
	wantKinds(t, g.Advance(flight), EventCrateIgnited, EventCrateDestroyed)

	if !slices.Equal(out.Obstacles, held) {
		t.Errorf("outcome changed to %v, was %v", out.Obstacles, held)
	}
}

func TestBlockedMoveStillTurns(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(4, 4), grid.P(5, 4)))

	out := g.Move(grid.East)
	if out.Success {
		t.Fatal("two crates in a row should block")
	}

	pos, facing := g.Player()
	if pos != grid.P(3, 4) {
		t.Errorf("player moved to %v", pos)
	}
	if facing != grid.East {
		t.Errorf("facing = %s, want east", facing)
	}
	if s := g.Snapshot(); s.Moves != 0 {
		t.Errorf("moves = %d, want 0", s.Moves)
	}
}

func TestPushedBurningCrateKeepsStatus(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 2)))

	if _, ok := g.Cast(); !ok {
		t.Fatal("cast failed")
	}
	wantKinds(t, g.Advance(flight), EventCrateIgnited)

	g.Move(grid.North) // to (3,3)
	g.Move(grid.North) // pushes crate to (3,1)

	st, ok := g.CrateStatus(grid.P(3, 1))
	if !ok || !st.Burning() {
		t.Errorf("pushed crate status = %+v, %v; want burning", st, ok)
	}
}

func TestFireIgnitesThenDestroys(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))

	p, ok := g.Cast()
	if !ok {
		t.Fatal("cast failed")
	}
	if p.End != grid.P(3, 1) || p.Hit == nil || *p.Hit != grid.P(3, 1) {
		t.Fatalf("projectile = %+v, want hit on (3,1)", p)
	}

	wantKinds(t, g.Advance(0.39))
	wantKinds(t, g.Advance(0.02), EventCrateIgnited)

	st, _ := g.CrateStatus(grid.P(3, 1))
	if !st.Burning() || st.Elapsed != 0 {
		t.Errorf("status = %+v, want burning at 0", st)
	}

	wantKinds(t, g.Advance(0.79))
	events := g.Advance(0.02)
	wantKinds(t, events, EventCrateDestroyed)
	if events[0].Tile != grid.P(3, 1) {
		t.Errorf("destroyed tile = %v", events[0].Tile)
	}

	if len(g.Crates()) != 0 {
		t.Errorf("crates = %v, want none", g.Crates())
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}
}

func TestWaterExtinguishesBurningCrate(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))

	g.Cast()
	wantKinds(t, g.Advance(flight), EventCrateIgnited)

	if got := g.SwitchMagic(); got != magic.Water {
		t.Fatalf("switched to %s, want water", got)
	}
	g.Cast()
	wantKinds(t, g.Advance(flight), EventCrateExtinguished)

	st, _ := g.CrateStatus(grid.P(3, 1))
	if st.Burning() {
		t.Errorf("status = %+v, want normal", st)
	}

	// A normal crate is never destroyed.
	wantKinds(t, g.Advance(2))
	if len(g.Crates()) != 1 {
		t.Error("extinguished crate should remain")
	}
}

func TestWaterOnNormalCrateIsNoop(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))
	g.SwitchMagic()

	g.Cast()
	wantKinds(t, g.Advance(flight))

	st, ok := g.CrateStatus(grid.P(3, 1))
	if !ok || st.Burning() {
		t.Errorf("status = %+v, %v", st, ok)
	}
}

func TestReignitionResetsTimer(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))

	g.Cast()
	wantKinds(t, g.Advance(flight), EventCrateIgnited)
	wantKinds(t, g.Advance(0.3))

	g.Cast()
	wantKinds(t, g.Advance(flight), EventCrateReignited)

	st, _ := g.CrateStatus(grid.P(3, 1))
	if st.Elapsed != 0 {
		t.Errorf("elapsed = %v, want 0 after re-ignition", st.Elapsed)
	}
	wantKinds(t, g.Advance(0.79))
}

func TestCastFacingAdjacentEdge(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 0)))

	if _, ok := g.Cast(); ok {
		t.Error("cast into the edge from the edge should not launch")
	}
	if len(g.Projectiles()) != 0 {
		t.Error("no projectile expected")
	}
}

func TestCastStopsAtMaxTiles(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 7)))

	p, ok := g.Cast()
	if !ok {
		t.Fatal("cast failed")
	}
	if p.End != grid.P(3, 2) || p.Hit != nil {
		t.Errorf("projectile = %+v, want end (3,2) without hit", p)
	}

	wantKinds(t, g.Advance(flight))
	if len(g.Projectiles()) != 0 {
		t.Error("projectile should have landed")
	}
}

func TestProjectileFizzlesWhenCrateMoved(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 2)))

	g.Cast()
	g.Move(grid.North)
	g.Move(grid.North)

	wantKinds(t, g.Advance(flight), EventProjectileFizzled)
	st, _ := g.CrateStatus(grid.P(3, 1))
	if st.Burning() {
		t.Error("moved crate should not ignite")
	}
}

func TestResetMapRestoresLayout(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 3)))
	g.SwitchMagic()
	g.Move(grid.North)
	g.Cast()

	wantKinds(t, g.ResetMap(), EventMapReset)

	pos, facing := g.Player()
	if pos != grid.P(3, 4) || facing != grid.North {
		t.Errorf("player = %v %s", pos, facing)
	}
	if crates := g.Crates(); len(crates) != 1 || crates[0] != grid.P(3, 3) {
		t.Errorf("crates = %v", crates)
	}
	if len(g.Projectiles()) != 0 {
		t.Error("projectiles should be cleared")
	}
	if g.ActiveMagic() != magic.Water {
		t.Error("reset should keep the active magic")
	}
}

func TestClearModeEnds(t *testing.T) {
	cfg := testConfig(grid.P(3, 4), grid.P(3, 1))
	cfg.Fire.BurnMS = 0
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultConfig()) })

	g := NewClear()
	g.Reset(testRuntime)

	g.Cast()
	wantKinds(t, g.Advance(flight), EventCrateIgnited, EventCrateDestroyed, EventCleared)

	st := g.State()
	if !st.GameOver || st.Score != 1 {
		t.Errorf("state = %+v, want game over with score 1", st)
	}
	if _, ok := g.Cast(); ok {
		t.Error("cannot cast after game over")
	}

	g.ResetMap()
	if g.State().GameOver {
		t.Error("reset should start a new round")
	}
}

func TestStepAppliesMovesInOrder(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4)))

	in := core.NewInputFrame()
	in.Set(core.ActionMoveNorth)
	in.Set(core.ActionMoveEast)
	g.Step(in)

	pos, facing := g.Player()
	if pos != grid.P(4, 3) || facing != grid.East {
		t.Errorf("player = %v %s, want (4,3) east", pos, facing)
	}
}

func TestStepCastAndNotes(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))

	in := core.NewInputFrame()
	in.Set(core.ActionCast)
	res := g.Step(in)

	if len(res.Notes) != 1 || !strings.Contains(res.Notes[0], "hits crate at (3,1)") {
		t.Errorf("notes = %q", res.Notes)
	}

	// 400ms at 60 ticks per second.
	in.Clear()
	var notes []string
	for range 25 {
		notes = append(notes, g.Step(in).Notes...)
	}
	if len(notes) != 1 || !strings.HasPrefix(notes[0], "crate_ignited at (3,1)") {
		t.Errorf("notes = %q", notes)
	}
}

func TestPauseStopsTime(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(3, 1)))
	g.Cast()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if !g.Step(in).State.Paused {
		t.Fatal("expected paused")
	}

	if events := g.Advance(1); events != nil {
		t.Errorf("events while paused = %v", events)
	}
	if p := g.Projectiles(); len(p) != 1 || p[0].Age != 0 {
		t.Errorf("projectile aged while paused: %+v", p)
	}
}

func TestProjectileDisplayPosition(t *testing.T) {
	p := Projectile{Start: grid.P(0, 2), End: grid.P(4, 2), Duration: 1}

	tests := []struct {
		age     float64
		wantCol float64
	}{
		{0, 0},
		{0.5, 3.5},
		{1, 4},
		{2, 4},
	}

	for _, tc := range tests {
		p.Age = tc.age
		col, row := p.DisplayPosition()
		if math.Abs(col-tc.wantCol) > 1e-9 || row != 2 {
			t.Errorf("age %v: position (%v,%v), want (%v,2)", tc.age, col, row, tc.wantCol)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, testConfig(grid.P(3, 4), grid.P(1, 1)))

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"▲", "[#]", "Magic: fire", "Active magic"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	x, y := g.tileScreen(grid.P(1, 1))
	if got := screen.GetCell(x, y); got.Rune != '[' || got.Color != core.ColorBrown {
		t.Errorf("crate cell = %+v", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	g.Resize(10, 5)

	screen := core.NewScreen(10, 5)
	g.Render(screen)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s", g.Snapshot().State)
	}
	if strings.Contains(screen.String(), "[#]") {
		t.Error("board should not be drawn")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionMoveEast)
	g.Step(in)
	if pos, _ := g.Player(); pos != grid.P(3, 4) {
		t.Errorf("player moved to %v while the board was hidden", pos)
	}
}
