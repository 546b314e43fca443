package magicsim

import (
	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

// Projectile is a cast in flight. Its path is resolved when it is cast;
// the hit is applied when Age reaches Duration.
type Projectile struct {
	ID       int
	Magic    magic.Type
	Start    grid.Position
	End      grid.Position
	Hit      *grid.Position
	Age      float64 // seconds since cast
	Duration float64 // seconds in flight
}

// Progress returns the flight progress in [0, 1].
func (p Projectile) Progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	return core.ClampF(p.Age/p.Duration, 0, 1)
}

// Done reports whether the projectile has landed.
func (p Projectile) Done() bool {
	return p.Age >= p.Duration
}

// DisplayPosition returns the fractional tile the projectile is drawn at.
// Motion eases out, slowing down near the end of the path.
func (p Projectile) DisplayPosition() (col, row float64) {
	t := core.EaseOutCubic(p.Progress())
	col = core.Lerp(float64(p.Start.Col), float64(p.End.Col), t)
	row = core.Lerp(float64(p.Start.Row), float64(p.End.Row), t)
	return col, row
}
