package magicsim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/grid"
	"github.com/vovakirdan/magicsim/internal/magic"
)

const (
	tileW       = 3 // characters per tile
	hudHeight   = 2
	legendW     = 24
	legendGap   = 2
	legendLines = 9
)

// layout is where the board lands on the screen.
type layout struct {
	tooSmall   bool
	originX    int // screen column of tile (0, *)
	originY    int // screen row of tile (*, 0)
	showLegend bool
	legendX    int
}

func computeLayout(cols, rows, screenW, screenH int) layout {
	boardW := cols*tileW + 2
	boardH := rows + 2
	if screenW < boardW || screenH < boardH+hudHeight {
		return layout{tooSmall: true}
	}

	l := layout{showLegend: screenW >= boardW+legendGap+legendW && screenH >= hudHeight+legendLines}
	total := boardW
	if l.showLegend {
		total += legendGap + legendW
	}
	left := (screenW - total) / 2
	l.originX = left + 1
	l.originY = hudHeight + 1
	l.legendX = left + boardW + legendGap
	return l
}

// Render draws the board, HUD and legend.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.layout.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderCrates(dst)
	g.renderPlayer(dst)
	g.renderProjectiles(dst)
	if g.layout.showLegend {
		g.renderLegend(dst)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("%d moves, %d casts. R to play again", g.moves, g.casts))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Magic: %s | Moves: %d | Destroyed: %d", g.Title(), g.active, g.moves, g.destroyed)
	if g.mode == ModeClear {
		hud += fmt.Sprintf(" | Left: %d", len(g.crates))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawTextColor(len([]rune(hud))+1, 0, "●", magicColor(g.active))

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	dst.DrawBox(core.NewRect(l.originX-1, l.originY-1, g.cols*tileW+2, g.rows+2), core.ColorGray)
	for row := range g.rows {
		for col := range g.cols {
			x, y := g.tileScreen(grid.P(col, row))
			dst.SetColor(x+1, y, '·', core.ColorDarkGray)
		}
	}
}

func (g *Game) renderCrates(dst *core.Screen) {
	burn := float64(g.cfg.Fire.BurnMS) / 1000
	for i, c := range g.crates {
		x, y := g.tileScreen(c)
		color := crateColor(g.effects[i], burn)
		dst.DrawTextColor(x, y, "[#]", color)
	}
}

// crateColor darkens a burning crate as it approaches destruction.
func crateColor(e magic.StatusEffect, burn float64) core.Color {
	if !e.Burning() {
		return core.ColorBrown
	}
	progress := 1.0
	if burn > 0 {
		progress = e.Elapsed / burn
	}
	switch {
	case progress < 0.4:
		return core.ColorBrightYellow
	case progress < 0.75:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.tileScreen(g.player)
	dst.SetColor(x+1, y, facingGlyph(g.facing), core.ColorBrightWhite)
}

func facingGlyph(d grid.Direction) rune {
	switch d {
	case grid.North:
		return '▲'
	case grid.South:
		return '▼'
	case grid.East:
		return '▶'
	case grid.West:
		return '◀'
	default:
		return '@'
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.projectiles {
		col, row := p.DisplayPosition()
		// Columns are drawn at character resolution, rows at tile resolution.
		x := g.layout.originX + int(math.Round(col*tileW)) + 1
		x = core.Clamp(x, g.layout.originX, g.layout.originX+g.cols*tileW-1)
		y := g.layout.originY + int(math.Round(row))
		dst.SetColor(x, y, '*', magicColor(p.Magic))
	}
}

func magicColor(t magic.Type) core.Color {
	switch t {
	case magic.Fire:
		return core.ColorOrange
	case magic.Water:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

func (g *Game) renderLegend(dst *core.Screen) {
	x := g.layout.legendX
	y := g.layout.originY - 1

	params := g.ActiveParams()
	dst.DrawTextColor(x, y, "Active magic", core.ColorGray)
	dst.DrawTextColor(x, y+1, fmt.Sprintf("%s (power %g)", params.Type, params.Power), magicColor(params.Type))
	dst.DrawTextColor(x, y+2, params.Color.String(), core.ColorDarkGray)

	dst.DrawTextColor(x, y+4, "[#]", core.ColorBrown)
	dst.DrawText(x+4, y+4, "crate")
	dst.DrawTextColor(x, y+5, "[#]", core.ColorOrange)
	dst.DrawText(x+4, y+5, "burning crate")
	dst.DrawTextColor(x, y+6, " ▲ ", core.ColorBrightWhite)
	dst.DrawText(x+4, y+6, "you, facing")
	dst.DrawTextColor(x, y+7, " * ", core.ColorOrange)
	dst.DrawText(x+4, y+7, "projectile")
}

// tileScreen returns the screen cell of the left edge of a tile.
func (g *Game) tileScreen(p grid.Position) (x, y int) {
	return g.layout.originX + p.Col*tileW, g.layout.originY + p.Row
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
