// Package grid implements discrete tile-grid motion: single-tile moves with
// boundary clamping, obstacle lookup, push-based crate movement and
// ray-marched projectile travel.
//
// Every function is pure. Inputs are never mutated and returned slices are
// freshly allocated, so callers own them and may call into the package from
// any goroutine.
package grid

import (
	"fmt"
	"strings"
)

// Position addresses one tile of the board.
// Valid range is 0 <= Col < cols and 0 <= Row < rows; board dimensions are
// supplied by the caller on every call.
type Position struct {
	Col int
	Row int
}

// P is a convenience constructor for Position.
func P(col, row int) Position {
	return Position{Col: col, Row: row}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	dc := p.Col - other.Col
	dr := p.Row - other.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// Direction is one of the four cardinal move directions.
type Direction uint8

const (
	North Direction = iota // row - 1
	South                  // row + 1
	East                   // col + 1
	West                   // col - 1
)

// Directions lists all directions in declaration order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the (dcol, drow) offset for one step in this direction.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection converts a string to a Direction.
// Accepts full names and single-letter forms ("n", "s", "e", "w").
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return North, false
	}
}

// Move steps pos one tile in direction d, clamped to [0,cols-1] x [0,rows-1].
//
// At a boundary in the direction of travel the input position is returned
// unchanged; other resolvers use that to detect a boundary stop.
// Out-of-range input positions are the caller's responsibility.
func Move(pos Position, d Direction, cols, rows int) Position {
	col, row := pos.Col, pos.Row
	switch d {
	case North:
		row = max(0, row-1)
	case South:
		row = min(rows-1, row+1)
	case East:
		col = min(cols-1, col+1)
	case West:
		col = max(0, col-1)
	}
	return Position{Col: col, Row: row}
}

// InBounds reports whether pos lies on a cols x rows board.
func InBounds(pos Position, cols, rows int) bool {
	return pos.Col >= 0 && pos.Col < cols && pos.Row >= 0 && pos.Row < rows
}

// IsBlocked reports whether some obstacle occupies exactly pos.
func IsBlocked(pos Position, obstacles []Position) bool {
	return IndexOf(pos, obstacles) >= 0
}

// IndexOf returns the index of the first obstacle at pos, or -1.
func IndexOf(pos Position, obstacles []Position) int {
	for i, o := range obstacles {
		if o == pos {
			return i
		}
	}
	return -1
}

// clonePositions returns a fresh copy of ps. A nil input yields an empty,
// non-nil slice so callers can always append or range safely.
func clonePositions(ps []Position) []Position {
	out := make([]Position, len(ps))
	copy(out, ps)
	return out
}
