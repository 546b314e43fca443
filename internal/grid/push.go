package grid

// MoveOutcome is the result of TryMove.
//
// On failure Player equals the input player position and Obstacles holds the
// input obstacles unchanged, so callers can compare against their own state
// to decide whether anything moved.
type MoveOutcome struct {
	Success   bool
	Player    Position
	Obstacles []Position
}

// Pushed reports whether the move relocated an obstacle.
// It compares the outcome against the obstacle set the move started from.
func (o MoveOutcome) Pushed(before []Position) bool {
	if !o.Success || len(before) != len(o.Obstacles) {
		return false
	}
	for i := range before {
		if before[i] != o.Obstacles[i] {
			return true
		}
	}
	return false
}

// TryMove resolves one player step in direction d, pushing a crate if one
// occupies the destination tile.
//
//   - Destination free: the player moves, obstacles are unchanged.
//   - Destination holds an obstacle: it is pushed one tile further, unless
//     that tile is off the board or holds another obstacle, in which case
//     nothing moves and Success is false.
//
// At most one obstacle is pushed per move; chains of crates never move.
// The returned Obstacles slice is always a fresh copy.
func TryMove(player Position, d Direction, obstacles []Position, cols, rows int) MoveOutcome {
	next := Move(player, d, cols, rows)

	idx := IndexOf(next, obstacles)
	if idx < 0 {
		return MoveOutcome{
			Success:   true,
			Player:    next,
			Obstacles: clonePositions(obstacles),
		}
	}

	beyond := Move(next, d, cols, rows)
	if beyond == next || IsBlocked(beyond, obstacles) {
		return MoveOutcome{
			Success:   false,
			Player:    player,
			Obstacles: clonePositions(obstacles),
		}
	}

	moved := clonePositions(obstacles)
	// Duplicate entries at next all travel together; they describe one tile.
	for i := range moved {
		if moved[i] == next {
			moved[i] = beyond
		}
	}

	return MoveOutcome{
		Success:   true,
		Player:    next,
		Obstacles: moved,
	}
}
