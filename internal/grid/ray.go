package grid

// ProjectileResolution describes where a cast projectile stops.
// Hit is nil unless the projectile landed on an obstacle, in which case it
// equals End.
type ProjectileResolution struct {
	End Position
	Hit *Position
}

// HitObstacle reports whether the projectile struck an obstacle.
func (r ProjectileResolution) HitObstacle() bool {
	return r.Hit != nil
}

// Distance returns the number of tiles travelled from start.
func (r ProjectileResolution) Distance(start Position) int {
	return r.End.Manhattan(start)
}

// CastRay marches a projectile from start one tile at a time along d.
//
// It stops at the board edge (End is the last tile reached, no hit), on the
// first obstacle (End and Hit are the obstacle's tile), or after maxTiles
// steps. maxTiles <= 0 leaves the projectile at start.
func CastRay(start Position, d Direction, obstacles []Position, cols, rows, maxTiles int) ProjectileResolution {
	current := start
	for step := 0; step < maxTiles; step++ {
		next := Move(current, d, cols, rows)
		if next == current {
			return ProjectileResolution{End: current}
		}
		if IsBlocked(next, obstacles) {
			hit := next
			return ProjectileResolution{End: next, Hit: &hit}
		}
		current = next
	}
	return ProjectileResolution{End: current}
}
