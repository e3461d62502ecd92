// internal/system/spawn.go
package system

import (
	"math"

	"go-bastion-defense/pkg/geom"
)

// SpawnPoint is one spatial origin a slice of the wave spawns from.
type SpawnPoint struct {
	Pos           geom.Vec2
	ScatterRadius float64 // instantiation jitter only, no allocation meaning
	Assigned      int
}

// SpawnPointAllocator decides how many spawn points a round uses, where
// they sit, and which contiguous slice of the wave each one spawns.
type SpawnPointAllocator struct {
	Center         geom.Vec2
	Radius         float64
	RoundStep      int // rounds per extra spawn point
	DefaultScatter float64
}

// PointCount returns the number of spawn points active at the given round.
// One more point unlocks every RoundStep rounds.
func (a *SpawnPointAllocator) PointCount(round int) int {
	n := (round-1)/a.RoundStep + 1
	if n < 1 {
		n = 1
	}
	return n
}

// GeneratePositions places the round's spawn points evenly on the circle.
// The first point sits at anchorAngle so it lines up with whatever spawn
// marker the player is already looking at.
func (a *SpawnPointAllocator) GeneratePositions(round int, anchorAngle float64) []*SpawnPoint {
	count := a.PointCount(round)
	step := 2 * math.Pi / float64(count)

	points := make([]*SpawnPoint, count)
	for i := 0; i < count; i++ {
		angle := geom.NormalizeAngle(anchorAngle + float64(i)*step)
		points[i] = &SpawnPoint{
			Pos:           geom.PointOnCircle(a.Center, a.Radius, angle),
			ScatterRadius: a.DefaultScatter,
		}
	}
	return points
}

// Partition splits total units across the points as evenly as possible.
// The first total%n points take the extra unit, so placement of the
// remainder is deterministic.
func Partition(total int, points []*SpawnPoint) {
	if len(points) == 0 {
		return
	}
	base := total / len(points)
	remainder := total % len(points)
	for i, p := range points {
		p.Assigned = base
		if i < remainder {
			p.Assigned++
		}
	}
}
