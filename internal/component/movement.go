// component/movement.go
package component

// Position is a world-space position.
type Position struct {
	X, Y float64
}

// Velocity is movement speed in world units per second.
type Velocity struct {
	Speed float64
}

// MoveTarget is where a unit is walking. The position is fixed at spawn
// time, so a destroyed target does not stall the walker.
type MoveTarget struct {
	X, Y float64
}
