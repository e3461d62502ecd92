// component/structure.go
package component

// Structure marks a defended building. The game is lost when the last one falls.
type Structure struct{}

// Tower marks a player-placed tower.
type Tower struct {
	DefID string // ID from the tower catalog
}

// Spawner is a marker entity occupying a spawn point; its scatter radius
// jitters unit instantiation around the point.
type Spawner struct {
	Index         int
	ScatterRadius float64
}
