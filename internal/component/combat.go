// component/combat.go
package component

// Health is remaining hit points.
type Health struct {
	Value int
}

// Combat holds tower attack state.
type Combat struct {
	Damage       int
	FireRate     float64 // shots per second
	FireCooldown float64 // time left until the next shot
	Range        float64 // world units
}
