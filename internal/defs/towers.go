// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds the static data for a placeable tower type.
type TowerDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     int     `json:"cost"`
	Damage   int     `json:"damage"`
	FireRate float64 `json:"fire_rate"` // shots per second
	Range    float64 `json:"range"`     // world units
	Visuals  Visuals `json:"visuals"`
}

// TowerLibrary is the catalog of all tower definitions, mapped by their ID.
var TowerLibrary map[string]TowerDefinition

// DefaultTowerDefs returns the built-in tower catalog.
func DefaultTowerDefs() []TowerDefinition {
	return []TowerDefinition{
		{
			ID: "TOWER_ARROW", Name: "Arrow Tower",
			Cost: 40, Damage: 12, FireRate: 1.5, Range: 130,
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, Radius: 11, StrokeWidth: 2},
		},
		{
			ID: "TOWER_CANNON", Name: "Cannon Tower",
			Cost: 70, Damage: 35, FireRate: 0.6, Range: 110,
			Visuals: Visuals{Color: color.RGBA{255, 120, 40, 255}, Radius: 13, StrokeWidth: 2},
		},
	}
}
