// internal/defs/units.go
package defs

import (
	"image/color"
	"sort"
)

// BossUnitID is the one unit type placed by the boss quota instead of the
// budget fill. It must exist in every catalog.
const BossUnitID = "UNIT_BOSS"

// UnitDefinition holds all the static data for a hostile unit type.
// ThreatCost doubles as the kill reward.
type UnitDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ThreatCost  int     `json:"threat_cost"`
	UnlockRound int     `json:"unlock_round"`
	Health      int     `json:"health"`
	Speed       float64 `json:"speed"`
	Visuals     Visuals `json:"visuals"`
}

// UnitLibrary is the catalog of all unit definitions, mapped by their ID.
var UnitLibrary map[string]UnitDefinition

// DefaultUnitDefs returns the built-in catalog used when no units file is
// supplied. The basic type unlocks at round 1 so the greedy fill always has
// at least one candidate.
func DefaultUnitDefs() []UnitDefinition {
	return []UnitDefinition{
		{
			ID: "UNIT_GRUNT", Name: "Grunt",
			ThreatCost: 10, UnlockRound: 1,
			Health: 60, Speed: 70.0,
			Visuals: Visuals{Color: color.RGBA{200, 200, 200, 255}, Radius: 9},
		},
		{
			ID: "UNIT_RUNNER", Name: "Runner",
			ThreatCost: 15, UnlockRound: 3,
			Health: 45, Speed: 120.0,
			Visuals: Visuals{Color: color.RGBA{80, 200, 120, 255}, Radius: 7},
		},
		{
			ID: "UNIT_BRUTE", Name: "Brute",
			ThreatCost: 30, UnlockRound: 4,
			Health: 180, Speed: 45.0,
			Visuals: Visuals{Color: color.RGBA{180, 120, 60, 255}, Radius: 12},
		},
		{
			ID: "UNIT_WARLOCK", Name: "Warlock",
			ThreatCost: 45, UnlockRound: 6,
			Health: 140, Speed: 60.0,
			Visuals: Visuals{Color: color.RGBA{150, 80, 220, 255}, Radius: 10},
		},
		{
			ID: BossUnitID, Name: "Boss",
			ThreatCost: 150, UnlockRound: 7,
			Health: 900, Speed: 35.0,
			Visuals: Visuals{Color: color.RGBA{220, 40, 40, 255}, Radius: 18, StrokeWidth: 2},
		},
	}
}

// UnlockedUnits returns every non-boss definition available at the given
// round. Bosses are placed by quota, never by the budget fill.
func UnlockedUnits(round int) []UnitDefinition {
	var out []UnitDefinition
	for _, def := range UnitLibrary {
		if def.ID == BossUnitID {
			continue
		}
		if def.UnlockRound <= round {
			out = append(out, def)
		}
	}
	// Map iteration order is random; a stable order keeps seeded runs
	// reproducible.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
