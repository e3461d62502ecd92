// internal/system/combat.go
package system

import (
	"math"

	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/types"
)

// CombatSystem runs tower fire: plain distance and cooldown checks, one
// shot at the nearest unit in range.
type CombatSystem struct {
	ecs         *entity.ECS
	spawnSystem *UnitSpawnSystem
}

func NewCombatSystem(ecs *entity.ECS, spawnSystem *UnitSpawnSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, spawnSystem: spawnSystem}
}

func (s *CombatSystem) Update(deltaTime float64) {
	var killed []types.EntityID

	for towerID, combat := range s.ecs.Combats {
		towerPos, ok := s.ecs.Positions[towerID]
		if !ok {
			continue
		}
		combat.FireCooldown -= deltaTime
		if combat.FireCooldown > 0 {
			continue
		}

		targetID, found := s.nearestUnitInRange(towerPos.X, towerPos.Y, combat.Range)
		if !found {
			continue
		}
		combat.FireCooldown = 1.0 / combat.FireRate

		health := s.ecs.Healths[targetID]
		if health == nil {
			continue
		}
		health.Value -= combat.Damage
		if health.Value <= 0 {
			killed = append(killed, targetID)
		}
	}

	for _, id := range killed {
		s.spawnSystem.ResolveUnit(id, event.ResolutionKilled)
	}
}

func (s *CombatSystem) nearestUnitInRange(x, y, rng float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := math.MaxFloat64
	found := false
	for id, unit := range s.ecs.Units {
		if unit.Resolved {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := math.Hypot(pos.X-x, pos.Y-y)
		if d <= rng && d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}
