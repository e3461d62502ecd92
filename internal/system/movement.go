// internal/system/movement.go
package system

import (
	"math"

	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/types"
)

// MovementSystem walks units straight toward their target. On contact the
// unit damages the structure it reached and resolves as arrived.
type MovementSystem struct {
	ecs           *entity.ECS
	dispatcher    *event.Dispatcher
	spawnSystem   *UnitSpawnSystem
	contactDamage int
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, spawnSystem *UnitSpawnSystem, contactDamage int) *MovementSystem {
	return &MovementSystem{
		ecs:           ecs,
		dispatcher:    dispatcher,
		spawnSystem:   spawnSystem,
		contactDamage: contactDamage,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var arrived []types.EntityID

	for id := range s.ecs.Units {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		target, hasTarget := s.ecs.MoveTargets[id]
		if !hasPos || !hasVel || !hasTarget {
			continue
		}

		dx := target.X - pos.X
		dy := target.Y - pos.Y
		dist := math.Hypot(dx, dy)
		moveDistance := vel.Speed * deltaTime

		if dist <= moveDistance {
			pos.X = target.X
			pos.Y = target.Y
			arrived = append(arrived, id)
		} else {
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
		}
	}

	// Resolution mutates the unit map; do it outside the iteration.
	for _, id := range arrived {
		s.unitArrived(id)
	}
}

func (s *MovementSystem) unitArrived(id types.EntityID) {
	pos := s.ecs.Positions[id]
	if pos != nil {
		if structID, ok := s.nearestStructure(pos.X, pos.Y); ok {
			s.damageStructure(structID)
		}
	}
	s.spawnSystem.ResolveUnit(id, event.ResolutionArrived)
}

func (s *MovementSystem) nearestStructure(x, y float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := math.MaxFloat64
	found := false
	for id := range s.ecs.Structures {
		sp, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := math.Hypot(sp.X-x, sp.Y-y)
		if d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

func (s *MovementSystem) damageStructure(id types.EntityID) {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}
	health.Value -= s.contactDamage
	if health.Value > 0 {
		return
	}
	s.ecs.RemoveEntity(id)
	s.dispatcher.Dispatch(event.Event{Type: event.StructureDestroyed, Data: id})
	if len(s.ecs.Structures) == 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.AllStructuresDestroyed})
	}
}
