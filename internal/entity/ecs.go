// internal/entity/ecs.go
package entity

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/types"
)

// ECS is a map-per-component store. All access happens on the tick thread.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	MoveTargets map[types.EntityID]*component.MoveTarget
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Units       map[types.EntityID]*component.Unit
	Structures  map[types.EntityID]*component.Structure
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Spawners    map[types.EntityID]*component.Spawner
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		MoveTargets: make(map[types.EntityID]*component.MoveTarget),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Units:       make(map[types.EntityID]*component.Unit),
		Structures:  make(map[types.EntityID]*component.Structure),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Spawners:    make(map[types.EntityID]*component.Spawner),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component the entity holds.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.MoveTargets, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Units, id)
	delete(ecs.Structures, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Spawners, id)
}
