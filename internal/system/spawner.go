// internal/system/spawner.go
package system

import (
	"fmt"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// UnitSpawnSystem is the instantiation side of the round lifecycle: it puts
// unit entities into the world and reports every resolution (arrival or
// kill) back through the dispatcher, which is what drains the lifecycle's
// population counter.
type UnitSpawnSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewUnitSpawnSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *UnitSpawnSystem {
	return &UnitSpawnSystem{ecs: ecs, dispatcher: dispatcher}
}

// SpawnUnit creates one hostile unit at pos walking toward target.
func (s *UnitSpawnSystem) SpawnUnit(defID string, pos, target geom.Vec2) (types.EntityID, error) {
	def, ok := defs.UnitLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("no unit definition for %q", defID)
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.MoveTargets[id] = &component.MoveTarget{X: target.X, Y: target.Y}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.ecs.Units[id] = &component.Unit{
		DefID:      defID,
		ThreatCost: def.ThreatCost,
	}
	return id, nil
}

// ResolveUnit removes the unit and reports how it left the field. A unit
// resolves at most once; later calls are ignored.
func (s *UnitSpawnSystem) ResolveUnit(id types.EntityID, resolution event.Resolution) {
	unit, ok := s.ecs.Units[id]
	if !ok || unit.Resolved {
		return
	}
	unit.Resolved = true

	reward := 0
	if resolution == event.ResolutionKilled {
		reward = unit.ThreatCost
	}
	data := event.UnitResolvedData{
		Handle:     id,
		DefID:      unit.DefID,
		Resolution: resolution,
		Reward:     reward,
	}
	s.ecs.RemoveEntity(id)
	s.dispatcher.Dispatch(event.Event{Type: event.UnitResolved, Data: data})
}

// ClearUnits drops every unit entity without resolving it. Used on reset
// and game over, where no further population accounting must happen.
func (s *UnitSpawnSystem) ClearUnits() {
	for id := range s.ecs.Units {
		s.ecs.RemoveEntity(id)
	}
}

// StageMarkers syncs the visible spawn marker entities with the staged
// points. A marker already occupying a point index keeps its scatter
// radius and hands it back to the point.
func (s *UnitSpawnSystem) StageMarkers(points []*SpawnPoint) {
	existing := make(map[int]float64)
	for id, sp := range s.ecs.Spawners {
		existing[sp.Index] = sp.ScatterRadius
		s.ecs.RemoveEntity(id)
	}

	for i, p := range points {
		if r, ok := existing[i]; ok {
			p.ScatterRadius = r
		}
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: p.Pos.X, Y: p.Pos.Y}
		s.ecs.Spawners[id] = &component.Spawner{
			Index:         i,
			ScatterRadius: p.ScatterRadius,
		}
	}
}
