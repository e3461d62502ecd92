package system

import (
	"testing"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

func newMovementHarness(t *testing.T) (*MovementSystem, *UnitSpawnSystem, *entity.ECS, *eventRecorder) {
	t.Helper()
	standardCatalog(t)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.UnitResolved, recorder)
	dispatcher.Subscribe(event.StructureDestroyed, recorder)
	dispatcher.Subscribe(event.AllStructuresDestroyed, recorder)
	spawn := NewUnitSpawnSystem(ecs, dispatcher)
	return NewMovementSystem(ecs, dispatcher, spawn, 10), spawn, ecs, recorder
}

func addStructure(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Structures[id] = &component.Structure{}
	return id
}

func TestMovement_WalksTowardTarget(t *testing.T) {
	m, spawn, ecs, _ := newMovementHarness(t)
	addStructure(ecs, 100, 0, 200)
	id, _ := spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0})

	m.Update(0.1)
	pos := ecs.Positions[id]
	if pos.X <= 0 {
		t.Fatalf("unit did not move toward the target, x = %.2f", pos.X)
	}
	if pos.Y != 0 {
		t.Fatalf("unit drifted off the straight line, y = %.2f", pos.Y)
	}
}

func TestMovement_ArrivalDamagesStructureAndResolves(t *testing.T) {
	m, spawn, ecs, recorder := newMovementHarness(t)
	structID := addStructure(ecs, 10, 0, 200)
	spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 10, Y: 0})

	// Plenty of time to cover 10 units of distance.
	for i := 0; i < 100; i++ {
		m.Update(0.1)
	}

	if ecs.Healths[structID].Value != 190 {
		t.Fatalf("structure health = %d, want 190 after one hit", ecs.Healths[structID].Value)
	}
	if recorder.count(event.UnitResolved) != 1 {
		t.Fatal("arriving unit must resolve exactly once")
	}
	data := recorder.events[0].Data.(event.UnitResolvedData)
	if data.Resolution != event.ResolutionArrived {
		t.Fatal("arrival must resolve as Arrived, not Killed")
	}
}

func TestMovement_LastStructureFallingEndsGame(t *testing.T) {
	m, spawn, ecs, recorder := newMovementHarness(t)
	addStructure(ecs, 10, 0, 10) // one contact hit destroys it
	spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 10, Y: 0})

	for i := 0; i < 100; i++ {
		m.Update(0.1)
	}

	if len(ecs.Structures) != 0 {
		t.Fatal("structure should be destroyed")
	}
	if recorder.count(event.StructureDestroyed) != 1 {
		t.Fatal("StructureDestroyed must fire")
	}
	if recorder.count(event.AllStructuresDestroyed) != 1 {
		t.Fatal("AllStructuresDestroyed must fire when the last structure falls")
	}
}
