package system

import (
	"testing"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

func newCombatHarness(t *testing.T) (*CombatSystem, *UnitSpawnSystem, *entity.ECS, *eventRecorder) {
	t.Helper()
	standardCatalog(t)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.UnitResolved, recorder)
	spawn := NewUnitSpawnSystem(ecs, dispatcher)
	return NewCombatSystem(ecs, spawn), spawn, ecs, recorder
}

func addTower(ecs *entity.ECS, x, y float64, damage int, rng float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Combats[id] = &component.Combat{Damage: damage, FireRate: 1.0, Range: rng}
	return id
}

func TestCombat_KillsUnitInRange(t *testing.T) {
	c, spawn, ecs, recorder := newCombatHarness(t)
	addTower(ecs, 0, 0, 60, 100) // one shot kills a grunt
	id, _ := spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 50, Y: 0}, geom.Vec2{X: 50, Y: 0})

	c.Update(0.1)

	if _, alive := ecs.Units[id]; alive {
		t.Fatal("unit should be dead after one 60 damage shot")
	}
	if recorder.count(event.UnitResolved) != 1 {
		t.Fatal("kill must resolve the unit")
	}
	data := recorder.events[0].Data.(event.UnitResolvedData)
	if data.Resolution != event.ResolutionKilled || data.Reward != 10 {
		t.Fatalf("resolution = %+v, want killed with the grunt's threat cost", data)
	}
}

func TestCombat_IgnoresUnitsOutOfRange(t *testing.T) {
	c, spawn, ecs, _ := newCombatHarness(t)
	addTower(ecs, 0, 0, 60, 40)
	id, _ := spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 50, Y: 0}, geom.Vec2{X: 50, Y: 0})

	c.Update(0.1)

	if ecs.Healths[id].Value != 60 {
		t.Fatalf("out-of-range unit took damage, health = %d", ecs.Healths[id].Value)
	}
}

func TestCombat_RespectsCooldown(t *testing.T) {
	c, spawn, ecs, _ := newCombatHarness(t)
	addTower(ecs, 0, 0, 10, 100) // 1 shot per second
	id, _ := spawn.SpawnUnit("UNIT_GRUNT", geom.Vec2{X: 50, Y: 0}, geom.Vec2{X: 50, Y: 0})

	c.Update(0.1) // first shot
	c.Update(0.1) // still cooling down
	c.Update(0.1)

	if ecs.Healths[id].Value != 50 {
		t.Fatalf("health = %d, want 50 after a single shot", ecs.Healths[id].Value)
	}
}
