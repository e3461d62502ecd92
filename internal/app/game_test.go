package app

import (
	"testing"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/ui"
	"go-bastion-defense/pkg/geom"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	defs.UseDefaultLibraries()
	return NewGame(42, ui.NewFontFace(16))
}

func TestNewGame_StartsBuildingWithBase(t *testing.T) {
	g := newTestGame(t)
	if g.Lifecycle.RunState() != component.Playing {
		t.Fatal("new game should be running")
	}
	if g.Lifecycle.Phase() != component.BuildPhase {
		t.Fatal("new game should open in the building phase")
	}
	if g.Credits() != config.StartingCredits {
		t.Fatalf("credits = %d, want %d", g.Credits(), config.StartingCredits)
	}
	if len(g.ECS.Structures) != 1 {
		t.Fatalf("structures = %d, want the single base", len(g.ECS.Structures))
	}
}

func TestPlaceTower_DeductsCredits(t *testing.T) {
	g := newTestGame(t)
	if !g.PlaceTower(200, 200) {
		t.Fatal("placement during the building phase should succeed")
	}
	want := config.StartingCredits - defs.TowerLibrary["TOWER_ARROW"].Cost
	if g.Credits() != want {
		t.Fatalf("credits = %d, want %d", g.Credits(), want)
	}
	if len(g.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(g.ECS.Towers))
	}
}

func TestPlaceTower_RejectsWhenBroke(t *testing.T) {
	g := newTestGame(t)
	cost := defs.TowerLibrary["TOWER_ARROW"].Cost
	for g.Credits() >= cost {
		if !g.PlaceTower(float64(100+len(g.ECS.Towers)*50), 200) {
			t.Fatal("affordable placement failed")
		}
	}
	before := g.Credits()
	if g.PlaceTower(500, 500) {
		t.Fatal("placement should fail without credits")
	}
	if g.Credits() != before {
		t.Fatalf("credits changed on rejected placement: %d -> %d", before, g.Credits())
	}
	if g.rejectionMsg == "" {
		t.Fatal("rejected placement should surface a message")
	}
}

func TestRemoveTower_RefundsHalf(t *testing.T) {
	g := newTestGame(t)
	g.PlaceTower(100, 100)
	if !g.RemoveTower(105, 100) {
		t.Fatal("click near the tower should remove it")
	}
	cost := defs.TowerLibrary["TOWER_ARROW"].Cost
	want := config.StartingCredits - cost + cost/2
	if g.Credits() != want {
		t.Fatalf("credits = %d, want %d after half refund", g.Credits(), want)
	}
	if len(g.ECS.Towers) != 0 {
		t.Fatal("tower entity should be gone")
	}
}

func TestSelectTower_IgnoresUnknown(t *testing.T) {
	g := newTestGame(t)
	g.SelectTower("TOWER_CANNON")
	g.SelectTower("TOWER_NONSENSE")
	if g.selectedTower != "TOWER_CANNON" {
		t.Fatalf("selected = %q, want the last valid selection", g.selectedTower)
	}
}

func TestGrantRoundCompletionReward(t *testing.T) {
	g := newTestGame(t)
	g.GrantRoundCompletionReward(2)
	want := config.StartingCredits + config.RoundRewardBase + config.RoundRewardPerRound*2
	if g.Credits() != want {
		t.Fatalf("credits = %d, want %d", g.Credits(), want)
	}
}

func TestNearestStructure_FindsBase(t *testing.T) {
	g := newTestGame(t)
	_, pos, found := g.NearestStructure(geom.Vec2{X: 0, Y: 0})
	if !found {
		t.Fatal("the base should be found")
	}
	center := geom.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	if pos != center {
		t.Fatalf("nearest structure at %+v, want %+v", pos, center)
	}
}

// TestFullRound drives a complete first round: wait out the build gate,
// start the defense and tick until every unit has reached the base.
func TestFullRound(t *testing.T) {
	g := newTestGame(t)

	g.Update(config.MinBuildPhaseDuration + 0.1)
	g.RequestDefensePhase()
	if g.Lifecycle.Phase() != component.DefensePhase {
		t.Fatal("defense phase should start once the gate is open")
	}
	if g.Lifecycle.PopulationInFlight() == 0 {
		t.Fatal("a round-one wave should put units in flight")
	}

	for i := 0; i < 2000 && g.Lifecycle.CompletedRounds() == 0; i++ {
		g.Update(0.05)
	}
	if g.Lifecycle.CompletedRounds() != 1 {
		t.Fatalf("completed rounds = %d, want 1", g.Lifecycle.CompletedRounds())
	}

	// Rest delay, then back to building for round two.
	for i := 0; i < 200 && g.Lifecycle.Phase() != component.BuildPhase; i++ {
		g.Update(0.05)
	}
	if g.Lifecycle.Phase() != component.BuildPhase {
		t.Fatal("lifecycle should return to building after the rest delay")
	}
	if g.Lifecycle.RunState() != component.Playing {
		t.Fatal("surviving the round should keep the game running")
	}

	// Six grunts arrived unhindered: no kill rewards, one round reward.
	want := config.StartingCredits + config.RoundRewardBase + config.RoundRewardPerRound
	if g.Credits() != want {
		t.Fatalf("credits = %d, want %d after the round reward", g.Credits(), want)
	}
}
