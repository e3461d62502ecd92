// internal/app/game.go
package app

import (
	"fmt"
	"image"
	"log"
	"math"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/system"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/internal/ui"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Game is the composition root: it wires the ECS, the event dispatcher and
// every system together and owns the per-tick update order. There is no
// ambient global state; collaborators get the pieces they need by reference.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem    *system.UnitSpawnSystem
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	RenderSystem   *system.RenderSystem
	Lifecycle      *system.RoundLifecycle

	FontFace font.Face

	credits       int
	gameTime      float64
	selectedTower string

	// Transient UI feedback for rejected phase requests.
	rejectionMsg   string
	rejectionTimer float64

	indicator      *ui.PhaseIndicator
	roundIndicator *ui.RoundIndicator
	startButton    *ui.Button
}

// NewGame builds a fresh game. Seed 0 means a time-based seed; tests pass a
// fixed one.
func NewGame(seed int64, face font.Face) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		FontFace:        face,
		credits:         config.StartingCredits,
		selectedTower:   "TOWER_ARROW",
	}

	g.SpawnSystem = system.NewUnitSpawnSystem(ecs, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher, g.SpawnSystem, config.UnitContactDamage)
	g.CombatSystem = system.NewCombatSystem(ecs, g.SpawnSystem)
	g.RenderSystem = system.NewRenderSystem(ecs)

	center := geom.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	allocator := &system.SpawnPointAllocator{
		Center:         center,
		Radius:         config.SpawnCircleRadius,
		RoundStep:      config.SpawnPointRoundStep,
		DefaultScatter: config.DefaultScatterRadius,
	}
	gate := &system.PhaseGate{MinBuildDuration: config.MinBuildPhaseDuration}

	g.Lifecycle = system.NewRoundLifecycle(
		dispatcher,
		system.NewScheduler(),
		gate,
		system.DefaultBudgetConfig(),
		system.NewWaveComposer(rng),
		allocator,
		g.SpawnSystem,
		g, // economy
		g, // structure locator
		g.SpawnSystem,
		rng,
		config.RoundRestDelay,
	)

	dispatcher.Subscribe(event.UnitResolved, g)
	dispatcher.Subscribe(event.DefenseRequestRejected, g)
	dispatcher.Subscribe(event.GameEnded, g)

	g.spawnBase(center)
	g.initUI(face)
	g.Lifecycle.NewGame()
	return g
}

// spawnBase places the defended structure at the world center.
func (g *Game) spawnBase(center geom.Vec2) {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	g.ECS.Healths[id] = &component.Health{Value: config.StructureHealth}
	g.ECS.Structures[id] = &component.Structure{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.StructureColor,
		Radius:    16,
		HasStroke: true,
	}
}

func (g *Game) initUI(face font.Face) {
	g.indicator = ui.NewPhaseIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	g.roundIndicator = ui.NewRoundIndicator(config.ScreenWidth/2, 40, face)
	g.startButton = ui.NewButton(image.Rect(
		config.ScreenWidth/2-config.StartButtonWidth/2,
		config.ScreenHeight-config.StartButtonHeight-12,
		config.ScreenWidth/2+config.StartButtonWidth/2,
		config.ScreenHeight-12,
	), "Start Defense", face)
	g.startButton.TextColor = config.TextDarkColor
}

// Update runs one simulation tick.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	if g.rejectionTimer > 0 {
		g.rejectionTimer -= deltaTime
		if g.rejectionTimer <= 0 {
			g.rejectionMsg = ""
		}
	}

	g.Lifecycle.Update(deltaTime)

	if g.Lifecycle.RunState() != component.Playing {
		return
	}
	if g.Lifecycle.Phase() == component.DefensePhase {
		g.MovementSystem.Update(deltaTime)
		g.CombatSystem.Update(deltaTime)
	}

	g.startButton.Disabled = g.Lifecycle.Phase() != component.BuildPhase ||
		g.Lifecycle.BuildTimeRemaining() > 0
}

// OnEvent collects kill rewards and UI feedback.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitResolved:
		if data, ok := e.Data.(event.UnitResolvedData); ok {
			g.credits += data.Reward
		}
	case event.DefenseRequestRejected:
		if reason, ok := e.Data.(string); ok {
			g.rejectionMsg = reason
			g.rejectionTimer = 2.0
		}
	case event.GameEnded:
		// Units still walking belong to a finished game; no resolutions
		// may be accounted past this point.
		g.SpawnSystem.ClearUnits()
	}
}

// GrantRoundCompletionReward implements interfaces.Economy.
func (g *Game) GrantRoundCompletionReward(round int) {
	reward := config.RoundRewardBase + config.RoundRewardPerRound*round
	g.credits += reward
	log.Printf("round %d defended, +%d credits", round, reward)
}

// NearestStructure implements interfaces.StructureLocator.
func (g *Game) NearestStructure(pos geom.Vec2) (types.EntityID, geom.Vec2, bool) {
	var best types.EntityID
	var bestPos geom.Vec2
	bestDist := math.MaxFloat64
	found := false
	for id := range g.ECS.Structures {
		sp, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		p := geom.Vec2{X: sp.X, Y: sp.Y}
		if d := geom.Dist(p, pos); d < bestDist {
			best, bestPos, bestDist, found = id, p, d, true
		}
	}
	return best, bestPos, found
}

// RequestDefensePhase forwards the player's start request to the lifecycle.
func (g *Game) RequestDefensePhase() {
	g.indicator.HandleClick()
	g.Lifecycle.RequestDefensePhase()
}

// SelectTower picks the tower type placed by the next click.
func (g *Game) SelectTower(defID string) {
	if _, ok := defs.TowerLibrary[defID]; ok {
		g.selectedTower = defID
	}
}

// PlaceTower builds the selected tower at a world position during the
// building phase. Unknown definitions and missing credits are logged and
// skipped, never fatal.
func (g *Game) PlaceTower(x, y float64) bool {
	if g.Lifecycle.Phase() != component.BuildPhase || g.Lifecycle.RunState() != component.Playing {
		return false
	}
	def, ok := defs.TowerLibrary[g.selectedTower]
	if !ok {
		log.Printf("no tower definition for %q", g.selectedTower)
		return false
	}
	if g.credits < def.Cost {
		g.rejectionMsg = "not enough credits"
		g.rejectionTimer = 2.0
		return false
	}

	g.credits -= def.Cost
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID}
	g.ECS.Combats[id] = &component.Combat{
		Damage:   def.Damage,
		FireRate: def.FireRate,
		Range:    def.Range,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return true
}

// RemoveTower refunds and removes the tower nearest to the click, if any.
func (g *Game) RemoveTower(x, y float64) bool {
	if g.Lifecycle.Phase() != component.BuildPhase {
		return false
	}
	for id, tower := range g.ECS.Towers {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if math.Hypot(pos.X-x, pos.Y-y) <= 14 {
			if def, ok := defs.TowerLibrary[tower.DefID]; ok {
				g.credits += def.Cost / 2
			}
			g.ECS.RemoveEntity(id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved})
			return true
		}
	}
	return false
}

// HandleClick routes a left click: UI first, then tower placement.
func (g *Game) HandleClick(x, y int) {
	if g.indicator.Contains(x, y) || (g.startButton.Contains(x, y) && !g.startButton.Disabled) {
		g.RequestDefensePhase()
		return
	}
	g.PlaceTower(float64(x), float64(y))
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.RenderSystem.Draw(screen, g.Lifecycle.SpawnPoints())

	phaseColor := config.BuildStateColor
	if g.Lifecycle.Phase() == component.DefensePhase {
		phaseColor = config.WaveStateColor
	}
	if g.Lifecycle.RunState() == component.GameOver {
		phaseColor = config.GameOverColor
	}
	g.indicator.Draw(screen, phaseColor)

	activeRound := g.Lifecycle.CompletedRounds() + 1
	bossRound := system.DefaultBudgetConfig().BossQuota(activeRound) > 0
	g.roundIndicator.Draw(screen, activeRound, bossRound)

	if g.Lifecycle.Phase() == component.BuildPhase && g.Lifecycle.RunState() == component.Playing {
		g.startButton.Draw(screen)
	}

	hud := fmt.Sprintf("Credits: %d", g.credits)
	if g.Lifecycle.Phase() == component.DefensePhase {
		hud += fmt.Sprintf("   In flight: %d", g.Lifecycle.PopulationInFlight())
	} else if remaining := g.Lifecycle.BuildTimeRemaining(); remaining > 0 {
		hud += fmt.Sprintf("   Defense in: %.0fs", math.Ceil(remaining))
	}
	text.Draw(screen, hud, g.FontFace, 16, 28, config.TextLightColor)

	if g.rejectionMsg != "" {
		text.Draw(screen, g.rejectionMsg, g.FontFace, 16, 52, config.WaveStateColor)
	}
	if g.Lifecycle.RunState() == component.GameOver {
		text.Draw(screen, "GAME OVER - press R to restart", g.FontFace,
			config.ScreenWidth/2-140, config.ScreenHeight/2, config.TextLightColor)
	}
}

// Credits returns the player's current credit balance.
func (g *Game) Credits() int {
	return g.credits
}

// GameTime returns elapsed simulation time.
func (g *Game) GameTime() float64 {
	return g.gameTime
}
