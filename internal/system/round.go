// internal/system/round.go
package system

import (
	"log"
	"math"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/interfaces"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/geom"
)

// RoundContext is the immutable bundle of derived numbers for one round.
// It is rebuilt wholesale at every round start.
type RoundContext struct {
	Round         int
	ThreatBudget  int
	PopulationCap int
	BossQuota     int
}

// MarkerStager keeps visible spawn marker entities in sync with the staged
// points, and lets an occupying marker override a point's scatter radius.
type MarkerStager interface {
	StageMarkers(points []*SpawnPoint)
}

// RoundLifecycle owns the round counter, the phase, and the population in
// flight. It drives the whole building/defense loop: the phase gate decides
// when a round may begin, the composer and allocator produce the wave, the
// spawner collaborator puts units in the world, and unit resolutions drain
// the population counter back to zero.
//
// All mutation happens on the simulation tick; there are no background
// goroutines here.
type RoundLifecycle struct {
	dispatcher *event.Dispatcher
	scheduler  *Scheduler
	gate       *PhaseGate
	budget     BudgetConfig
	composer   *WaveComposer
	allocator  *SpawnPointAllocator
	spawner    interfaces.UnitSpawner
	economy    interfaces.Economy
	locator    interfaces.StructureLocator
	stager     MarkerStager
	rng        *utils.PRNGService

	runState        component.RunState
	phase           component.Phase
	completedRounds int
	buildElapsed    float64
	restDelay       float64

	ctx                RoundContext
	allocation         []string
	spawnPoints        []*SpawnPoint
	anchorAngle        float64
	populationInFlight int
}

func NewRoundLifecycle(
	dispatcher *event.Dispatcher,
	scheduler *Scheduler,
	gate *PhaseGate,
	budget BudgetConfig,
	composer *WaveComposer,
	allocator *SpawnPointAllocator,
	spawner interfaces.UnitSpawner,
	economy interfaces.Economy,
	locator interfaces.StructureLocator,
	stager MarkerStager,
	rng *utils.PRNGService,
	restDelay float64,
) *RoundLifecycle {
	rl := &RoundLifecycle{
		dispatcher: dispatcher,
		scheduler:  scheduler,
		gate:       gate,
		budget:     budget,
		composer:   composer,
		allocator:  allocator,
		spawner:    spawner,
		economy:    economy,
		locator:    locator,
		stager:     stager,
		rng:        rng,
		restDelay:  restDelay,
		runState:   component.NotStarted,
		phase:      component.BuildPhase,
	}
	dispatcher.Subscribe(event.UnitResolved, rl)
	dispatcher.Subscribe(event.AllStructuresDestroyed, rl)
	return rl
}

// NewGame resets the lifecycle into a fresh building phase. Any deferred
// transition from a previous run is cancelled so it cannot fire against the
// reset state.
func (rl *RoundLifecycle) NewGame() {
	rl.scheduler.CancelAll()
	rl.runState = component.Playing
	rl.phase = component.BuildPhase
	rl.completedRounds = 0
	rl.populationInFlight = 0
	rl.buildElapsed = 0
	rl.allocation = nil
	rl.ctx = RoundContext{}
	rl.anchorAngle = geom.NormalizeAngle(rl.rng.Float64() * 2 * math.Pi)
	rl.preStageSpawnPoints(1)
	rl.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{Phase: int(rl.phase)}})
}

// Update advances building-phase time and the deferred-action scheduler.
func (rl *RoundLifecycle) Update(deltaTime float64) {
	if rl.runState != component.Playing {
		return
	}
	if rl.phase == component.BuildPhase {
		rl.buildElapsed += deltaTime
	}
	rl.scheduler.Update(deltaTime)
}

// RequestDefensePhase tries to leave the building phase. Rejections keep
// all state unchanged and surface as a DefenseRequestRejected event; the
// request can simply be repeated on a later tick.
func (rl *RoundLifecycle) RequestDefensePhase() bool {
	if rl.runState != component.Playing {
		rl.reject("game is not running")
		return false
	}
	if rl.phase == component.DefensePhase {
		rl.reject("defense already in progress")
		return false
	}
	if !rl.gate.CanStartDefense(rl.buildElapsed) {
		rl.reject("building phase not over yet")
		return false
	}
	return rl.startRound()
}

// startRound computes the round context, composes and partitions the wave,
// and asks the spawner collaborator to instantiate it. A failure before any
// unit exists aborts the transition: the phase stays Building and the next
// request retries from scratch.
func (rl *RoundLifecycle) startRound() bool {
	round := rl.completedRounds + 1
	ctx := RoundContext{
		Round:         round,
		ThreatBudget:  rl.budget.Budget(round),
		PopulationCap: rl.budget.PopulationCap(round),
		BossQuota:     rl.budget.BossQuota(round),
	}

	allocation := rl.composer.Compose(round, ctx.ThreatBudget, ctx.PopulationCap, ctx.BossQuota)
	for _, id := range allocation {
		if _, ok := defs.UnitLibrary[id]; !ok {
			log.Printf("round %d cannot start: no unit definition for %q", round, id)
			rl.reject("missing unit configuration")
			return false
		}
	}
	if _, _, ok := rl.locator.NearestStructure(rl.allocator.Center); !ok {
		log.Printf("round %d cannot start: no defended structure left to target", round)
		rl.reject("nothing to defend")
		return false
	}

	points := rl.spawnPoints
	if len(points) != rl.allocator.PointCount(round) {
		// Pre-staged points are normally current; regenerate if a reset or
		// config change left them stale.
		points = rl.allocator.GeneratePositions(round, rl.anchorAngle)
	}
	Partition(len(allocation), points)

	spawned := 0
	next := 0
	for _, p := range points {
		for i := 0; i < p.Assigned; i++ {
			id := allocation[next]
			next++
			pos := rl.jitter(p)
			_, targetPos, ok := rl.locator.NearestStructure(pos)
			if !ok {
				continue
			}
			if _, err := rl.spawner.SpawnUnit(id, pos, targetPos); err != nil {
				log.Printf("failed to spawn %s at spawn point: %v", id, err)
				continue
			}
			spawned++
		}
	}
	if spawned == 0 && len(allocation) > 0 {
		log.Printf("round %d aborted: no unit could be spawned", round)
		rl.reject("spawning failed")
		return false
	}

	rl.ctx = ctx
	rl.allocation = allocation
	rl.spawnPoints = points
	rl.populationInFlight = spawned
	rl.phase = component.DefensePhase
	rl.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{Phase: int(rl.phase)}})
	rl.dispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: round})

	// A degenerate empty wave is valid but has nothing to resolve; it
	// counts as defended right away.
	if rl.populationInFlight == 0 {
		rl.roundDefeated()
	}
	return true
}

// OnEvent handles unit resolutions and total structure loss.
func (rl *RoundLifecycle) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitResolved:
		if rl.runState != component.Playing || rl.phase != component.DefensePhase {
			return
		}
		rl.populationInFlight--
		if rl.populationInFlight == 0 {
			rl.roundDefeated()
		}
	case event.AllStructuresDestroyed:
		rl.gameOver()
	}
}

// roundDefeated fires when the population in flight drains to zero: the
// round counts as defended, the reward is granted, and the return to the
// building phase is scheduled after the rest delay. The next round's spawn
// points are pre-staged immediately so the player sees them during the rest.
func (rl *RoundLifecycle) roundDefeated() {
	rl.completedRounds++
	rl.economy.GrantRoundCompletionReward(rl.completedRounds)
	rl.dispatcher.Dispatch(event.Event{Type: event.RoundCompleted, Data: rl.completedRounds})
	rl.preStageSpawnPoints(rl.completedRounds + 1)
	rl.scheduler.After(rl.restDelay, rl.returnToBuilding)
}

func (rl *RoundLifecycle) returnToBuilding() {
	if rl.runState != component.Playing {
		return
	}
	rl.phase = component.BuildPhase
	rl.buildElapsed = 0
	rl.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{Phase: int(rl.phase)}})
}

// gameOver is terminal until the next NewGame. Pending resolutions and the
// deferred phase return are dropped.
func (rl *RoundLifecycle) gameOver() {
	if rl.runState == component.GameOver {
		return
	}
	rl.runState = component.GameOver
	rl.scheduler.CancelAll()
	rl.populationInFlight = 0
	rl.dispatcher.Dispatch(event.Event{Type: event.GameEnded})
}

// preStageSpawnPoints regenerates the spawn point ring for the given round
// and re-stages the visible markers.
func (rl *RoundLifecycle) preStageSpawnPoints(round int) {
	rl.spawnPoints = rl.allocator.GeneratePositions(round, rl.anchorAngle)
	if rl.stager != nil {
		rl.stager.StageMarkers(rl.spawnPoints)
	}
}

// jitter scatters an instantiation position inside the point's local radius.
func (rl *RoundLifecycle) jitter(p *SpawnPoint) geom.Vec2 {
	angle := rl.rng.Float64() * 2 * math.Pi
	dist := rl.rng.Float64() * p.ScatterRadius
	return geom.PointOnCircle(p.Pos, dist, angle)
}

func (rl *RoundLifecycle) reject(reason string) {
	rl.dispatcher.Dispatch(event.Event{Type: event.DefenseRequestRejected, Data: reason})
}

// Accessors used by the app, UI and render layers.

func (rl *RoundLifecycle) Phase() component.Phase       { return rl.phase }
func (rl *RoundLifecycle) RunState() component.RunState { return rl.runState }
func (rl *RoundLifecycle) CompletedRounds() int         { return rl.completedRounds }
func (rl *RoundLifecycle) Context() RoundContext        { return rl.ctx }
func (rl *RoundLifecycle) Allocation() []string         { return rl.allocation }
func (rl *RoundLifecycle) SpawnPoints() []*SpawnPoint   { return rl.spawnPoints }
func (rl *RoundLifecycle) PopulationInFlight() int      { return rl.populationInFlight }
func (rl *RoundLifecycle) BuildElapsed() float64        { return rl.buildElapsed }

// BuildTimeRemaining returns how long until the phase gate opens.
func (rl *RoundLifecycle) BuildTimeRemaining() float64 {
	remaining := rl.gate.MinBuildDuration - rl.buildElapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
