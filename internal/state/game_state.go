// internal/state/game_state.go
package state

import (
	"time"

	game "go-bastion-defense/internal/app"
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState runs the actual game session.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	seed      int64
	face      font.Face
	lastClick time.Time
}

func NewGameState(sm *StateMachine, seed int64, face font.Face) *GameState {
	return &GameState{
		sm:   sm,
		game: game.NewGame(seed, face),
		seed: seed,
		face: face,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.game.Lifecycle.RunState() == component.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			// New-game request: the whole session is rebuilt from scratch.
			g.sm.SetState(NewGameState(g.sm, g.seed, g.face))
			return
		}
		g.game.Update(deltaTime)
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.RequestDefensePhase()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.SelectTower("TOWER_ARROW")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.SelectTower("TOWER_CANNON")
	}

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Debounce against double-fire from held buttons.
		if time.Since(g.lastClick) >= config.ClickCooldown*time.Millisecond {
			g.lastClick = time.Now()
			x, y := ebiten.CursorPosition()
			g.game.HandleClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.game.RemoveTower(float64(x), float64(y))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
}

func (g *GameState) Exit() {}
