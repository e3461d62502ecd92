// internal/state/menu_state.go
package state

import (
	"go-bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the start screen.
type MenuState struct {
	sm   *StateMachine
	seed int64
	face font.Face
}

func NewMenuState(sm *StateMachine, seed int64, face font.Face) *MenuState {
	return &MenuState{sm: sm, seed: seed, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.seed, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "BASTION DEFENSE", m.face, config.ScreenWidth/2-80, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to play", m.face, config.ScreenWidth/2-90, config.ScreenHeight/2+20, config.TextLightColor)
}

func (m *MenuState) Exit() {}
