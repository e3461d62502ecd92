// cmd/game/main.go
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/state"
	"go-bastion-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var seed int64
	if v := os.Getenv("SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Invalid SEED %q, using time-based seed", v)
		} else {
			seed = parsed
		}
	}

	loadDefinitions()

	face := ui.NewFontFace(16)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, seed, face))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	title := os.Getenv("WINDOW_TITLE")
	if title == "" {
		title = "Bastion Defense"
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// loadDefinitions fills the catalogs from the configured JSON files,
// degrading to the built-in defaults when a file is missing or broken.
func loadDefinitions() {
	defs.UseDefaultLibraries()

	// The loaders leave the current library untouched on failure, so a bad
	// file just means the defaults stay in place.
	if path := os.Getenv("UNIT_DEFS"); path != "" {
		if err := defs.LoadUnitDefinitions(path); err != nil {
			log.Printf("Unit definitions: %v, keeping defaults", err)
		}
	}
	if path := os.Getenv("TOWER_DEFS"); path != "" {
		if err := defs.LoadTowerDefinitions(path); err != nil {
			log.Printf("Tower definitions: %v, keeping defaults", err)
		}
	}
}
