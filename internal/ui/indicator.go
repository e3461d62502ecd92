// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PhaseIndicator is the small colored circle showing the current phase.
type PhaseIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw renders the indicator with a short pulse after a click.
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phaseColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, phaseColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, color.RGBA{240, 240, 240, 255}, true)
}

// Contains reports whether a screen coordinate hits the indicator.
func (i *PhaseIndicator) Contains(x, y int) bool {
	dx := float64(x) - float64(i.X)
	dy := float64(y) - float64(i.Y)
	return dx*dx+dy*dy <= float64(i.Radius)*float64(i.Radius)
}

// HandleClick records the click for the pulse animation.
func (i *PhaseIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
