// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangular UI button.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
	Disabled  bool
	font      font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:      rect,
		Text:      label,
		TextColor: color.RGBA{20, 20, 30, 255},
		BgColor:   color.RGBA{200, 200, 200, 255},
		font:      face,
	}
}

// Contains reports whether a screen coordinate hits the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button; a disabled button is dimmed.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{100, 100, 100, 255}
	}
	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), bg, true)
	vector.StrokeRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), 2, color.RGBA{60, 60, 70, 255}, true)

	bounds := text.BoundString(b.font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.font, tx, ty, b.TextColor)
}
