// internal/ui/round_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RoundIndicator shows the active round number in roman numerals.
type RoundIndicator struct {
	X, Y      int
	Color     color.RGBA
	BossColor color.RGBA
	font      font.Face
}

func NewRoundIndicator(x, y int, face font.Face) *RoundIndicator {
	return &RoundIndicator{
		X:         x,
		Y:         y,
		Color:     color.RGBA{70, 130, 180, 255},
		BossColor: color.RGBA{220, 60, 60, 255},
		font:      face,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the round number; boss rounds draw in the boss color.
func (i *RoundIndicator) Draw(screen *ebiten.Image, roundNumber int, bossRound bool) {
	if roundNumber <= 0 {
		return
	}
	textColor := i.Color
	if bossRound {
		textColor = i.BossColor
	}
	s := toRoman(roundNumber)
	bounds := text.BoundString(i.font, s)
	text.Draw(screen, s, i.font, i.X-bounds.Dx()/2, i.Y, textColor)
}
