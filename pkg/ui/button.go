package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/RohanPhadnis/ElectricFieldHockey/pkg/physics"
)

// --- Button ---
type Button struct {
	Label string
	Box   physics.Rect
	Color color.RGBA
}

// NewButton sizes the hit box from the label, 25px per character.
func NewButton(label string, x, y float64, clr color.RGBA) *Button {
	return &Button{
		Label: label,
		Box:   physics.Rect{X: x, Y: y, W: float64(len(label)) * 25, H: 50},
		Color: clr,
	}
}

func (b *Button) Hit(x, y float64) bool {
	return b.Box.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image, hover bool) {
	clr := b.Color
	if hover {
		clr = color.RGBA{
			R: clr.R/2 + 110,
			G: clr.G/2 + 110,
			B: clr.B/2 + 110,
			A: 255,
		}
	}
	vector.DrawFilledRect(screen, float32(b.Box.X), float32(b.Box.Y), float32(b.Box.W), float32(b.Box.H), clr, false)
	text.Draw(screen, b.Label, basicfont.Face7x13, int(b.Box.X)+10, int(b.Box.Y)+30, color.White)
}
