package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const handleRadius = 10

// --- Slider ---
//
// A horizontal track mapping the handle position onto an integer
// domain [Min, Max].
type Slider struct {
	Label    string
	X, Y     float64 // left end of the track
	Width    float64
	Min, Max int
	Handle   float64 // handle x position, within [X, X+Width]
	Held     bool
}

func NewSlider(label string, x, y float64, min, max int) *Slider {
	return &Slider{
		Label:  label,
		X:      x,
		Y:      y,
		Width:  100,
		Min:    min,
		Max:    max,
		Handle: x,
	}
}

// Value is the handle position mapped onto the domain, rounded.
func (s *Slider) Value() int {
	return int(math.Round(float64(s.Max-s.Min)*(s.Handle-s.X)/s.Width)) + s.Min
}

// Hit tests a click against the handle.
func (s *Slider) Hit(x, y float64) bool {
	return x >= s.Handle-handleRadius && x <= s.Handle+handleRadius &&
		y >= s.Y-handleRadius && y <= s.Y+handleRadius
}

// Drag moves the handle to x. Positions off the track are ignored, so
// the value stays clamped to the domain.
func (s *Slider) Drag(x float64) {
	if x < s.X || x > s.X+s.Width {
		return
	}
	s.Handle = x
}

func (s *Slider) Draw(screen *ebiten.Image) {
	black := color.RGBA{0, 0, 0, 255}
	vector.StrokeLine(screen, float32(s.X), float32(s.Y), float32(s.X+s.Width), float32(s.Y), 2, black, false)
	vector.DrawFilledCircle(screen, float32(s.Handle), float32(s.Y), handleRadius, black, false)
	text.Draw(screen, fmt.Sprint(s.Min), basicfont.Face7x13, int(s.X), int(s.Y)-12, black)
	text.Draw(screen, fmt.Sprint(s.Max), basicfont.Face7x13, int(s.X+s.Width), int(s.Y)-12, black)
	text.Draw(screen, fmt.Sprintf("%s: %d", s.Label, s.Value()), basicfont.Face7x13, int(s.X), int(s.Y)+30, black)
}
