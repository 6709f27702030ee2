package simulation

import "github.com/RohanPhadnis/ElectricFieldHockey/pkg/physics"

// Play field dimensions. The window adds a control panel strip below
// the field.
const (
	FieldW = 1200
	FieldH = 600
	PanelH = 120
)

// LaunchPoint is where the particle starts and returns on reset.
var LaunchPoint = physics.Vec2{X: 50, Y: FieldH / 2}

// Goal is the target rectangle at the right edge, shared by all levels.
var Goal = physics.Rect{X: FieldW - 50, Y: FieldH/2 - 30, W: 20, H: 60}

// Levels indexes the fixed obstacle lists by level number.
var Levels = [][]physics.Rect{
	{},
	{
		{X: 300, Y: FieldH/2 - 75, W: 20, H: 150},
	},
	{
		{X: FieldW / 3, Y: FieldH/4 - 75, W: 20, H: 150},
		{X: 2 * FieldW / 3, Y: FieldH/2 - 75, W: 20, H: 150},
	},
	{
		{X: FieldW / 5, Y: FieldH / 3, W: 20, H: 2 * FieldH / 3},
		{X: 3 * FieldW / 7, Y: 0, W: 20, H: FieldH / 2},
		{X: 3 * FieldW / 4, Y: FieldH / 3, W: 20, H: 2 * FieldH / 3},
	},
}
