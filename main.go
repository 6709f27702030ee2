package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"github.com/RohanPhadnis/ElectricFieldHockey/pkg/physics"
	"github.com/RohanPhadnis/ElectricFieldHockey/pkg/simulation"
	"github.com/RohanPhadnis/ElectricFieldHockey/pkg/ui"
)

var (
	colorBG     = color.RGBA{125, 125, 125, 255}
	colorBlack  = color.RGBA{0, 0, 0, 255}
	colorRed    = color.RGBA{255, 0, 0, 255}
	colorBlue   = color.RGBA{0, 0, 255, 255}
	colorPurple = color.RGBA{150, 0, 150, 255}
)

// Game ---
type Game struct {
	world *simulation.World

	// home screen
	playBtn     *ui.Button
	quitBtn     *ui.Button
	levelSlider *ui.Slider

	// play screen
	addPosBtn    *ui.Button
	addNegBtn    *ui.Button
	runBtn       *ui.Button
	resetBtn     *ui.Button
	clearBtn     *ui.Button
	homeBtn      *ui.Button
	massSlider   *ui.Slider
	chargeSlider *ui.Slider
}

func newGame(world *simulation.World) *Game {
	return &Game{
		world: world,

		playBtn:     ui.NewButton("play", simulation.FieldW/2-70, 300, colorBlue),
		quitBtn:     ui.NewButton("quit", simulation.FieldW/2-70, 500, colorRed),
		levelSlider: ui.NewSlider("level", simulation.FieldW/2-75, 200, 0, len(simulation.Levels)-1),

		addPosBtn:    ui.NewButton("+", 50, simulation.FieldH+50, colorRed),
		addNegBtn:    ui.NewButton("-", 100, simulation.FieldH+50, colorBlue),
		runBtn:       ui.NewButton("run", 650, simulation.FieldH+50, colorBlack),
		resetBtn:     ui.NewButton("reset", 750, simulation.FieldH+50, colorBlack),
		clearBtn:     ui.NewButton("clear", 900, simulation.FieldH+50, colorBlack),
		homeBtn:      ui.NewButton("home", 1050, simulation.FieldH+50, colorBlack),
		massSlider:   ui.NewSlider("mass", 315, simulation.FieldH+50, 1, 100),
		chargeSlider: ui.NewSlider("charge", 500, simulation.FieldH+50, -25, 25),
	}
}

// Update ---
func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	switch g.world.Screen {
	case simulation.Home:
		g.updateHome(x, y)
	case simulation.Play:
		g.updatePlay(x, y)
	}
	return nil
}

func (g *Game) updateHome(x, y float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.playBtn.Hit(x, y):
			g.world.EnterPlay(g.levelSlider.Value())
		case g.quitBtn.Hit(x, y):
			os.Exit(0)
		case g.levelSlider.Hit(x, y):
			g.levelSlider.Held = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.levelSlider.Held = false
	}
	if g.levelSlider.Held {
		g.levelSlider.Drag(x)
	}
}

func (g *Game) updatePlay(x, y float64) {
	pos := physics.Vec2{X: x, Y: y}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// charges first: a click can both grab an existing charge and
		// press the widget under it
		g.world.GrabAt(x, y)

		// the +/- buttons drop the new charge at the click point; it
		// stays held so the user drags it onto the field
		if g.addPosBtn.Hit(x, y) {
			g.world.PlaceCharge(1, pos)
		}
		if g.addNegBtn.Hit(x, y) {
			g.world.PlaceCharge(-1, pos)
		}
		if g.runBtn.Hit(x, y) {
			g.world.StartRun()
		}
		if g.resetBtn.Hit(x, y) {
			g.world.Reset()
		}
		if g.clearBtn.Hit(x, y) {
			g.world.ClearCharges()
		}
		if g.homeBtn.Hit(x, y) {
			g.world.GoHome()
		}
		if g.massSlider.Hit(x, y) {
			g.massSlider.Held = true
		}
		if g.chargeSlider.Hit(x, y) {
			g.chargeSlider.Held = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.world.ReleaseAll()
		g.massSlider.Held = false
		g.chargeSlider.Held = false
	}

	g.world.DragHeld(pos)
	if g.massSlider.Held {
		g.massSlider.Drag(x)
	}
	if g.chargeSlider.Held {
		g.chargeSlider.Drag(x)
	}

	// the home button may have just left the play screen
	if g.world.Screen == simulation.Play {
		g.world.Step(g.massSlider.Value(), g.chargeSlider.Value())
	}
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	switch g.world.Screen {
	case simulation.Home:
		g.drawHome(screen)
	case simulation.Play:
		g.drawPlay(screen)
	}
}

func (g *Game) drawHome(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	g.playBtn.Draw(screen, g.playBtn.Hit(x, y))
	g.quitBtn.Draw(screen, g.quitBtn.Hit(x, y))
	g.levelSlider.Draw(screen)
	text.Draw(screen, "Objective: Get the charge into the goal. Avoid the obstacles.", basicfont.Face7x13, 150, 50, colorBlack)
	text.Draw(screen, "Pro Tip: Opposite charges attract, while like charges repel.", basicfont.Face7x13, 150, 100, colorBlack)
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	// field / panel separator
	vector.StrokeLine(screen, 0, simulation.FieldH, simulation.FieldW, simulation.FieldH, 1, colorBlack, false)

	for _, b := range []*ui.Button{g.addPosBtn, g.addNegBtn, g.runBtn, g.resetBtn, g.clearBtn, g.homeBtn} {
		b.Draw(screen, b.Hit(x, y))
	}
	g.massSlider.Draw(screen)
	g.chargeSlider.Draw(screen)
	text.Draw(screen, fmt.Sprintf("charges: %d", len(g.world.Charges)), basicfont.Face7x13, 150, simulation.FieldH+50, colorBlack)

	for _, obs := range g.world.Obstacles() {
		drawRect(screen, obs, colorBlack)
	}
	drawRect(screen, simulation.Goal, colorPurple)

	for _, c := range g.world.Charges {
		drawCharge(screen, c)
	}

	// force lines, one per charge, scaled by contribution
	p := g.world.Particle
	for _, pull := range g.world.Pulls {
		vector.StrokeLine(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(pull.End.X), float32(pull.End.Y), 2, pull.Charge.Color(), false)
	}

	switch g.world.Outcome {
	case simulation.OutcomeCrashed:
		drawBigText(screen, "CRASHED!", 300, 200, 8, colorPurple)
	case simulation.OutcomeGoal:
		drawBigText(screen, "GOAL!", 300, 200, 8, colorPurple)
	}

	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), colorBlack, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("level: %d\nrunning: %v", g.world.Level, g.world.Run))
}

func drawRect(screen *ebiten.Image, r physics.Rect, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawCharge(screen *ebiten.Image, c *physics.Charge) {
	vector.DrawFilledCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius), c.Color(), false)
	glyph := "+"
	if c.Val < 0 {
		glyph = "-"
	}
	text.Draw(screen, glyph, basicfont.Face7x13, int(c.Pos.X)-3, int(c.Pos.Y)-12, colorBlack)
}

// drawBigText renders through an offscreen image scaled up, since the
// bitmap face has a single size.
func drawBigText(screen *ebiten.Image, s string, x, y, scale float64, clr color.RGBA) {
	w := len(s)*7 + 2
	h := 16
	img := ebiten.NewImage(w, h)
	text.Draw(img, s, basicfont.Face7x13, 1, 13, clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return simulation.FieldW, simulation.FieldH + simulation.PanelH
}

func main() {
	configPath := flag.String("config", "", "optional physics tuning file (JSON)")
	startLevel := flag.Int("level", -1, "skip the home screen and start in this level")
	flag.Parse()

	tuning := physics.DefaultTuning()
	if *configPath != "" {
		var err error
		tuning, err = simulation.LoadTuning(*configPath)
		if err != nil {
			log.Fatalf("load tuning: %v", err)
		}
	}

	world := simulation.NewWorld(tuning)
	if *startLevel >= 0 {
		world.EnterPlay(*startLevel)
	}

	ebiten.SetWindowSize(simulation.FieldW, simulation.FieldH+simulation.PanelH)
	ebiten.SetWindowTitle("electric field hockey")
	if err := ebiten.RunGame(newGame(world)); err != nil {
		log.Fatal(err)
	}
}
