package simulation

import "github.com/RohanPhadnis/ElectricFieldHockey/pkg/physics"

type Screen int

const (
	Home Screen = iota
	Play
)

// Outcome is what the UI renders as status for the current frame.
type Outcome int

const (
	OutcomeNone Outcome = iota // idle, nothing decided
	OutcomeRunning
	OutcomeCrashed
	OutcomeGoal
)

// --- World ---
//
// All mutable game state: the placed charges, the controlled particle,
// the active level and the run flag. Constructed once at startup and
// advanced synchronously once per frame.
type World struct {
	Tuning   physics.Tuning
	Particle *physics.Particle
	Charges  []*physics.Charge

	Screen  Screen
	Level   int
	Run     bool
	Outcome Outcome

	// Pulls holds the last frame's force lines; empty while idle.
	Pulls []physics.Pull
}

func NewWorld(t physics.Tuning) *World {
	return &World{
		Tuning:   t,
		Particle: physics.NewParticle(LaunchPoint),
	}
}

// EnterPlay switches to the play screen with the given level active.
func (w *World) EnterPlay(level int) {
	if level < 0 {
		level = 0
	}
	if level >= len(Levels) {
		level = len(Levels) - 1
	}
	w.Level = level
	w.Screen = Play
	w.Reset()
}

// GoHome returns to the home screen and stops any run.
func (w *World) GoHome() {
	w.Reset()
	w.Screen = Home
}

// Reset puts the particle back at the launch point and clears the run.
func (w *World) Reset() {
	w.Particle.Reset()
	w.Run = false
	w.Outcome = OutcomeNone
	w.Pulls = nil
}

func (w *World) StartRun() {
	w.Run = true
}

// PlaceCharge adds a stationary charge at the given point. The charge
// starts held, so it rides the cursor until released.
func (w *World) PlaceCharge(val int, pos physics.Vec2) *physics.Charge {
	c := physics.NewCharge(val, pos)
	w.Charges = append(w.Charges, c)
	return c
}

func (w *World) ClearCharges() {
	w.Charges = nil
}

// GrabAt marks every charge under the click as held and reports
// whether any was.
func (w *World) GrabAt(x, y float64) bool {
	hit := false
	for _, c := range w.Charges {
		if c.Hit(x, y) {
			c.Held = true
			hit = true
		}
	}
	return hit
}

func (w *World) ReleaseAll() {
	for _, c := range w.Charges {
		c.Held = false
	}
}

// DragHeld moves every held charge to the cursor.
func (w *World) DragHeld(pos physics.Vec2) {
	for _, c := range w.Charges {
		if c.Held {
			c.Pos = pos
		}
	}
}

// Obstacles is the active level's obstacle list.
func (w *World) Obstacles() []physics.Rect {
	return Levels[w.Level]
}

func (w *World) onObstacle() bool {
	for _, obs := range w.Obstacles() {
		if physics.Collides(w.Particle, obs) {
			return true
		}
	}
	return false
}

// Step advances one frame of the play screen. mass and charge are the
// current slider values; they land on the particle every frame whether
// or not a run is active.
//
// Order within the frame is fixed: sweep dropped charges, copy slider
// values, fail on obstacle contact, integrate if still running, then
// check the goal. Obstacle contact is tested before integration and
// the goal after, so a goal touch ends the run on the same frame.
func (w *World) Step(mass, charge int) {
	w.sweepCharges()

	w.Particle.Mass = float64(mass)
	w.Particle.Val = charge

	if w.onObstacle() {
		w.Run = false
	}

	if w.Run {
		grav, gravPulls := physics.NetForce(physics.Gravitational, w.Particle, w.Charges, w.Tuning)
		elec, elecPulls := physics.NetForce(physics.Electrostatic, w.Particle, w.Charges, w.Tuning)
		w.Pulls = append(gravPulls, elecPulls...)
		w.Particle.Step(grav.Add(elec))
	} else {
		w.Pulls = nil
	}

	if physics.Collides(w.Particle, Goal) {
		w.Run = false
		w.Outcome = OutcomeGoal
	} else if w.onObstacle() {
		w.Outcome = OutcomeCrashed
	} else if w.Run {
		w.Outcome = OutcomeRunning
	} else {
		w.Outcome = OutcomeNone
	}
}

// sweepCharges drops charges that were dragged below the field's
// bottom edge and released. Filter into a fresh prefix instead of
// removing mid-iteration.
func (w *World) sweepCharges() {
	kept := w.Charges[:0]
	for _, c := range w.Charges {
		if c.Pos.Y > FieldH && !c.Held {
			continue
		}
		kept = append(kept, c)
	}
	w.Charges = kept
}
