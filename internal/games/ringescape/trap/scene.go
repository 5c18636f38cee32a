package trap

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ringtrap/internal/core"
)

// Scene owns one field and one simulator and replaces both state wholesale
// on Reset. It is the only place that draws random numbers.
type Scene struct {
	params Params
	field  *Field
	sim    *Simulator
	rng    *rand.Rand
	speed  float64
}

// NewScene builds a scene from params and resets it. The same seed always
// produces the same starting ball.
func NewScene(params Params, seed int64) *Scene {
	field := NewField(params.Radii, params.SegmentDegrees)
	sc := &Scene{
		params: params,
		field:  field,
		sim:    NewSimulator(field, params),
		rng:    rand.New(rand.NewSource(seed)),
		speed:  1,
	}
	sc.Reset()
	return sc
}

// Reset refills every ring and launches a new ball from a random angle just
// inside the innermost ring, heading in a random direction at base speed.
// The speed multiplier is kept.
func (sc *Scene) Reset() {
	sc.field.Reset()

	at := sc.rng.Float64() * 2 * math.Pi
	dir := sc.rng.Float64() * 2 * math.Pi
	start := sc.field.InnerRadius() - sc.params.StartInset

	sc.sim.Place(core.Polar(start, at), core.Polar(sc.params.BaseSpeed, dir))
}

// Tick runs one simulation step at the current speed multiplier.
func (sc *Scene) Tick() StepResult {
	return sc.sim.Step(sc.speed)
}

// SetSpeed sets the speed multiplier used by the next Tick.
// Non-positive values are ignored.
func (sc *Scene) SetSpeed(v float64) {
	if v > 0 && !math.IsInf(v, 0) {
		sc.speed = v
	}
}

// Speed returns the current speed multiplier.
func (sc *Scene) Speed() float64 {
	return sc.speed
}

// Field returns the scene's ring field.
func (sc *Scene) Field() *Field {
	return sc.field
}

// Simulator returns the scene's simulator.
func (sc *Scene) Simulator() *Simulator {
	return sc.sim
}

// Params returns the scene parameters.
func (sc *Scene) Params() Params {
	return sc.params
}

// Summary returns the run counters together with the current speed.
func (sc *Scene) Summary() core.RunSummary {
	sum := sc.sim.Summary()
	sum.Speed = sc.speed
	return sum
}
