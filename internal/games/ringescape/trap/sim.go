package trap

import (
	"github.com/vovakirdan/ringtrap/internal/core"
)

// State is the simulator's lifecycle state.
type State int

const (
	StateActive  State = iota // ball is trapped and moving
	StateEscaped              // ball left through a gap; physics frozen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Contacts int  // rings touched on an intact segment
	Eroded   int  // segments opened this tick
	Bounced  bool // velocity reflected off the outer ring
	Clamped  bool // ball pulled back inside an intact outer wall
	Escaped  bool // this tick moved the simulator to StateEscaped
}

// Simulator owns the ball and advances it through a Field.
// It reads and erodes the field but does not own it.
type Simulator struct {
	field  *Field
	params Params

	pos   core.Vec2 // relative to the field center
	vel   core.Vec2
	state State

	ticks    int
	contacts int
	bounces  int
	eroded   int
}

// NewSimulator creates a simulator over field with the ball at rest at the
// center. Call Place to put the ball in motion.
func NewSimulator(field *Field, params Params) *Simulator {
	return &Simulator{field: field, params: params}
}

// Place puts the ball at pos with velocity vel, relative to the field
// center, and returns the simulator to StateActive with fresh counters.
func (s *Simulator) Place(pos, vel core.Vec2) {
	s.pos = pos
	s.vel = vel
	s.state = StateActive
	s.ticks = 0
	s.contacts = 0
	s.bounces = 0
	s.eroded = 0
}

// Step advances the ball by one tick scaled by speedScale.
// It does nothing once the ball has escaped.
func (s *Simulator) Step(speedScale float64) StepResult {
	var res StepResult
	if s.state == StateEscaped {
		return res
	}
	s.ticks++

	// Integrate.
	s.pos = s.pos.Add(s.vel.Scale(speedScale))

	dist := s.pos.Len()
	seg := s.field.AngleToSegment(s.pos.Angle())
	outer := s.field.Outer()

	// Every ring within reach is processed; a ball straddling two radii
	// erodes both. Only the outer ring reflects.
	threshold := s.params.HitThreshold()
	for ring := 0; ring < s.field.Rings(); ring++ {
		delta := dist - s.field.Radius(ring)
		if delta < 0 {
			delta = -delta
		}
		if delta > threshold || !s.field.IsIntact(ring, seg) {
			continue
		}
		res.Contacts++
		res.Eroded += s.field.ErodeAround(ring, seg, s.params.ErosionHalfWidth)
		if ring == outer {
			s.vel = s.vel.Reflect(s.pos)
			res.Bounced = true
		}
	}

	// Escape check.
	outerR := s.field.OuterRadius()
	if dist > outerR+s.params.BallRadius+s.params.EscapeMargin {
		if !s.field.IsIntact(outer, seg) {
			s.state = StateEscaped
			res.Escaped = true
		} else {
			// Overshot an intact wall in one step: bounce and pull back inside.
			s.vel = s.vel.Reflect(s.pos)
			s.pos = s.pos.Scale((outerR - s.params.BallRadius - s.params.EscapeMargin) / dist)
			res.Bounced = true
			res.Clamped = true
		}
	}

	// Canvas edges.
	halfW := s.params.Width/2 - s.params.BallRadius
	halfH := s.params.Height/2 - s.params.BallRadius
	if s.pos.X < -halfW || s.pos.X > halfW {
		s.vel.X = -s.vel.X
	}
	if s.pos.Y < -halfH || s.pos.Y > halfH {
		s.vel.Y = -s.vel.Y
	}

	s.contacts += res.Contacts
	s.eroded += res.Eroded
	if res.Bounced {
		s.bounces++
	}
	return res
}

// Position returns the ball center relative to the field center.
func (s *Simulator) Position() core.Vec2 {
	return s.pos
}

// Velocity returns the ball velocity per tick at speed multiplier 1.
func (s *Simulator) Velocity() core.Vec2 {
	return s.vel
}

// Distance returns how far the ball center is from the field center.
func (s *Simulator) Distance() float64 {
	return s.pos.Len()
}

// Angle returns the ball's polar angle around the field center.
func (s *Simulator) Angle() float64 {
	return s.pos.Angle()
}

// State returns the lifecycle state.
func (s *Simulator) State() State {
	return s.state
}

// Escaped reports whether the ball has left the trap.
func (s *Simulator) Escaped() bool {
	return s.state == StateEscaped
}

// Params returns the parameters this simulator runs with.
func (s *Simulator) Params() Params {
	return s.params
}

// Summary returns the run counters accumulated since the last Place.
// Speed is left for the caller, which owns the multiplier.
func (s *Simulator) Summary() core.RunSummary {
	return core.RunSummary{
		Ticks:   s.ticks,
		Eroded:  s.eroded,
		Bounces: s.bounces,
	}
}

// Contacts returns how many ring contacts happened since the last Place.
func (s *Simulator) Contacts() int {
	return s.contacts
}
