package ringescape

import "math"

// Snapshot captures everything that decides the next tick.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick   int
	Speed  float64
	Paused bool
	State  string

	// Ball position and velocity relative to the field center
	X, Y   float64
	VX, VY float64

	// Segment states, ring by ring (1 = intact)
	SegmentData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	field := g.scene.Field()
	sim := g.scene.Simulator()

	per := field.SegmentsPerRing()
	segs := make([]int, field.Rings()*per)
	for ring := range field.Rings() {
		for seg := range per {
			if field.IsIntact(ring, seg) {
				segs[ring*per+seg] = 1
			}
		}
	}

	pos, vel := sim.Position(), sim.Velocity()
	return Snapshot{
		Tick:        g.scene.Summary().Ticks,
		Speed:       g.scene.Speed(),
		Paused:      g.paused,
		State:       sim.State().String(),
		X:           pos.X,
		Y:           pos.Y,
		VX:          vel.X,
		VY:          vel.Y,
		SegmentData: segs,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.X)
	h = h*31 + math.Float64bits(snap.Y)
	h = h*31 + math.Float64bits(snap.VX)
	h = h*31 + math.Float64bits(snap.VY)
	if snap.Paused {
		h = h*31 + 1
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.SegmentData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
