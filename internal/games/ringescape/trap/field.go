// Package trap implements the ring trap simulation: a ball bouncing inside
// concentric rings whose arcs erode on contact, until the ball escapes
// through a gap in the outermost ring.
//
// The package is loop-agnostic. Callers drive it one Step at a time and read
// state back through query methods, so it can be tested without a renderer.
package trap

import (
	"fmt"
	"math"
)

// Arc is a contiguous run of intact segments, as angles in radians.
// End is greater than Start; a run that crosses angle zero has End > 2π.
type Arc struct {
	Start float64
	End   float64
}

// Span returns the angular length of the arc in radians.
func (a Arc) Span() float64 {
	return a.End - a.Start
}

// Field holds the ring geometry and the erosion state of every segment.
type Field struct {
	radii          []float64
	segmentDegrees float64
	perRing        int
	segments       [][]bool // [ring][segment], true = intact
}

// NewField builds a field with the given ring radii (innermost first) and
// segment width in degrees. All segments start intact.
//
// It panics when the geometry is malformed: no rings, radii that are not
// positive and strictly increasing, or a segment width outside (0, 360].
func NewField(radii []float64, segmentDegrees float64) *Field {
	if len(radii) == 0 {
		panic("trap: field needs at least one ring")
	}
	if !(segmentDegrees > 0 && segmentDegrees <= 360) {
		panic(fmt.Sprintf("trap: invalid segment width %v", segmentDegrees))
	}
	for i, r := range radii {
		if r <= 0 || (i > 0 && r <= radii[i-1]) {
			panic(fmt.Sprintf("trap: ring radii must be positive and increasing, got %v", radii))
		}
	}

	f := &Field{
		radii:          append([]float64(nil), radii...),
		segmentDegrees: segmentDegrees,
		perRing:        max(1, int(math.Round(360/segmentDegrees))),
	}
	f.segments = make([][]bool, len(radii))
	for i := range f.segments {
		f.segments[i] = make([]bool, f.perRing)
	}
	f.Reset()
	return f
}

// EvenRadii returns count radii starting at start and spaced by gap.
func EvenRadii(count int, start, gap float64) []float64 {
	radii := make([]float64, count)
	for i := range radii {
		radii[i] = start + float64(i)*gap
	}
	return radii
}

// Rings returns the number of rings.
func (f *Field) Rings() int {
	return len(f.radii)
}

// Radius returns the radius of ring i.
func (f *Field) Radius(i int) float64 {
	return f.radii[i]
}

// InnerRadius returns the radius of the innermost ring.
func (f *Field) InnerRadius() float64 {
	return f.radii[0]
}

// OuterRadius returns the radius of the outermost ring.
func (f *Field) OuterRadius() float64 {
	return f.radii[len(f.radii)-1]
}

// Outer returns the index of the outermost ring.
func (f *Field) Outer() int {
	return len(f.radii) - 1
}

// SegmentsPerRing returns how many segments each ring is divided into.
func (f *Field) SegmentsPerRing() int {
	return f.perRing
}

// SegmentDegrees returns the angular width of one segment.
func (f *Field) SegmentDegrees() float64 {
	return f.segmentDegrees
}

// wrap maps any segment index into [0, perRing).
func (f *Field) wrap(i int) int {
	i %= f.perRing
	if i < 0 {
		i += f.perRing
	}
	return i
}

// IsIntact reports whether segment of ring is still standing.
// The segment index wraps around the circle; ring must be in range.
func (f *Field) IsIntact(ring, segment int) bool {
	return f.segments[ring][f.wrap(segment)]
}

// ErodeAround opens every segment within halfWidth of segment on ring,
// wrapping across angle zero. It returns how many segments changed from
// intact to eroded.
func (f *Field) ErodeAround(ring, segment, halfWidth int) int {
	halfWidth = max(0, halfWidth)
	segs := f.segments[ring]
	changed := 0
	for k := -halfWidth; k <= halfWidth; k++ {
		i := f.wrap(segment + k)
		if segs[i] {
			segs[i] = false
			changed++
		}
	}
	return changed
}

// AngleToSegment maps an angle in radians to the index of the segment that
// contains it. Collision and rendering both go through this mapping.
func (f *Field) AngleToSegment(theta float64) int {
	deg := math.Mod(theta*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return f.wrap(int(math.Floor(deg / f.segmentDegrees)))
}

// SegmentStart returns the angle in radians at which segment begins.
func (f *Field) SegmentStart(segment int) float64 {
	return float64(f.wrap(segment)) * f.segmentDegrees * math.Pi / 180
}

// Reset marks every segment of every ring intact.
func (f *Field) Reset() {
	for _, segs := range f.segments {
		for i := range segs {
			segs[i] = true
		}
	}
}

// IntactCount returns how many segments of ring are intact.
func (f *Field) IntactCount(ring int) int {
	n := 0
	for _, ok := range f.segments[ring] {
		if ok {
			n++
		}
	}
	return n
}

// ErodedTotal returns how many segments are open across all rings.
func (f *Field) ErodedTotal() int {
	total := 0
	for ring := range f.segments {
		total += f.perRing - f.IntactCount(ring)
	}
	return total
}

// Arcs returns the maximal runs of intact segments on ring, treating the
// ring as circular. A fully intact ring is a single [0, 2π] arc and a fully
// eroded ring has no arcs.
func (f *Field) Arcs(ring int) []Arc {
	segs := f.segments[ring]

	// Start scanning just after an eroded segment so no run is split at index 0.
	gap := -1
	for i, ok := range segs {
		if !ok {
			gap = i
			break
		}
	}
	if gap < 0 {
		return []Arc{{Start: 0, End: 2 * math.Pi}}
	}

	step := f.segmentDegrees * math.Pi / 180
	var arcs []Arc
	runStart := -1
	for k := 1; k <= f.perRing; k++ {
		i := gap + k // unwrapped so runs crossing zero stay contiguous
		if segs[f.wrap(i)] {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			arcs = append(arcs, f.arc(runStart, i, step))
			runStart = -1
		}
	}
	return arcs
}

// arc converts the unwrapped run [from, to) into angles. The start is the
// leading edge of the wrapped first segment, so it lies in [0, 2π).
func (f *Field) arc(from, to int, step float64) Arc {
	start := f.SegmentStart(from)
	return Arc{Start: start, End: start + float64(to-from)*step}
}

// AllArcs returns Arcs for every ring, innermost first.
func (f *Field) AllArcs() [][]Arc {
	out := make([][]Arc, len(f.radii))
	for ring := range f.radii {
		out[ring] = f.Arcs(ring)
	}
	return out
}
