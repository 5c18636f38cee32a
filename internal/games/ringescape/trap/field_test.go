package trap

import (
	"math"
	"testing"
)

func defaultField() *Field {
	return NewField(EvenRadii(6, 80, 45), 3)
}

func TestNewFieldDimensions(t *testing.T) {
	f := defaultField()

	if f.Rings() != 6 {
		t.Fatalf("Rings() = %d, expected 6", f.Rings())
	}
	if f.SegmentsPerRing() != 120 {
		t.Fatalf("SegmentsPerRing() = %d, expected 120", f.SegmentsPerRing())
	}
	if f.InnerRadius() != 80 || f.OuterRadius() != 305 {
		t.Errorf("radii = %v..%v, expected 80..305", f.InnerRadius(), f.OuterRadius())
	}
	for ring := 0; ring < f.Rings(); ring++ {
		if f.IntactCount(ring) != 120 {
			t.Errorf("ring %d intact = %d, expected 120", ring, f.IntactCount(ring))
		}
	}
}

func TestNewFieldRejectsMalformedGeometry(t *testing.T) {
	tests := []struct {
		name    string
		radii   []float64
		segment float64
	}{
		{"no rings", nil, 3},
		{"zero segment width", []float64{10, 20}, 0},
		{"negative segment width", []float64{10, 20}, -3},
		{"decreasing radii", []float64{20, 10}, 3},
		{"duplicate radii", []float64{10, 10}, 3},
		{"zero radius", []float64{0, 10}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewField should panic")
				}
			}()
			NewField(tc.radii, tc.segment)
		})
	}
}

func TestAngleToSegmentPeriodic(t *testing.T) {
	f := defaultField()

	// Offset keeps samples off exact segment edges.
	for deg := -719.65; deg <= 720.0; deg += 0.7 {
		theta := deg * math.Pi / 180
		a := f.AngleToSegment(theta)
		b := f.AngleToSegment(theta + 2*math.Pi)
		if a != b {
			t.Fatalf("AngleToSegment(%.1f°) = %d but +360° gives %d", deg, a, b)
		}
		if a < 0 || a >= f.SegmentsPerRing() {
			t.Fatalf("AngleToSegment(%.1f°) = %d out of range", deg, a)
		}
	}
}

func TestAngleToSegmentBoundaries(t *testing.T) {
	f := defaultField()

	tests := []struct {
		deg      float64
		expected int
	}{
		{0, 0},
		{2.9, 0},
		{3.1, 1},
		{91, 30},
		{181, 60},
		{-1, 119},
		{-91, 89},
		{359.9, 119},
	}

	for _, tc := range tests {
		got := f.AngleToSegment(tc.deg * math.Pi / 180)
		if got != tc.expected {
			t.Errorf("AngleToSegment(%v°) = %d, expected %d", tc.deg, got, tc.expected)
		}
	}
}

func TestAngleToSegmentUnevenWidth(t *testing.T) {
	// 7° does not divide 360; the last partial slice folds back to 0.
	f := NewField([]float64{10}, 7)
	if f.SegmentsPerRing() != 51 {
		t.Fatalf("SegmentsPerRing() = %d, expected 51", f.SegmentsPerRing())
	}
	if got := f.AngleToSegment(359 * math.Pi / 180); got != 0 {
		t.Errorf("AngleToSegment(359°) = %d, expected 0", got)
	}
}

func TestErodeAroundRange(t *testing.T) {
	tests := []struct {
		name      string
		segment   int
		halfWidth int
	}{
		{"middle", 60, 4},
		{"wraps below zero", 1, 4},
		{"wraps above end", 118, 4},
		{"negative index", -3, 2},
		{"single segment", 30, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := defaultField()
			n := f.SegmentsPerRing()

			changed := f.ErodeAround(2, tc.segment, tc.halfWidth)
			if changed != 2*tc.halfWidth+1 {
				t.Errorf("ErodeAround changed %d, expected %d", changed, 2*tc.halfWidth+1)
			}

			for j := 0; j < n; j++ {
				d := circularDistance(j, tc.segment, n)
				want := d > tc.halfWidth
				if got := f.IsIntact(2, j); got != want {
					t.Errorf("segment %d intact = %v, expected %v (distance %d)", j, got, want, d)
				}
			}

			// Other rings untouched
			for ring := 0; ring < f.Rings(); ring++ {
				if ring != 2 && f.IntactCount(ring) != n {
					t.Errorf("ring %d was modified", ring)
				}
			}
		})
	}
}

func TestErodeAroundIdempotent(t *testing.T) {
	once := defaultField()
	twice := defaultField()

	once.ErodeAround(5, 119, 4)
	twice.ErodeAround(5, 119, 4)
	if changed := twice.ErodeAround(5, 119, 4); changed != 0 {
		t.Errorf("second ErodeAround changed %d segments, expected 0", changed)
	}

	for j := 0; j < once.SegmentsPerRing(); j++ {
		if once.IsIntact(5, j) != twice.IsIntact(5, j) {
			t.Fatalf("segment %d differs after repeated erosion", j)
		}
	}
}

func TestIsIntactWrapsIndex(t *testing.T) {
	f := defaultField()
	f.ErodeAround(0, 0, 0)

	if f.IsIntact(0, 120) || f.IsIntact(0, -120) || f.IsIntact(0, 240) {
		t.Error("segment index should wrap modulo segment count")
	}
	if !f.IsIntact(0, 121) {
		t.Error("segment 1 should be intact")
	}
}

func TestFieldReset(t *testing.T) {
	f := defaultField()
	f.ErodeAround(0, 10, 4)
	f.ErodeAround(5, 100, 10)

	if f.ErodedTotal() != 9+21 {
		t.Errorf("ErodedTotal() = %d, expected 30", f.ErodedTotal())
	}

	f.Reset()
	if f.ErodedTotal() != 0 {
		t.Errorf("after Reset ErodedTotal() = %d", f.ErodedTotal())
	}
}

func TestArcsFullAndEmpty(t *testing.T) {
	f := defaultField()

	arcs := f.Arcs(0)
	if len(arcs) != 1 || arcs[0].Start != 0 || math.Abs(arcs[0].End-2*math.Pi) > 1e-9 {
		t.Errorf("intact ring arcs = %v, expected one full circle", arcs)
	}

	f.ErodeAround(0, 0, 60) // 121 segments cover the whole ring
	if arcs := f.Arcs(0); len(arcs) != 0 {
		t.Errorf("eroded ring arcs = %v, expected none", arcs)
	}
}

func TestArcsEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		field     func() *Field
		ring      int
		wantArcs  int
		wantSpan  float64
		wantOther int // arcs on the neighbouring ring, -1 to skip
	}{
		{
			name: "eroded ring next to intact ring",
			field: func() *Field {
				f := defaultField()
				f.ErodeAround(2, 0, 60)
				return f
			},
			ring:      2,
			wantArcs:  0,
			wantOther: 1,
		},
		{
			name: "half width covering the whole ring",
			field: func() *Field {
				f := defaultField()
				if n := f.ErodeAround(4, 0, f.SegmentsPerRing()); n != 120 {
					t.Errorf("ErodeAround changed %d segments, expected 120", n)
				}
				return f
			},
			ring:      4,
			wantArcs:  0,
			wantOther: 1,
		},
		{
			name:      "single segment ring intact",
			field:     func() *Field { return NewField([]float64{50}, 360) },
			ring:      0,
			wantArcs:  1,
			wantSpan:  2 * math.Pi,
			wantOther: -1,
		},
		{
			name: "single segment ring eroded",
			field: func() *Field {
				f := NewField([]float64{50}, 360)
				f.ErodeAround(0, 7, 0)
				return f
			},
			ring:      0,
			wantArcs:  0,
			wantOther: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.field()
			arcs := f.Arcs(tt.ring)
			if len(arcs) != tt.wantArcs {
				t.Fatalf("Arcs(%d) = %v, expected %d arcs", tt.ring, arcs, tt.wantArcs)
			}
			if tt.wantArcs == 1 && math.Abs(arcs[0].Span()-tt.wantSpan) > 1e-9 {
				t.Errorf("span = %f, expected %f", arcs[0].Span(), tt.wantSpan)
			}
			if tt.wantOther >= 0 {
				if got := len(f.Arcs(tt.ring + 1)); got != tt.wantOther {
					t.Errorf("neighbour ring has %d arcs, expected %d", got, tt.wantOther)
				}
			}
		})
	}
}

func TestSingleSegmentRingMapping(t *testing.T) {
	f := NewField([]float64{50}, 360)
	for _, theta := range []float64{0, 1, math.Pi, -2, 7 * math.Pi} {
		if seg := f.AngleToSegment(theta); seg != 0 {
			t.Errorf("AngleToSegment(%f) = %d, expected 0", theta, seg)
		}
	}
}

func TestSegmentStart(t *testing.T) {
	f := defaultField()
	step := 3 * math.Pi / 180

	tests := []struct {
		segment int
		want    float64
	}{
		{0, 0},
		{1, step},
		{119, 119 * step},
		{120, 0},
		{-1, 119 * step},
	}
	for _, tt := range tests {
		if got := f.SegmentStart(tt.segment); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SegmentStart(%d) = %f, expected %f", tt.segment, got, tt.want)
		}
		if seg := f.AngleToSegment(f.SegmentStart(tt.segment) + step/2); seg != f.wrap(tt.segment) {
			t.Errorf("segment %d start does not map back, got %d", tt.segment, seg)
		}
	}
}

func TestArcsSplitAndWrap(t *testing.T) {
	f := defaultField()
	step := 3 * math.Pi / 180

	// Open 10..14 and 50..54; the run 55..119,0..9 crosses angle zero.
	f.ErodeAround(1, 12, 2)
	f.ErodeAround(1, 52, 2)

	arcs := f.Arcs(1)
	if len(arcs) != 2 {
		t.Fatalf("Arcs() = %v, expected 2 arcs", arcs)
	}

	expect := []Arc{
		{Start: 15 * step, End: 50 * step},
		{Start: 55 * step, End: 130 * step},
	}
	for i, want := range expect {
		if math.Abs(arcs[i].Start-want.Start) > 1e-9 || math.Abs(arcs[i].End-want.End) > 1e-9 {
			t.Errorf("arc %d = %+v, expected %+v", i, arcs[i], want)
		}
	}

	var covered float64
	for _, a := range arcs {
		covered += a.Span()
	}
	if intact := float64(f.IntactCount(1)) * step; math.Abs(covered-intact) > 1e-9 {
		t.Errorf("arcs cover %f rad, intact segments cover %f", covered, intact)
	}
}

func TestArcsRouteThroughAngleMapping(t *testing.T) {
	f := defaultField()
	f.ErodeAround(3, 40, 3)

	// Midpoints of every arc must map to intact segments.
	for _, a := range f.Arcs(3) {
		for theta := a.Start + 0.01; theta < a.End; theta += 0.02 {
			if !f.IsIntact(3, f.AngleToSegment(theta)) {
				t.Fatalf("arc %+v covers eroded angle %f", a, theta)
			}
		}
	}
}

func circularDistance(a, b, n int) int {
	d := (a - b) % n
	if d < 0 {
		d += n
	}
	if n-d < d {
		return n - d
	}
	return d
}
