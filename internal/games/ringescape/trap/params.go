package trap

// Default tuning, matching the classic 700x700 board.
const (
	DefaultRingCount        = 6
	DefaultRingStartRadius  = 80.0
	DefaultRingGap          = 45.0
	DefaultSegmentDegrees   = 3.0
	DefaultErosionHalfWidth = 4
	DefaultStrokeWidth      = 3.0
	DefaultBallRadius       = 8.0
	DefaultBaseSpeed        = 2.0
	DefaultStartInset       = 10.0
	DefaultContactMargin    = 1.0
	DefaultEscapeMargin     = 2.0
	DefaultFieldSize        = 700.0
)

// Params holds the per-run simulation parameters. They are fixed while a
// run is active and may be replaced on reset.
type Params struct {
	Radii            []float64 // ring radii, innermost first
	SegmentDegrees   float64   // angular width of a segment
	ErosionHalfWidth int       // segments eroded on each side of a contact
	StrokeWidth      float64   // drawn ring thickness
	BallRadius       float64
	BaseSpeed        float64 // ball speed at reset, per tick at multiplier 1
	StartInset       float64 // distance inside the innermost ring at reset
	ContactMargin    float64 // slack added to the contact threshold
	EscapeMargin     float64 // slack beyond the outer ring before escape checks
	Width            float64 // drawable area, centered on the field
	Height           float64
}

// DefaultParams returns the classic board: six rings from radius 80 to 305.
func DefaultParams() Params {
	return Params{
		Radii:            EvenRadii(DefaultRingCount, DefaultRingStartRadius, DefaultRingGap),
		SegmentDegrees:   DefaultSegmentDegrees,
		ErosionHalfWidth: DefaultErosionHalfWidth,
		StrokeWidth:      DefaultStrokeWidth,
		BallRadius:       DefaultBallRadius,
		BaseSpeed:        DefaultBaseSpeed,
		StartInset:       DefaultStartInset,
		ContactMargin:    DefaultContactMargin,
		EscapeMargin:     DefaultEscapeMargin,
		Width:            DefaultFieldSize,
		Height:           DefaultFieldSize,
	}
}

// HitThreshold is the largest distance between the ball center and a ring
// radius that still counts as contact.
func (p Params) HitThreshold() float64 {
	return p.StrokeWidth/2 + p.BallRadius + p.ContactMargin
}
