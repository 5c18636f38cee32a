package core

// Color names the role of a screen cell rather than a concrete terminal color.
// The platform layer maps each role to a palette, so games stay free of
// styling dependencies.
type Color uint8

// Cell color roles.
const (
	ColorDefault Color = iota
	ColorRing          // intact arc of the outer ring
	ColorRingInner     // intact arc of an inner ring
	ColorBall          // ball while trapped
	ColorEscaped       // ball after escaping
	ColorHUD           // status text
	ColorAccent        // highlighted status values
	ColorDim           // hints and secondary text
)
