// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import "fmt"

// RingEscapeConfig contains all configuration for the Ring Escape game.
type RingEscapeConfig struct {
	Rings    RingsConfig    `yaml:"rings"`
	Segments SegmentsConfig `yaml:"segments"`
	Ball     BallConfig     `yaml:"ball"`
	Field    FieldConfig    `yaml:"field"`
	Speed    SpeedConfig    `yaml:"speed"`
}

// RingsConfig defines the concentric ring layout.
type RingsConfig struct {
	Count       int     `yaml:"count"`
	StartRadius float64 `yaml:"start_radius"`
	Gap         float64 `yaml:"gap"`
	Stroke      float64 `yaml:"stroke"`
}

// SegmentsConfig defines how rings are cut into erodible segments.
type SegmentsConfig struct {
	Degrees          float64 `yaml:"degrees"`
	ErosionHalfWidth int     `yaml:"erosion_half_width"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius     float64 `yaml:"radius"`
	BaseSpeed  float64 `yaml:"base_speed"`
	StartInset float64 `yaml:"start_inset"`
}

// FieldConfig defines the drawable board and collision slack.
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ContactMargin float64 `yaml:"contact_margin"`
	EscapeMargin  float64 `yaml:"escape_margin"`
}

// SpeedConfig defines the player-adjustable speed multiplier.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// Radii returns the ring radii, innermost first.
func (c RingEscapeConfig) Radii() []float64 {
	radii := make([]float64, c.Rings.Count)
	for i := range radii {
		radii[i] = c.Rings.StartRadius + float64(i)*c.Rings.Gap
	}
	return radii
}

// Validate reports the first setting that would make the board unplayable.
func (c RingEscapeConfig) Validate() error {
	switch {
	case c.Rings.Count <= 0:
		return fmt.Errorf("config: rings.count must be positive, got %d", c.Rings.Count)
	case c.Rings.StartRadius <= 0:
		return fmt.Errorf("config: rings.start_radius must be positive, got %v", c.Rings.StartRadius)
	case c.Rings.Count > 1 && c.Rings.Gap <= 0:
		return fmt.Errorf("config: rings.gap must be positive, got %v", c.Rings.Gap)
	case c.Segments.Degrees <= 0 || c.Segments.Degrees > 360:
		return fmt.Errorf("config: segments.degrees must be in (0, 360], got %v", c.Segments.Degrees)
	case c.Segments.ErosionHalfWidth < 0:
		return fmt.Errorf("config: segments.erosion_half_width must not be negative, got %d", c.Segments.ErosionHalfWidth)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("config: ball.radius must be positive, got %v", c.Ball.Radius)
	case c.Ball.BaseSpeed <= 0:
		return fmt.Errorf("config: ball.base_speed must be positive, got %v", c.Ball.BaseSpeed)
	case c.Ball.StartInset < 0 || c.Ball.StartInset >= c.Rings.StartRadius:
		return fmt.Errorf("config: ball.start_inset must be in [0, %v), got %v", c.Rings.StartRadius, c.Ball.StartInset)
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("config: speed range [%v, %v] is invalid", c.Speed.Min, c.Speed.Max)
	case c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max:
		return fmt.Errorf("config: speed.initial %v outside [%v, %v]", c.Speed.Initial, c.Speed.Min, c.Speed.Max)
	case c.Speed.Step <= 0:
		return fmt.Errorf("config: speed.step must be positive, got %v", c.Speed.Step)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
