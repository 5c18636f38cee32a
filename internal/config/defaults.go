package config

import (
	_ "embed"
)

//go:embed defaults/ringescape.yaml
var defaultRingEscapeYAML []byte

// DefaultRingEscapeConfig returns the default Ring Escape configuration.
func DefaultRingEscapeConfig() RingEscapeConfig {
	return RingEscapeConfig{
		Rings: RingsConfig{
			Count:       6,
			StartRadius: 80,
			Gap:         45,
			Stroke:      3,
		},
		Segments: SegmentsConfig{
			Degrees:          3,
			ErosionHalfWidth: 4,
		},
		Ball: BallConfig{
			Radius:     8,
			BaseSpeed:  2.0,
			StartInset: 10,
		},
		Field: FieldConfig{
			Width:         700,
			Height:        700,
			ContactMargin: 1,
			EscapeMargin:  2,
		},
		Speed: SpeedConfig{
			Initial: 1.0,
			Min:     0.25,
			Max:     4.0,
			Step:    0.25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "ringescape":
		return defaultRingEscapeYAML
	default:
		return nil
	}
}
