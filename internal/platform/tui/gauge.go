package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/ringtrap/internal/core"
)

// SpeedController is implemented by games with an adjustable speed multiplier.
type SpeedController interface {
	Speed() float64
	SpeedRange() (lo, hi float64)
}

// Gauge spring tuning: settles in about a third of a second without overshoot.
const (
	gaugeFrequency = 6.0
	gaugeDamping   = 1.0
	gaugeWidth     = 16
)

// SpeedGauge shows the speed multiplier as a bar that springs toward the
// current value instead of jumping.
type SpeedGauge struct {
	spring harmonica.Spring
	bar    progress.Model
	pos    float64
	vel    float64
	target float64
	speed  float64
}

// NewSpeedGauge creates a gauge animated at the given tick rate.
func NewSpeedGauge(fps int) SpeedGauge {
	if fps <= 0 {
		fps = DefaultTickRate
	}
	bar := progress.New(
		progress.WithScaledGradient(string(colorRing), string(colorBall)),
		progress.WithoutPercentage(),
	)
	bar.Width = gaugeWidth

	return SpeedGauge{
		spring: harmonica.NewSpring(harmonica.FPS(fps), gaugeFrequency, gaugeDamping),
		bar:    bar,
	}
}

// Set points the gauge at speed within [lo, hi].
func (g *SpeedGauge) Set(speed, lo, hi float64) {
	g.speed = speed
	if hi <= lo {
		g.target = 1
		return
	}
	g.target = core.ClampF((speed-lo)/(hi-lo), 0, 1)
}

// Snap jumps straight to the target, used for the first frame.
func (g *SpeedGauge) Snap() {
	g.pos, g.vel = g.target, 0
}

// Step advances the spring by one frame.
func (g *SpeedGauge) Step() {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
}

// Fraction returns the displayed fill in [0, 1].
func (g SpeedGauge) Fraction() float64 {
	return core.ClampF(g.pos, 0, 1)
}

// Target returns the fill the gauge is moving toward.
func (g SpeedGauge) Target() float64 {
	return g.target
}

// View renders the bar followed by the numeric multiplier.
func (g SpeedGauge) View() string {
	return fmt.Sprintf("speed %s x%.2f", g.bar.ViewAs(g.Fraction()), g.speed)
}
