// Package ringescape adapts the ring trap simulation to the arcade platform:
// it maps actions to speed and reset controls and draws the board into a
// core.Screen.
package ringescape

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringtrap/internal/config"
	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/games/ringescape/trap"
	"github.com/vovakirdan/ringtrap/internal/registry"
)

// GameID is the registry and history key for Ring Escape.
const GameID = "ringescape"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger reports config problems that Reset recovers from.
var logger = log.Default()

// SetLogger replaces the logger used for config warnings. Nil restores
// the default logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game drives one trap.Scene from platform input.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RingEscapeConfig
	scene   *trap.Scene
	paused  bool
	last    trap.StepResult
}

// New creates a new Ring Escape game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ring Escape"
}

// Reset loads configuration and builds a fresh scene seeded from runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRingEscape(configPath)
	if err != nil {
		logger.Warn("using default ring escape config", "path", configPath, "error", err)
		cfg = config.DefaultRingEscapeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRingEscapePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.scene = trap.NewScene(ParamsFromConfig(cfg), runtime.Seed)
	g.scene.SetSpeed(cfg.Speed.Initial)
	g.paused = false
	g.last = trap.StepResult{}
}

// ParamsFromConfig converts the YAML layout into simulation parameters.
func ParamsFromConfig(cfg config.RingEscapeConfig) trap.Params {
	return trap.Params{
		Radii:            cfg.Radii(),
		SegmentDegrees:   cfg.Segments.Degrees,
		ErosionHalfWidth: cfg.Segments.ErosionHalfWidth,
		StrokeWidth:      cfg.Rings.Stroke,
		BallRadius:       cfg.Ball.Radius,
		BaseSpeed:        cfg.Ball.BaseSpeed,
		StartInset:       cfg.Ball.StartInset,
		ContactMargin:    cfg.Field.ContactMargin,
		EscapeMargin:     cfg.Field.EscapeMargin,
		Width:            cfg.Field.Width,
		Height:           cfg.Field.Height,
	}
}

// Step applies controls, then advances the scene by one tick unless the
// game is paused or the ball is already out.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Restart is honored in every state, including mid-run
	if in.Has(core.ActionRestart) {
		g.scene.Reset()
		g.paused = false
		g.last = trap.StepResult{}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSpeedUp) {
		g.nudgeSpeed(g.cfg.Speed.Step)
	}
	if in.Has(core.ActionSpeedDown) {
		g.nudgeSpeed(-g.cfg.Speed.Step)
	}

	escaped := g.scene.Simulator().Escaped()
	if in.Has(core.ActionPause) && !escaped {
		g.paused = !g.paused
	}

	if g.paused || escaped {
		return core.StepResult{State: g.State()}
	}

	g.last = g.scene.Tick()
	return core.StepResult{State: g.State()}
}

func (g *Game) nudgeSpeed(delta float64) {
	g.scene.SetSpeed(core.ClampF(g.scene.Speed()+delta, g.cfg.Speed.Min, g.cfg.Speed.Max))
}

// Speed returns the current speed multiplier.
func (g *Game) Speed() float64 {
	return g.scene.Speed()
}

// SpeedRange returns the configured multiplier bounds.
func (g *Game) SpeedRange() (lo, hi float64) {
	return g.cfg.Speed.Min, g.cfg.Speed.Max
}

// Scene exposes the underlying scene for read-only inspection.
func (g *Game) Scene() *trap.Scene {
	return g.scene
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	sum := g.scene.Summary()
	return core.GameState{
		Score:    sum.Ticks,
		GameOver: g.scene.Simulator().Escaped(),
		Paused:   g.paused,
	}
}

// RunSummary reports the counters of the current run.
func (g *Game) RunSummary() core.RunSummary {
	return g.scene.Summary()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
