package tui

import (
	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/registry"
)

const stubGameID = "zz-tui-stub"

func init() {
	registry.Register(stubGameID, func() registry.Game { return newStubGame(3) })
}

// stubGame finishes after a fixed number of ticks and records its input.
type stubGame struct {
	finishAfter int
	ticks       int
	resets      int
	speed       float64
	seen        []core.Action
}

func newStubGame(finishAfter int) *stubGame {
	return &stubGame{finishAfter: finishAfter, speed: 1}
}

func (g *stubGame) ID() string    { return stubGameID }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{core.ActionSpeedUp, core.ActionSpeedDown, core.ActionRestart, core.ActionPause} {
		if in.Has(a) {
			g.seen = append(g.seen, a)
		}
	}
	if in.Has(core.ActionRestart) {
		g.ticks = 0
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionSpeedUp) {
		g.speed = min(g.speed+0.5, 3)
	}
	if g.ticks < g.finishAfter {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.ticks, GameOver: g.ticks >= g.finishAfter}
}

func (g *stubGame) RunSummary() core.RunSummary {
	return core.RunSummary{Ticks: g.ticks, Eroded: 9, Bounces: 2, Speed: g.speed}
}

func (g *stubGame) Speed() float64               { return g.speed }
func (g *stubGame) SpeedRange() (lo, hi float64) { return 0.5, 3 }
