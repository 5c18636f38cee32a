// Package tui provides the Bubble Tea integration for ringtrap.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when a caller passes a non-positive rate.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it; a model only steps on
// its own ticks, so a tick left over from a previous game is dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out model generations. SSH sessions create models
// concurrently, so it is atomic.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages for gen at
// the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
