package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// tickFor returns a tick scheduled by m.
func tickFor(m Model) TickMsg {
	return TickMsg{Gen: m.gen}
}

// send feeds msg to the model and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelQueuesInputForNextTick(t *testing.T) {
	game := newStubGame(100)
	m := NewModel(game, nil, testConfig(), false)
	m.Init()

	m, _ = send(t, m, runes("+"))
	if len(game.seen) != 0 {
		t.Fatal("input must not reach the game before the next tick")
	}

	m, cmd := send(t, m, tickFor(m))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(game.seen) != 1 || game.seen[0] != core.ActionSpeedUp {
		t.Fatalf("game saw %v, want [SpeedUp]", game.seen)
	}

	send(t, m, tickFor(m))
	if len(game.seen) != 1 {
		t.Errorf("input frame should be cleared after a tick, game saw %v", game.seen)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newStubGame(100), nil, testConfig(), false)

	m, cmd := send(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelBackOnlyWithMenu(t *testing.T) {
	standalone := NewModel(newStubGame(100), nil, testConfig(), false)
	standalone, _ = send(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if standalone.BackToMenu() {
		t.Error("esc should do nothing without a menu")
	}

	inMenu := NewModel(newStubGame(100), nil, testConfig(), true)
	inMenu, _ = send(t, inMenu, tea.KeyMsg{Type: tea.KeyEsc})
	if !inMenu.BackToMenu() {
		t.Error("esc should return to the menu")
	}

	// Ticks after leaving are ignored
	if _, cmd := send(t, inMenu, tickFor(inMenu)); cmd != nil {
		t.Error("no tick should be scheduled after leaving the game")
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store := openTestStore(t)
	game := newStubGame(3)
	m := NewModel(game, store, testConfig(), false)
	m.Init()

	for range 10 {
		m, _ = send(t, m, tickFor(m))
	}
	if !m.GameState().GameOver {
		t.Fatal("stub game should be over")
	}

	runs, err := store.FastestRuns(stubGameID, 10)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Ticks != 3 || runs[0].Eroded != 9 || runs[0].Bounces != 2 {
		t.Errorf("stored run = %+v", runs[0])
	}

	// A reset starts a new run that is stored again
	m, _ = send(t, m, runes("r"))
	for range 10 {
		m, _ = send(t, m, tickFor(m))
	}

	runs, err = store.FastestRuns(stubGameID, 10)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs after reset, want 2", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := newStubGame(100)
	m := NewModel(game, nil, testConfig(), false)
	m.Init()

	m, _ = send(t, m, tickFor(m))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if game.ticks != 1 {
		t.Errorf("ticks = %d, want 1", game.ticks)
	}

	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 40 {
		t.Errorf("view has %d lines, want 40", got)
	}
}

func TestModelFooterShowsGauge(t *testing.T) {
	m := NewModel(newStubGame(100), nil, testConfig(), false)
	m.Init()
	m, _ = send(t, m, tickFor(m))

	if view := m.View(); !strings.Contains(view, "x1.00") {
		t.Errorf("footer should show the speed gauge, got %q", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	orig := screenshotDir
	screenshotDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { screenshotDir = orig })

	m := NewModel(newStubGame(100), nil, testConfig(), false)
	m.Init()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot should hold the frame, got %q", string(data)[:10])
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("footer should report the saved path")
	}

	// Any key clears the status
	m, _ = send(t, m, runes("x"))
	if strings.Contains(m.View(), "saved ") {
		t.Error("status should clear on the next key")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	game := newStubGame(100)
	m := NewModel(game, nil, testConfig(), false)
	other := NewModel(newStubGame(100), nil, testConfig(), false)
	if m.gen == other.gen {
		t.Fatal("each model needs its own tick generation")
	}
	m.Init()

	m, cmd := send(t, m, tickFor(other))
	if cmd != nil {
		t.Error("a foreign tick must not schedule another tick")
	}
	if game.ticks != 0 {
		t.Errorf("a foreign tick stepped the game %d times", game.ticks)
	}

	if _, cmd := send(t, m, tickFor(m)); cmd == nil || game.ticks != 1 {
		t.Errorf("own tick should step once and reschedule, ticks = %d", game.ticks)
	}
}
