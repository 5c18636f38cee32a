package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return model, cmd
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(defaultCatalog(t), nil, testConfig())

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("enter should start a game, view = %v", m.view)
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}
	if !strings.Contains(m.View(), "RING ESCAPE") {
		t.Error("game view should show the board HUD")
	}

	m, _ = sendSession(t, m, TickMsg{Gen: m.game.gen})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc should return to the menu, view = %v", m.view)
	}

	// A tick left over from the game is harmless in the menu
	m, _ = sendSession(t, m, TickMsg{})
	if m.view != viewMenu || m.quitting {
		t.Error("stale tick should leave the menu alone")
	}
}

func TestSessionReenterKeepsOneTickChain(t *testing.T) {
	m := NewSessionModel(defaultCatalog(t), nil, testConfig())

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := TickMsg{Gen: m.game.gen}

	// Leave and re-enter before the first game's tick fires
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("second enter should start a game, view = %v", m.view)
	}
	fresh := TickMsg{Gen: m.game.gen}

	// Deliver one tick per pending chain each frame, as the runtime would.
	pending := []TickMsg{stale, fresh}
	for range 10 {
		var next []TickMsg
		for _, tick := range pending {
			var cmd tea.Cmd
			m, cmd = sendSession(t, m, tick)
			if cmd != nil {
				next = append(next, TickMsg{Gen: tick.Gen})
			}
		}
		pending = next
	}

	if len(pending) != 1 || pending[0].Gen != fresh.Gen {
		t.Errorf("live tick chains = %v, want only the current game's", pending)
	}
	if ticks := m.game.GameState().Score; ticks != 10 {
		t.Errorf("game stepped %d times in 10 frames, want 10", ticks)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(defaultCatalog(t), openTestStore(t), testConfig())

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatalf("tab should open run history, view = %v", m.view)
	}
	if !strings.Contains(m.View(), "FASTEST ESCAPES") {
		t.Error("history view should show its title")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("esc should return to the menu, view = %v", m.view)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, testConfig())

	m, cmd := sendSession(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}
