package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringtrap/internal/catalog"
	"github.com/vovakirdan/ringtrap/internal/core"
	_ "github.com/vovakirdan/ringtrap/internal/games/ringescape"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default() failed: %v", err)
	}
	return cat
}

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return model, cmd
}

func TestMenuItemsCatalogFirst(t *testing.T) {
	items := MenuItems(defaultCatalog(t))
	if len(items) < 2 {
		t.Fatalf("got %d items, want catalog game plus stub", len(items))
	}

	first := items[0]
	if first.GameID != "ringescape" || !first.HasRecord {
		t.Errorf("first item = %+v, want the ringescape catalog record", first)
	}

	var stub *MenuItem
	for i := range items {
		if items[i].GameID == stubGameID {
			stub = &items[i]
		}
	}
	if stub == nil {
		t.Fatal("registered games missing from the catalog should still be listed")
	}
	if stub.HasRecord {
		t.Error("stub has no catalog record")
	}
}

func TestMenuItemsWithoutCatalog(t *testing.T) {
	items := MenuItems(nil)
	for _, item := range items {
		if item.HasRecord {
			t.Errorf("%s should have no record without a catalog", item.GameID)
		}
	}
	if len(items) == 0 {
		t.Error("registered games should be listed")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(defaultCatalog(t), nil, testConfig())
	n := len(m.items)

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at the top, got %d", m.cursor)
	}

	for range n + 3 {
		m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != n-1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}

	m, _ = sendMenu(t, m, runes("k"))
	if m.cursor != n-2 {
		t.Errorf("k should move up, got %d", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(defaultCatalog(t), nil, testConfig())

	m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting should exit the menu")
	}
	if m.Selected() == nil || m.Selected().GameID != "ringescape" {
		t.Fatalf("Selected() = %+v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(defaultCatalog(t), nil, testConfig())
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open run history")
	}

	m = NewMenuModel(defaultCatalog(t), nil, testConfig())
	m, _ = sendMenu(t, m, runes("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestMenuViewShowsCard(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun("ringescape", core.RunSummary{Ticks: 1234, Speed: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(defaultCatalog(t), store, testConfig())
	view := m.View()

	for _, want := range []string{"Ring Escape", "ringtrap play ringescape", "Best escape: 1234 ticks"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, nil, testConfig())
	m, _ = sendMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	cfg := m.Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, want 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}
