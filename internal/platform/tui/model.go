package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/registry"
	"github.com/vovakirdan/ringtrap/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

var (
	statusStyle = lipgloss.NewStyle().Foreground(colorEscaped)
	warnStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	footerStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// screenshotDir resolves where ctrl+s writes frames.
var screenshotDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ringtrap", "screenshots"), nil
}

// Model is the Bubble Tea model for running a game.
// It is used directly by `play` and embedded in menu sessions.
type Model struct {
	game       registry.Game
	gen        uint64 // tags this model's ticks
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	gauge      SpeedGauge
	gaugeReady bool
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusWarn bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current finished run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
// When withMenu is false the back binding is disabled.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, withMenu bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(withMenu)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		gen:        nextTickGen(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		store:      store,
		config:     cfg,
		keys:       keys,
		help:       h,
		gauge:      NewSpeedGauge(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.setStatus(fmt.Sprintf("screenshot failed: %v", err), true)
		} else {
			m.setStatus("saved "+path, false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The board is scaled at render time, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
// Ticks scheduled by another model end their chain here, so exactly one
// chain drives each game.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Store each finished run once; a reset starts a new one.
	if m.gameState.GameOver {
		if !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	if sc, ok := m.game.(SpeedController); ok {
		lo, hi := sc.SpeedRange()
		m.gauge.Set(sc.Speed(), lo, hi)
		if !m.gaugeReady {
			m.gauge.Snap()
			m.gaugeReady = true
		}
	}
	m.gauge.Step()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRun stores the finished run, degrading to a footer warning when the
// history is unavailable.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	run := core.RunSummary{Ticks: m.gameState.Score}
	if rr, ok := m.game.(registry.RunReporter); ok {
		run = rr.RunSummary()
	}

	if _, err := m.store.SaveRun(m.game.ID(), run); err != nil {
		m.setStatus("run not saved: "+err.Error(), true)
	}
}

func (m *Model) setStatus(msg string, warn bool) {
	m.status = msg
	m.statusWarn = warn
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := screenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	if h := m.config.ScreenH - lipgloss.Height(footer); h != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// footer shows the speed gauge and either the latest status or key help.
func (m Model) footer() string {
	left := ""
	if _, ok := m.game.(SpeedController); ok {
		left = m.gauge.View() + "  "
	}

	switch {
	case m.status != "" && m.statusWarn:
		return left + warnStyle.Render(m.status)
	case m.status != "":
		return left + statusStyle.Render(m.status)
	}

	h := m.help
	h.Width = max(0, m.config.ScreenW-lipgloss.Width(left))
	return left + footerStyle.Render(h.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
