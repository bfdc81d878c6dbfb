package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last key press.
const DefaultHoldWindow = 150 * time.Millisecond

// Options configures a terminal session.
type Options struct {
	Logger     *log.Logger   // Nil discards logs
	HoldWindow time.Duration // Zero uses DefaultHoldWindow
	HideHelp   bool          // Hide the key help footer
}

// resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	runID      string
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hold := opts.HoldWindow
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	holdTicks := int(hold / cfg.TickInterval())

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   !opts.HideHelp,
		held:       newHeldKeys(holdTicks),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	m.config.ScreenH = m.screen.Height()
	m.help.Width = cfg.ScreenW
	return m
}

// gameHeight is the number of rows left for the game once the footer is drawn.
func (m Model) gameHeight(total int) int {
	if m.showHelp {
		return max(total-1, 0)
	}
	return total
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "phase", m.gameState.Phase, "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	case core.ActionSelectEasy, core.ActionSelectHard:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = m.gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Held directions do not survive a resize
	m.held.Release()

	// The simulation runs in world units, so a resize only changes the projection
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if m.gameState.Phase != "playing" {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks. The game is charged the wall-clock
// time since the previous tick, since Bubble Tea only schedules the next tick
// once an update has finished.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame)

	var elapsed time.Duration
	if !now.IsZero() {
		if !m.lastTick.IsZero() && now.After(m.lastTick) {
			elapsed = now.Sub(m.lastTick)
		}
		m.lastTick = now
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// A direction held at the end of a run must not move the next one
	if prev.Phase == "playing" && m.gameState.Phase != "playing" {
		m.held.Release()
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	m.held.Tick()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition logs run start and run end.
func (m *Model) logTransition(prev, next core.GameState) {
	if next.Phase == "playing" && prev.Phase != "playing" {
		m.runID = uuid.NewString()
		m.logger.Info("run started", "game", m.game.ID(), "run", m.runID)
		return
	}

	if prev.Phase == "playing" && next.Phase != "playing" {
		fields := []any{
			"game", m.game.ID(),
			"run", m.runID,
			"phase", next.Phase,
			"score", next.Score,
			"time", next.Elapsed.Round(10 * time.Millisecond),
		}
		if next.Grade != "" {
			fields = append(fields, "rating", next.Grade)
		}
		m.logger.Info("run ended", fields...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockbreak", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
