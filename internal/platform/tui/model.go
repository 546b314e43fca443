package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/registry"
)

// debugHeight is the height of the debug window including its border.
const debugHeight = 12

// resizer is implemented by games that can follow a terminal resize without
// losing their state.
type resizer interface {
	Resize(w, h int)
}

// debugger is implemented by games that expose state for the debug window.
type debugger interface {
	DebugLines() []string
}

// Options configures a game session.
type Options struct {
	Logger      *log.Logger   // nil discards logs
	Ring        *LogRing      // lines shown in the debug window; may be nil
	RepeatGuard time.Duration // see RepeatGuard
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	guard      *RepeatGuard
	help       help.Model
	logger     *log.Logger
	ring       *LogRing

	width, height int
	showDebug     bool
	quitting      bool
	backToMenu    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		guard:      NewRepeatGuard(opts.RepeatGuard),
		help:       help.New(),
		logger:     logger.With("mode", game.ID()),
		ring:       opts.Ring,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "title", m.game.Title())

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionDebug:
		m.showDebug = !m.showDebug
		m.logger.Debug("debug window toggled", "visible", m.showDebug)
		m.relayout()
		return m, nil
	case action == core.ActionNone:
		return m, nil
	}

	if !m.guard.Allow(msg.String(), time.Now()) {
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// relayout resizes the game area to what the help line and debug window leave.
func (m *Model) relayout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) gameHeight() int {
	footer := lipgloss.Height(m.help.View(m.keyMapper.Keys))
	if m.showDebug {
		footer += debugHeight
	}
	return max(0, m.height-footer)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, note := range result.Notes {
		m.logger.Info(note)
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to ~/.magicsim/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".magicsim", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.showDebug {
		b.WriteString("\n")
		b.WriteString(m.debugView())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys)))
	return b.String()
}

// debugView renders the game state next to the most recent log lines.
func (m Model) debugView() string {
	inner := debugHeight - 2 // border
	bodyLines := inner - 1   // title

	var state []string
	if d, ok := m.game.(debugger); ok {
		state = d.DebugLines()
	}
	state = lastLines(state, bodyLines)

	var logs []string
	if m.ring != nil {
		logs = lastLines(m.ring.Lines(), bodyLines)
	}

	half := max(10, (m.width-4)/2)
	left := lipgloss.NewStyle().Width(half).MaxWidth(half).Render(
		panelTitleStyle.Render("State") + "\n" + strings.Join(state, "\n"))
	right := lipgloss.NewStyle().Width(half).MaxWidth(half).Render(
		panelTitleStyle.Render("Log") + "\n" + dimStyle.Render(strings.Join(logs, "\n")))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return panelStyle.Height(inner).MaxHeight(debugHeight).Render(body)
}

func lastLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}

// BackToMenu reports whether the session ended with a request for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a game session and blocks until it ends.
// backToMenu is true when the player left with Esc/B instead of quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
