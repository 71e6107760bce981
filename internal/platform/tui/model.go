package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/input"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/replay"
)

// statusTicks is how long a status message replaces the help line.
const statusTicks = 120

// ModelOptions configures a terminal match.
type ModelOptions struct {
	Config    config.PongConfig
	Runtime   core.RuntimeConfig
	Theme     Theme
	HoldTicks int              // Zero means DefaultHoldTicks
	Recorder  *replay.Recorder // Optional
	Sound     *audio.Player    // Optional
}

// Model is the Bubble Tea model for one match against the computer.
// The last row of the terminal is the help line; the rest is the arena.
type Model struct {
	session  *pong.Session
	intents  *pong.IntentBuffer
	hold     input.KeyHold
	pointer  input.Pointer
	last     pong.Snapshot
	recorder *replay.Recorder
	sound    *audio.Player

	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	theme     Theme
	runtime   core.RuntimeConfig
	holdTicks int

	paused   bool
	quitting bool
	status   string
	statusN  int
}

// NewModel creates a model with a fresh session seeded from opts.Runtime.
func NewModel(opts ModelOptions) Model {
	session := pong.NewSeededSession(opts.Config, opts.Runtime.ResolveSeed())

	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	theme := opts.Theme
	if theme.Cells == nil {
		theme = DefaultTheme()
	}

	h := help.New()
	h.Styles = theme.helpStyles()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session:   session,
		intents:   pong.NewIntentBuffer(),
		last:      session.Snapshot(),
		recorder:  opts.Recorder,
		sound:     opts.Sound,
		screen:    core.NewScreen(opts.Runtime.ScreenW, arenaRows(opts.Runtime.ScreenH)),
		keys:      DefaultKeyMap(),
		help:      h,
		theme:     theme,
		runtime:   opts.Runtime,
		holdTicks: holdTicks,
	}
}

// arenaRows is the terminal height minus the help line.
func arenaRows(height int) int {
	return max(1, height-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		handleMouse(&m.pointer, msg, m.viewport(), m.session.Phase() == pong.PhaseWaitingServe, m.intents)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.hold.Press(pong.DirectionUp, m.holdTicks, m.intents)
	case core.ActionDown:
		m.hold.Press(pong.DirectionDown, m.holdTicks, m.intents)
	case core.ActionServe:
		m.intents.RequestServe()
	case core.ActionPause:
		m.paused = !m.paused
		if m.paused {
			m.hold.Release(m.intents)
		}
	case core.ActionReset:
		m.reset()
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionCopy:
		m.copyFrame()
	}
	return m, nil
}

// handleResize resizes the grid. The arena keeps its own units, so the match goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick samples input once and steps the session, unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		in := m.intents.Sample()
		m.hold.Tick(m.intents)
		if m.recorder != nil {
			m.recorder.Record(in)
		}

		res := m.session.Step(in)
		m.last = res.Snapshot
		if m.sound != nil {
			m.sound.HandleEvents(res.Events)
		}
	}

	if m.statusN > 0 {
		m.statusN--
	}

	return m, tickCmd(m.runtime.Interval())
}

// reset starts a new match with zero scores. The random source continues.
func (m *Model) reset() {
	m.session.Reset()
	m.intents.Reset()
	m.hold = input.KeyHold{}
	m.pointer = input.Pointer{}
	m.last = m.session.Snapshot()
	m.paused = false
	if m.recorder != nil {
		m.recorder.MarkReset()
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusN = statusTicks
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.last, m.paused)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed: %v", err)
		return
	}

	filename := fmt.Sprintf("pong_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: %v", err)
		return
	}
	m.setStatus("saved %s", path)
}

// copyFrame puts the current frame on the system clipboard.
func (m *Model) copyFrame() {
	DrawSnapshot(m.screen, m.last, m.paused)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setStatus("clipboard unavailable: %v", err)
		return
	}
	m.setStatus("frame copied to clipboard")
}

func (m Model) viewport() Viewport {
	return Viewport{Cols: m.screen.Width(), Rows: m.screen.Height(), Arena: m.last.Arena}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.last, m.paused)

	footer := m.help.View(m.keys)
	if m.statusN > 0 {
		footer = m.theme.Status.Render(m.status)
	}
	return RenderScreen(m.screen, m.theme) + "\n" + footer
}

// Snapshot returns the last stepped frame.
func (m Model) Snapshot() pong.Snapshot {
	return m.last
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}
