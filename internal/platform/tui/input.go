package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/platform/input"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// DefaultHoldTicks is how long one key press keeps the paddle moving.
// Terminals report no key release; auto-repeat renews the hold.
const DefaultHoldTicks = 6

// handleMouse maps a cell-based mouse event onto the shared pointer logic.
func handleMouse(p *input.Pointer, msg tea.MouseMsg, v Viewport, waiting bool, buf *pong.IntentBuffer) {
	x, y := v.ArenaPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.Press(x, y, v.Arena, waiting, buf)
		}
	case tea.MouseActionMotion:
		p.Move(y, buf)
	case tea.MouseActionRelease:
		p.Release()
	}
}
