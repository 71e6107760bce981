package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/platform/input"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestHandleMouse(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 23, Arena: pong.Arena{Width: 800, Height: 500}}
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	t.Run("press in drag zone targets and serves", func(t *testing.T) {
		buf := pong.NewIntentBuffer()
		var p input.Pointer
		handleMouse(&p, press(10, 4), v, true, buf)

		in := buf.Sample()
		if !in.HasTarget || !in.Serve {
			t.Fatalf("Sample() = %+v, expected target and serve", in)
		}
		if _, wantY := v.ArenaPoint(10, 4); in.Target != wantY {
			t.Errorf("Target = %f, expected %f", in.Target, wantY)
		}
	})

	t.Run("press outside drag zone only serves", func(t *testing.T) {
		buf := pong.NewIntentBuffer()
		var p input.Pointer
		handleMouse(&p, press(70, 4), v, true, buf)

		if in := buf.Sample(); in.HasTarget || !in.Serve {
			t.Errorf("Sample() = %+v, expected serve only", in)
		}
	})

	t.Run("drag follows motion until release", func(t *testing.T) {
		buf := pong.NewIntentBuffer()
		var p input.Pointer
		handleMouse(&p, press(10, 4), v, false, buf)
		buf.Sample()

		handleMouse(&p, tea.MouseMsg{X: 12, Y: 15, Action: tea.MouseActionMotion}, v, false, buf)
		if in := buf.Sample(); !in.HasTarget {
			t.Error("motion while dragging should retarget")
		}

		handleMouse(&p, tea.MouseMsg{X: 12, Y: 15, Action: tea.MouseActionRelease}, v, false, buf)
		handleMouse(&p, tea.MouseMsg{X: 12, Y: 2, Action: tea.MouseActionMotion}, v, false, buf)
		if in := buf.Sample(); in.HasTarget {
			t.Error("motion after release should be ignored")
		}
	})

	t.Run("right button ignored", func(t *testing.T) {
		buf := pong.NewIntentBuffer()
		var p input.Pointer
		handleMouse(&p, tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, v, true, buf)
		if in := buf.Sample(); in != (pong.Intent{}) {
			t.Errorf("Sample() = %+v, expected nothing", in)
		}
	})
}
