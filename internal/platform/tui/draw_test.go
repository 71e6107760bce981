package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func initialSnapshot() pong.Snapshot {
	return pong.NewSeededSession(config.Default(), 1).Snapshot()
}

func TestDrawSnapshotLayout(t *testing.T) {
	screen := core.NewScreen(80, 23)
	DrawSnapshot(screen, initialSnapshot(), false)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"net top", 40, 0, netRune},
		{"net gap", 40, 3, ' '},
		{"player paddle top-left", 2, 9, paddleRune},
		{"player paddle bottom-right", 3, 13, paddleRune},
		{"below player paddle", 2, 14, ' '},
		{"right of player paddle", 4, 9, ' '},
		{"opponent paddle", 76, 9, paddleRune},
		{"ball", 40, 11, ballRune},
		{"player score", 37, 1, '0'},
		{"cpu score", 43, 1, '0'},
	}

	for _, tc := range tests {
		if got := screen.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: cell (%d, %d) = %q, expected %q", tc.name, tc.x, tc.y, got, tc.want)
		}
	}

	if !strings.Contains(screen.Row(21), servePrompt) {
		t.Errorf("row 21 = %q, expected serve prompt", screen.Row(21))
	}
	if !strings.HasSuffix(strings.TrimRight(screen.Row(22), " "), "v"+core.Version) {
		t.Errorf("row 22 = %q, expected version bottom-right", screen.Row(22))
	}
}

func TestDrawSnapshotPausedHidesPrompt(t *testing.T) {
	screen := core.NewScreen(80, 23)
	DrawSnapshot(screen, initialSnapshot(), true)

	if !strings.Contains(screen.String(), pausedText) {
		t.Error("expected pause banner")
	}
	if strings.Contains(screen.String(), servePrompt) {
		t.Error("serve prompt should be hidden while paused")
	}
}

func TestDrawSnapshotNoPromptWhileRallying(t *testing.T) {
	s := pong.NewSeededSession(config.Default(), 1)
	snap := s.Step(pong.Intent{Serve: true}).Snapshot

	screen := core.NewScreen(80, 23)
	DrawSnapshot(screen, snap, false)
	if strings.Contains(screen.String(), servePrompt) {
		t.Error("serve prompt should be hidden during a rally")
	}
}

func TestDrawSnapshotTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		screen := core.NewScreen(size[0], size[1])
		// Must not panic
		DrawSnapshot(screen, initialSnapshot(), false)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 23, Arena: pong.Arena{Width: 800, Height: 500}}
	cellW, cellH := 800.0/80, 500.0/23

	for _, p := range [][2]float64{{0, 0}, {123, 77}, {799, 499}, {400, 250}} {
		x, y := v.ArenaPoint(v.Col(p[0]), v.Row(p[1]))
		if math.Abs(x-p[0]) > cellW || math.Abs(y-p[1]) > cellH {
			t.Errorf("point %v maps back to (%f, %f), more than one cell away", p, x, y)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "ab", core.ColorWhite)
	screen.DrawText(2, 0, "cd", core.ColorGray)

	out := RenderScreen(screen, MonochromeTheme())
	if !strings.Contains(out, "abcd") {
		t.Errorf("RenderScreen() = %q, expected plain text with monochrome theme", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range append(ThemeNames(), "") {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q) failed: %v", name, err)
		}
	}
	if _, err := ThemeByName("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
