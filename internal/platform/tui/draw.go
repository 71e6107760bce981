package tui

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

const (
	paddleRune = '█'
	ballRune   = '●'
	netRune    = '│'

	servePrompt = "Press SPACE or click to serve"
	pausedText  = "PAUSED"
)

// Viewport maps arena units onto a character grid.
type Viewport struct {
	Cols, Rows int
	Arena      pong.Arena
}

func (v Viewport) sx() float64 { return float64(v.Cols) / v.Arena.Width }
func (v Viewport) sy() float64 { return float64(v.Rows) / v.Arena.Height }

// Col returns the column containing arena x.
func (v Viewport) Col(x float64) int { return int(math.Floor(x * v.sx())) }

// Row returns the row containing arena y.
func (v Viewport) Row(y float64) int { return int(math.Floor(y * v.sy())) }

// ArenaPoint returns the arena coordinates of the center of a cell.
func (v Viewport) ArenaPoint(col, row int) (x, y float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / v.sx(), (float64(row) + 0.5) / v.sy()
}

// fillRect covers every cell r overlaps, at least one cell in each direction.
func (v Viewport) fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.Col(r.X), v.Row(r.Y)
	x1 := max(x0+1, int(math.Ceil(r.Right()*v.sx())))
	y1 := max(y0+1, int(math.Ceil(r.Bottom()*v.sy())))
	dst.FillRect(x0, y0, x1, y1, ch, c)
}

// DrawSnapshot renders a match frame: net, paddles, ball, scores, version,
// and the serve prompt or pause banner.
func DrawSnapshot(dst *core.Screen, snap pong.Snapshot, paused bool) {
	dst.Clear()
	v := Viewport{Cols: dst.Width(), Rows: dst.Height(), Arena: snap.Arena}
	if v.Cols <= 0 || v.Rows <= 0 || snap.Arena.Width <= 0 || snap.Arena.Height <= 0 {
		return
	}

	mid := v.Col(snap.Arena.CenterX())
	dst.DrawDashedVLine(mid, 1, 1, netRune, core.ColorDarkGray)

	v.fillRect(dst, snap.Player, paddleRune, core.ColorWhite)
	v.fillRect(dst, snap.Opponent, paddleRune, core.ColorWhite)
	dst.SetColored(v.Col(snap.Ball.X), v.Row(snap.Ball.Y), ballRune, core.ColorBrightWhite)

	player := strconv.Itoa(snap.PlayerScore)
	dst.DrawText(mid-3-len(player)+1, 1, player, core.ColorGray)
	dst.DrawText(mid+3, 1, strconv.Itoa(snap.CPUScore), core.ColorGray)

	version := "v" + core.Version
	dst.DrawText(v.Cols-len(version)-1, v.Rows-1, version, core.ColorDarkGray)

	switch {
	case paused:
		dst.DrawTextCentered(v.Rows/2, pausedText, core.ColorYellow)
	case snap.Phase == pong.PhaseWaitingServe:
		dst.DrawTextCentered(v.Rows-2, servePrompt, core.ColorGray)
	}
}
