package window

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	backgroundColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	netColor        = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	entityColor     = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	scoreColor      = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	dimColor        = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	pauseColor      = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

const (
	netDash = 8 // Dash and gap length of the center line

	servePrompt = "Press SPACE or click to serve"
	pausedText  = "PAUSED"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// drawSnapshot renders one frame in arena units.
func drawSnapshot(dst *ebiten.Image, snap pong.Snapshot, paused bool) {
	dst.Fill(backgroundColor)

	w, h := float32(snap.Arena.Width), float32(snap.Arena.Height)
	cx := w / 2

	for y := float32(0); y < h; y += 2 * netDash {
		vector.StrokeLine(dst, cx, y, cx, min(y+netDash, h), 1, netColor, false)
	}

	fillRect(dst, snap.Player)
	fillRect(dst, snap.Opponent)
	vector.FillCircle(dst, float32(snap.Ball.X), float32(snap.Ball.Y), float32(snap.Ball.R), entityColor, true)

	drawText(dst, strconv.Itoa(snap.PlayerScore), float64(cx)-40, 12, 1.5, scoreColor)
	drawText(dst, strconv.Itoa(snap.CPUScore), float64(cx)+25, 12, 1.5, scoreColor)

	version := "v" + core.Version
	drawText(dst, version, float64(w)-text.Advance(version, face)-6, float64(h)-20, 1, dimColor)

	switch {
	case paused:
		drawCentered(dst, pausedText, float64(h)/2-13, 2, pauseColor)
	case snap.Phase == pong.PhaseWaitingServe:
		drawCentered(dst, servePrompt, float64(h)-34, 1, dimColor)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), entityColor, false)
}

// drawText draws s with its top-left corner at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawCentered draws s horizontally centered on dst.
func drawCentered(dst *ebiten.Image, s string, y, scale float64, c color.Color) {
	width := text.Advance(s, face) * scale
	x := (float64(dst.Bounds().Dx()) - width) / 2
	drawText(dst, s, x, y, scale, c)
}
