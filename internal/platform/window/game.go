// Package window provides the graphical ebiten frontend: a dashed net,
// scores along the top, and the serve prompt near the bottom edge.
package window

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/input"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/replay"
)

// Game implements ebiten.Game around one match session.
type Game struct {
	ctx      context.Context
	session  *pong.Session
	intents  *pong.IntentBuffer
	pointer  input.Pointer
	last     pong.Snapshot
	recorder *replay.Recorder
	sound    *audio.Player
	logger   *log.Logger

	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
	paused   bool
}

// Update samples input once and steps the session. Called at the configured TPS.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	g.readKeys()
	g.readPointer()

	if g.paused {
		return nil
	}

	in := g.intents.Sample()
	if g.recorder != nil {
		g.recorder.Record(in)
	}
	res := g.session.Step(in)
	g.last = res.Snapshot

	if g.sound != nil {
		g.sound.HandleEvents(res.Events)
	}
	for _, e := range res.Events {
		if e.Kind == pong.EventPoint {
			g.logger.Debug("point", "scorer", e.Side, "player", g.last.PlayerScore, "cpu", g.last.CPUScore)
		}
	}
	return nil
}

// readKeys maps held keys directly; ebiten reports key releases.
func (g *Game) readKeys() {
	g.intents.Hold(pong.DirectionUp, ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp))
	g.intents.Hold(pong.DirectionDown, ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown))
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.intents.RequestServe()
	}
}

// readPointer feeds mouse and the first active touch into the pointer logic.
// Layout keeps logical pixels equal to arena units, so no scaling is needed.
func (g *Game) readPointer() {
	waiting := g.session.Phase() == pong.PhaseWaitingServe
	arena := g.last.Arena

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		g.pointer.Press(float64(x), float64(y), arena, waiting, g.intents)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		_, y := ebiten.CursorPosition()
		g.pointer.Move(float64(y), g.intents)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointer.Release()
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if !g.touching && len(g.touchIDs) > 0 {
		g.touch = g.touchIDs[0]
		g.touching = true
		x, y := ebiten.TouchPosition(g.touch)
		g.pointer.Press(float64(x), float64(y), arena, waiting, g.intents)
		return
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touching = false
			g.pointer.Release()
			return
		}
		_, y := ebiten.TouchPosition(g.touch)
		g.pointer.Move(float64(y), g.intents)
	}
}

// reset starts a new match with zero scores.
func (g *Game) reset() {
	g.session.Reset()
	g.intents.Reset()
	g.pointer = input.Pointer{}
	g.touching = false
	g.paused = false
	g.last = g.session.Snapshot()
	if g.recorder != nil {
		g.recorder.MarkReset()
	}
	g.logger.Info("match reset")
}

// Draw renders the last stepped frame.
func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, g.last, g.paused)
}

// Layout fixes the logical screen to the arena; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.last.Arena.Width), int(g.last.Arena.Height)
}
