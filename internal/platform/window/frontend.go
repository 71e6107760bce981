package window

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// FrontendID is the registry ID of the window frontend.
const FrontendID = "window"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays a match in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Window (ebiten)" }

// Run implements registry.Frontend. It blocks until the window closes, the
// user quits, or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong-window"})
	}

	session := pong.NewSeededSession(opts.Config, opts.Runtime.ResolveSeed())
	g := &Game{
		ctx:      ctx,
		session:  session,
		intents:  pong.NewIntentBuffer(),
		last:     session.Snapshot(),
		recorder: opts.Recorder,
		sound:    opts.Sound,
		logger:   logger,
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(int(opts.Config.Arena.Width), int(opts.Config.Arena.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	logger.Info("window opened", "tps", tps, "arena", fmt.Sprintf("%gx%g", opts.Config.Arena.Width, opts.Config.Arena.Height))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	p, c := session.Scores()
	logger.Info("window closed", "player", p, "cpu", c)
	return nil
}
