package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagFrontend string
	flagRecord   bool
	flagSound    bool
	flagVolume   float64
	flagTheme    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match. The ball waits at the center until you serve.

Controls (terminal):
  W/Up, S/Down  - Move paddle
  Mouse drag    - Move paddle (left 60% of the screen)
  Space/Click   - Serve
  P/Esc         - Pause
  R             - Reset scores
  Ctrl+S        - Save a text screenshot
  Ctrl+Y        - Copy the frame to the clipboard
  Q/Ctrl+C      - Quit

Controls (window):
  W/Up, S/Down  - Move paddle while held
  Mouse/Touch   - Drag paddle, press to serve
  Space         - Serve
  P / R / Q     - Pause / Reset / Quit

Examples:
  pong play
  pong play --theme neon
  pong play --frontend window --sound
  pong play --record --seed 7
  pong play --config ./fast-ball.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", tui.FrontendID, "Frontend to play in (see 'pong frontends')")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the match inputs for 'pong replay'")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagTheme, "theme", "classic", "Terminal theme: classic, neon, monochrome")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'pong frontends' to see available frontends.")
		os.Exit(1)
	}

	gameCfg := loadConfig()

	// Terminal size for the grid; the window frontend ignores it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	// Fix the seed now so a recording can reproduce the serves
	rt.Seed = rt.ResolveSeed()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}
	if tf, ok := frontend.(*tui.Frontend); ok {
		theme, themeErr := tui.ThemeByName(flagTheme)
		if themeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", themeErr)
			os.Exit(1)
		}
		tf.Theme = &theme
	}

	opts := registry.RunOptions{
		Config:  gameCfg,
		Runtime: rt,
		Logger:  logger,
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if soundErr := player.Init(); soundErr != nil {
			logger.Warn("sound disabled", "error", soundErr)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	var rec *replay.Recorder
	if flagRecord {
		rec = replay.NewRecorder()
		opts.Recorder = rec
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runErr := frontend.Run(ctx, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}

	if rec != nil {
		saveRecording(rec, frontend.ID(), opts)
	}
}

// saveRecording stores a finished match. Failures are reported, not fatal.
func saveRecording(rec *replay.Recorder, frontendID string, opts registry.RunOptions) {
	if rec.Ticks() == 0 {
		return
	}

	row, err := rec.Archive(frontendID, opts.Config, opts.Runtime.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not encode recording: %v\n", err)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRecording(row)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save recording: %v\n", err)
		return
	}
	fmt.Printf("Recording saved: %s (%d ticks)\n", id, row.Ticks)
	fmt.Printf("Replay with: pong replay %s\n", id)
}
