package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagReplaysLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded matches",
	Long: `Display the most recent recordings made with 'pong play --record'
or 'pong serve --record'.

Examples:
  pong replays
  pong replays --limit 50
  pong replays rm <id>`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recording",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysRm,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded match",
	Long: `Rebuild a match from its seed, constants, and inputs, and print how
it ended. Scores are not stored anywhere; they are recomputed here.

Examples:
  pong replay 6f1c2a9e-5b1d-4c1e-9d0a-2f4b8c7e1a33`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Number of recordings to show")
	replaysCmd.AddCommand(replaysRmCmd)
}

// openStore opens the recordings database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runReplays(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	recs, err := store.RecentRecordings(flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recordings: %v\n", err)
		return
	}

	fmt.Println("Recorded matches")
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Play 'pong play --record' to make one!")
		return
	}

	fmt.Printf("  %-36s  %-8s  %-8s  %s\n", "ID", "Frontend", "Length", "Date")
	fmt.Printf("  %-36s  %-8s  %-8s  %s\n", "--", "--------", "------", "----")

	for _, rec := range recs {
		length := ticksToDuration(rec.Ticks).Round(time.Second)
		fmt.Printf("  %-36s  %-8s  %-8s  %s\n", rec.ID, rec.Frontend, length, rec.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplaysRm(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteRecording(args[0]); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no recording %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error deleting recording: %v\n", err)
		}
		return
	}
	fmt.Printf("Deleted %s\n", args[0])
}

func runReplay(cmd *cobra.Command, args []string) {
	store := openStore()
	rec, err := store.Recording(args[0])
	store.Close()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no recording %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pong replays' to see recordings.")
		} else {
			fmt.Fprintf(os.Stderr, "Error loading recording: %v\n", err)
		}
		os.Exit(1)
	}

	cfg, runs, err := replay.Load(*rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding recording: %v\n", err)
		os.Exit(1)
	}

	res := replay.Play(cfg, rec.Seed, runs)
	if res.Ticks != rec.Ticks {
		fmt.Fprintf(os.Stderr, "Warning: replayed %d ticks, recording says %d\n", res.Ticks, rec.Ticks)
	}

	final := res.Final
	fmt.Printf("Replay %s (%s, seed %d)\n", rec.ID, rec.Frontend, rec.Seed)
	fmt.Println()
	fmt.Printf("  Player  %d\n", final.PlayerScore)
	fmt.Printf("  CPU     %d\n", final.CPUScore)
	fmt.Println()
	fmt.Printf("  Length  %s (%d ticks)\n", ticksToDuration(res.Ticks).Round(time.Millisecond), res.Ticks)
	fmt.Printf("  Serves  %d\n", res.Serves)
	fmt.Printf("  Hits    %d\n", res.Hits)
	if res.Resets > 0 {
		fmt.Printf("  Resets  %d (scores shown are since the last reset)\n", res.Resets)
	}
	fmt.Printf("  Ended   %s\n", final.Phase)
}

// ticksToDuration converts a tick count at the current --fps to wall time.
func ticksToDuration(ticks int) time.Duration {
	rt := core.RuntimeConfig{TickRate: flagFPS}
	return time.Duration(ticks) * rt.Interval()
}
