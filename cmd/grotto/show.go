package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grotto2d/grotto/internal/game"
	"github.com/grotto2d/grotto/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session's saved progress",
	Long: `Shows the progress checkpoint for a session: position, level, and
whether the level's intro dialogue already played. A session that was
never saved starts from the cutscene.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid session id %q\n", args[0])
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	progress, err := store.LoadProgress(id)
	if errors.Is(err, storage.ErrNoProgress) {
		fmt.Printf("Session %d has no saved progress.\n", id)
		fmt.Printf("It will start from the %s scene.\n", game.CutsceneScene)
		return
	}
	if err != nil {
		fatal(err)
	}

	var state game.State
	state.SessionID = id
	state.ApplyLoaded(progress.Position, progress.LevelDifficulty, progress.HasSeenDialogue)

	fmt.Printf("Session %d\n", id)
	fmt.Println()
	fmt.Printf("  Position:  %s\n", progress.Position)
	fmt.Printf("  Level:     %d (%s)\n", progress.LevelDifficulty, state.StartScene())
	fmt.Printf("  Dialogue:  %s\n", seenLabel(progress.HasSeenDialogue))
}

func seenLabel(seen bool) string {
	if seen {
		return "already played"
	}
	return "not yet played"
}
