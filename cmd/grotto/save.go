package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grotto2d/grotto/internal/game"
	"github.com/grotto2d/grotto/internal/storage"
)

var (
	flagSavePos   string
	flagSaveLevel int
	flagSaveSeen  bool
	flagSaveAuto  bool
)

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Write a progress checkpoint for a session",
	Long: `Writes a progress checkpoint, exactly as the game's save triggers do:
insert the session's progress row if absent, otherwise overwrite it.
A session always has at most one checkpoint.

Examples:
  grotto save 3 --pos=-4.75,-2.04 --level 1
  grotto save 3 --pos 10.5,3.25 --level 2 --seen
  grotto save 3 --auto`,
	Args: cobra.ExactArgs(1),
	Run:  runSave,
}

func init() {
	saveCmd.Flags().StringVar(&flagSavePos, "pos", game.DefaultSpawn.String(), "Position as x,y")
	saveCmd.Flags().IntVar(&flagSaveLevel, "level", 1, "Level difficulty (>= 1)")
	saveCmd.Flags().BoolVar(&flagSaveSeen, "seen", false, "Mark the level intro dialogue as seen")
	saveCmd.Flags().BoolVar(&flagSaveAuto, "auto", false, "Record the write as an auto-save trigger")
}

func runSave(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid session id %q\n", args[0])
		os.Exit(1)
	}

	pos, err := game.ParsePosition(flagSavePos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --pos %q (expected x,y)\n", flagSavePos)
		os.Exit(1)
	}

	mode := storage.SaveManual
	if flagSaveAuto {
		mode = storage.SaveAuto
	}

	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	if err := store.SaveProgress(id, pos, flagSaveLevel, flagSaveSeen, mode); err != nil {
		fatal(err)
	}

	fmt.Printf("Saved session %d at %s, level %d (%s save).\n", id, pos, flagSaveLevel, mode)
}
