package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var dialogueCmd = &cobra.Command{
	Use:   "dialogue <id>",
	Short: "Mark a session's level intro dialogue as seen",
	Long: `Flips the dialogue-seen flag for a session without touching its
position or level, so the intro dialogue does not replay on resume.`,
	Args: cobra.ExactArgs(1),
	Run:  runDialogue,
}

func runDialogue(cmd *cobra.Command, args []string) {
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

	if err := store.MarkDialogueSeen(id); err != nil {
		fatal(err)
	}

	fmt.Printf("Marked dialogue as seen for session %d.\n", id)
}
