package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a save session",
	Long: `Renames an existing session. The new name follows the same rules as
'grotto add': 1-15 letters/digits, unique regardless of case.`,
	Args: cobra.ExactArgs(2),
	Run:  runRename,
}

func runRename(cmd *cobra.Command, args []string) {
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

	if err := store.RenameSession(id, args[1]); err != nil {
		fatal(err)
	}

	fmt.Printf("Renamed session %d to %q.\n", id, args[1])
}
