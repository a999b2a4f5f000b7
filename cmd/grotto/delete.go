package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete save sessions",
	Long: `Deletes the given sessions and their saved progress. The progress
rows go first so a session can never be removed while its checkpoint
remains. Unknown ids are ignored.

Examples:
  grotto delete 3
  grotto delete 3 7 12`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid session id %q\n", arg)
			os.Exit(1)
		}
		ids = append(ids, id)
	}

	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	if err := store.DeleteSessions(ids); err != nil {
		fatal(err)
	}

	fmt.Printf("Deleted %d session(s).\n", len(ids))
}
