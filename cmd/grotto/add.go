package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new save session",
	Long: `Creates a new save session with the given name.

Names are 1-15 letters/digits, unique regardless of case. At most 50
sessions may exist.

Examples:
  grotto add Hero42
  grotto add speedrun`,
	Args: cobra.ExactArgs(1),
	Run:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	session, err := store.CreateSession(args[0])
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Created session %q (id %d).\n", session.Name, session.ID)
}
