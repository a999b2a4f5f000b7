package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grotto2d/grotto/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Faint(true)
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List save sessions",
	Long:  `Shows all save sessions, newest first, with their last save time.`,
	Run:   runSessions,
}

func runSessions(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	sessions, err := store.ListSessions()
	if err != nil {
		fatal(err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		fmt.Println()
		fmt.Println("Run 'grotto add <name>' to create one.")
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Sessions: %d/%d", len(sessions), storage.MaxSessions)))
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, s := range sessions {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-4s  %-*s  %s\n", "ID", maxNameLen, "Name", "Last save")
	fmt.Printf("  %-4s  %-*s  %s\n", "--", maxNameLen, "----", "---------")

	for _, s := range sessions {
		lastSave := "-"
		if !s.LastSavedAt.IsZero() {
			lastSave = s.LastSavedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %s  %-*s  %s\n", idStyle.Render(fmt.Sprintf("%-4d", s.ID)), maxNameLen, s.Name, lastSave)
	}

	fmt.Println()
	fmt.Println("Run 'grotto show <id>' to inspect a session's progress.")
}
