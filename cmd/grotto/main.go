// grotto is the save-system admin tool for the Grotto platformer.
// It manages the SQLite database the game saves into: named session
// slots, per-session level progress, and interface settings.
//
// Usage:
//
//	grotto sessions                 - List save sessions
//	grotto add <name>               - Create a new session
//	grotto rename <id> <name>       - Rename a session
//	grotto delete <id>...           - Delete sessions (and their progress)
//	grotto show <id>                - Show a session's saved progress
//	grotto save <id>                - Write a progress checkpoint
//	grotto dialogue <id>            - Mark the level intro dialogue as seen
//	grotto settings                 - Show or change interface settings
//
// Global flags:
//
//	--db <path>      - Path to the save database (default from config)
//	--config <path>  - Path to a config file
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grotto2d/grotto/internal/config"
	"github.com/grotto2d/grotto/internal/diskspace"
	"github.com/grotto2d/grotto/internal/storage"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grotto",
	Short: "Grotto save system - manage sessions and progress",
	Long: `Grotto is the save backend for the Grotto 2D platformer.

It owns the save database: up to 50 named session slots, one progress
checkpoint per session, and the interface settings row.

Examples:
  grotto sessions
  grotto add Hero42
  grotto show 3
  grotto save 3 --pos=-4.75,-2.04 --level 2
  grotto delete 3 7`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the save database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a config file")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(dialogueCmd)
	rootCmd.AddCommand(settingsCmd)
}

// openStore loads the config and opens the save database with a
// logger at the configured level.
func openStore() (*storage.Store, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "grotto",
	})
	if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(lvl)
	}

	return storage.Open(dbPath,
		storage.WithLogger(logger),
		storage.WithSpaceChecker(func() bool {
			return diskspace.HasEnough(".", cfg.Disk.MinFreeBytes)
		}),
	)
}

// fatal prints a user-facing message for err and exits.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
	os.Exit(1)
}

// userMessage maps the storage error taxonomy to the messages shown
// to the player.
func userMessage(err error) string {
	var validation *storage.ValidationError
	var capacity *storage.CapacityError
	var duplicate *storage.DuplicateNameError
	var invalid *storage.InvalidSessionError
	var corrupt *storage.CorruptRecordError
	var unavailable *storage.UnavailableError

	switch {
	case errors.As(err, &validation):
		if validation.Field == "session name" {
			return "Name must be up to 15 letters/numbers (A-Z, a-z, 0-9), no spaces."
		}
		return fmt.Sprintf("Invalid %s: %s.", validation.Field, validation.Reason)
	case errors.As(err, &capacity):
		return fmt.Sprintf("Cannot add session: limit of %d reached.", capacity.Limit)
	case errors.As(err, &duplicate):
		return fmt.Sprintf("Session name already exists. Try adding a number (e.g., %q).", duplicate.Suggestion)
	case errors.As(err, &invalid):
		return fmt.Sprintf("No session with id %d. Choose a different session.", invalid.ID)
	case errors.As(err, &corrupt):
		return fmt.Sprintf("Saved data for session %d is corrupted.", corrupt.SessionID)
	case errors.Is(err, storage.ErrLowDiskSpace):
		return "Not enough free disk space. Free up space or delete sessions."
	case errors.As(err, &unavailable):
		return "Database is unavailable. Please try again later."
	default:
		return err.Error()
	}
}
