package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grotto2d/grotto/internal/storage"
)

var (
	flagResolution string
	flagGraphics   string
	flagVolume     int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the stored interface settings",
	Long:  `Shows the single stored settings row: resolution, graphics quality, volume.`,
	Run:   runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the stored interface settings",
	Long: `Replaces the stored settings row.

Examples:
  grotto settings set --resolution 1920x1080 --graphics High --volume 80`,
	Run: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().StringVar(&flagResolution, "resolution", "1920x1080", "Screen resolution")
	settingsSetCmd.Flags().StringVar(&flagGraphics, "graphics", "High", "Graphics quality level")
	settingsSetCmd.Flags().IntVar(&flagVolume, "volume", 100, "Master volume (0-100)")
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettings(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	cfg, err := store.LoadSettings()
	if errors.Is(err, storage.ErrNoSettings) {
		fmt.Println("No settings saved yet.")
		fmt.Println()
		fmt.Println("Run 'grotto settings set' to store them.")
		return
	}
	if err != nil {
		fatal(err)
	}

	fmt.Printf("  Resolution:  %s\n", cfg.Resolution)
	fmt.Printf("  Graphics:    %s\n", cfg.Graphics)
	fmt.Printf("  Volume:      %d\n", cfg.Volume)
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	cfg := storage.Settings{
		Resolution: flagResolution,
		Graphics:   flagGraphics,
		Volume:     flagVolume,
	}
	if err := store.SaveSettings(cfg); err != nil {
		fatal(err)
	}

	fmt.Println("Settings saved.")
}
