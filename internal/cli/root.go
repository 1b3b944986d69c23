package cli

import (
	"fmt"
	"os"

	"finpom/internal/core/model"
	"finpom/internal/storage"

	"github.com/spf13/cobra"
)

const appName = "FinPom"

var configPath string

// NewRootCommand creates the root command. Without a subcommand it runs the tray app.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finpom",
		Short: "Menu-bar focus timer with focus/break notifications",
		Long: `finpom runs a system-tray focus timer. Enter a duration or pick how many
hours you plan to work, start the countdown, and get notified at every
focus and break transition of the session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			return runTray(settings)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is the user config directory)")
	addRun(rootCmd)
	addPlan(rootCmd)
	addConfig(rootCmd)
	addVersion(rootCmd)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings() (model.Settings, error) {
	var (
		settings model.Settings
		err      error
	)
	if configPath != "" {
		settings, err = storage.LoadSettingsFrom(configPath)
	} else {
		settings, err = storage.LoadSettings(appName)
	}
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	return settings.Normalize(), nil
}

func saveSettings(settings model.Settings) (string, error) {
	if configPath != "" {
		return configPath, storage.SaveSettingsTo(configPath, settings)
	}
	path, err := storage.SettingsPath(appName)
	if err != nil {
		return "", err
	}
	return path, storage.SaveSettingsTo(path, settings)
}
