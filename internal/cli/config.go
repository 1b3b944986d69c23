package cli

import (
	"fmt"

	"finpom/internal/storage"

	"github.com/spf13/cobra"
)

func addConfig(topLevel *cobra.Command) {
	write := false
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings.",
		Example: `
finpom config
finpom config --write --config ./settings.yaml
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			serialized, err := storage.MarshalSettings(settings)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(serialized))

			if !write {
				return nil
			}
			path, err := saveSettings(settings)
			if err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the effective settings to the settings file.")

	topLevel.AddCommand(cmd)
}
