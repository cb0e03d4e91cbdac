package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoConfigFile = errors.New("no configuration file found")

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by regsift.

Afterwards the built-in defaults apply again, including the default Category labels.
If no configuration file is active, the command returns an error.`,
	Example: `
  # Delete active config
  regsift config delete

  # Delete a season-specific config
  regsift --configFile ./regsift-2027.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if err := deleteConfigFile(configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file deleted: %s\n", configPath)
		return nil
	},
}

func deleteConfigFile(path string) error {
	if path == "" {
		return errNoConfigFile
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errNoConfigFile, path)
		}
		return fmt.Errorf("delete configuration file: %w", err)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
