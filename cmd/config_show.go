package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regsift/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.
Without a config file the built-in defaults are shown.`,
	Example: `
  # Show active configuration
  regsift config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, using defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("legacy.iftar_category: %s\n", cfg.Legacy.IftarCategory)
		fmt.Printf("legacy.programming_category: %s\n", cfg.Legacy.ProgrammingCategory)
		fmt.Printf("orders.iftar_keyword: %s\n", cfg.Orders.IftarKeyword)
		fmt.Printf("process.workers: %d\n", cfg.Process.Workers)
		fmt.Printf("log.level: %s\n", cfg.Log.Level)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
