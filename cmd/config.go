package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage regsift configuration file values.",
	Long: `Create, edit, display and delete the regsift configuration file.

The configuration stores the values used to route export rows:
- legacy.iftar_category / legacy.programming_category (items export Category column)
- orders.iftar_keyword (orders export Item Name keyword)
- process.workers
- log.level`,
	Example: `
  # Create default config in $HOME/.regsift.yaml
  regsift config create

  # Edit config in $VISUAL/$EDITOR and validate on save
  regsift config edit

  # Show active config and source file
  regsift config show

  # Delete active config
  regsift config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
