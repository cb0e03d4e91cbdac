package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"regsift/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active regsift config file in your editor.

Use it when a new season's items export carries different Category labels, or the
orders export names iftar items with another keyword.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

A missing config file is created from the example template first.
After the editor exits, the file is validated; an invalid file is reported and left as written.`,
	Example: `
  # Edit active config
  regsift config edit

  # Edit a season-specific config with VS Code
  EDITOR="code --wait" regsift --configFile ./regsift-2027.yaml config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "No config file found. Created example config at: %s\n", configPath)
		}

		editor := resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
		editorCommand, err := buildEditorCommand(editor, configPath)
		if err != nil {
			return err
		}
		editorCommand.Stdin = os.Stdin
		editorCommand.Stdout = os.Stdout
		editorCommand.Stderr = os.Stderr
		if err := editorCommand.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		cfg, err := validateConfigFile(configPath)
		if err != nil {
			return err
		}

		logger.Debug("config edited",
			zap.String("file", configPath),
			zap.String("iftar_category", cfg.Legacy.IftarCategory),
			zap.String("programming_category", cfg.Legacy.ProgrammingCategory),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved and validated: %s\n", configPath)
		return nil
	},
}

// validateConfigFile checks the file content on its own, without the values
// viper already merged from the environment.
func validateConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading edited config failed: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func resolveEditorValue(visual, editor string) string {
	if strings.TrimSpace(visual) != "" {
		return visual
	}
	if strings.TrimSpace(editor) != "" {
		return editor
	}
	return "vi"
}

// buildEditorCommand splits editors given with arguments, like "code --wait".
func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
