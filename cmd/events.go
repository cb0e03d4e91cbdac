package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"regsift/config"
	"regsift/importer"
	"regsift/output"
)

var (
	eventsInputs      []string
	eventsInputFormat string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the distinct events per category",
	Long: `List the values accepted by "extract --event" for each category.

Events are the distinct item names of classified rows, in the order they first appear.`,
	Example: `
  # Events of one export
  regsift events -i orders.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvents(cmd.Context(), eventsInputs, eventsInputFormat, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringArrayVarP(&eventsInputs, "input", "i", nil, "Input file path (repeatable)")
	eventsCmd.Flags().StringVar(&eventsInputFormat, "input-format", "", "Input format: csv|excel (optional, inferred from extension when omitted)")

	_ = eventsCmd.MarkFlagRequired("input")
}

func runEvents(ctx context.Context, inputs []string, inputFormat string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadAndValidate()
	if err != nil {
		return err
	}

	result, err := importer.Run(ctx, inputs, inputFormat, *cfg, logger)
	if err != nil {
		return err
	}

	printEventOptions(stdout, "Iftar events", output.FilterOptions(result.Records.IftarEvents))
	printEventOptions(stdout, "Programming events", output.FilterOptions(result.Records.ProgrammingEvents))
	return nil
}

func printEventOptions(out io.Writer, title string, options []string) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, option := range options {
		fmt.Fprintf(out, "  %s\n", option)
	}
}
