package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regsift/config"
	"regsift/importer"
	"regsift/output"
	"regsift/registrant"
)

var (
	extractInputs      []string
	extractInputFormat string
	extractCategory    string
	extractEvent       string
	extractOutput      string
	extractFormat      string
)

type extractOptions struct {
	Inputs      []string
	InputFormat string
	Category    string
	Event       string
	Output      string
	Format      string
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract iftar and programming registrants from export files",
	Long: `Read one or more point-of-sale exports and turn each row's modifier text into a registrant record.

The export schema is detected per file: files with an "Item Name" column are orders exports,
everything else is treated as an items export with a Category column.

Without --output the selected tables are drawn in the terminal. With --output a single
category is written as TSV, CSV or Excel; "-" writes TSV/CSV to stdout.
When --format is omitted, the output format is inferred from the --output extension (TSV otherwise).`,
	Example: `
  # Show both tables
  regsift extract -i orders.csv

  # Only one iftar night
  regsift extract -i orders.csv --category iftar --event "Iftar - March 3"

  # Paste-ready TSV on stdout
  regsift extract -i orders.csv --category programming --output -

  # Excel file of all iftar registrants
  regsift extract -i orders.csv -i items.csv --category iftar --output ./iftar.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.Context(), extractOptions{
			Inputs:      extractInputs,
			InputFormat: extractInputFormat,
			Category:    extractCategory,
			Event:       extractEvent,
			Output:      extractOutput,
			Format:      extractFormat,
		}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringArrayVarP(&extractInputs, "input", "i", nil, "Input file path (repeatable, \"-\" reads CSV from stdin)")
	extractCmd.Flags().StringVar(&extractInputFormat, "input-format", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	extractCmd.Flags().StringVarP(&extractCategory, "category", "c", "all", "Category: all|iftar|programming")
	extractCmd.Flags().StringVarP(&extractEvent, "event", "e", registrant.AllEvents, "Only records of this event (\"all\" for every event)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file path (\"-\" for stdout)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Output format: tsv|csv|excel (optional, inferred from output extension)")

	_ = extractCmd.MarkFlagRequired("input")
}

func runExtract(ctx context.Context, opts extractOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	category, err := parseCategory(opts.Category)
	if err != nil {
		return err
	}
	if opts.Output != "" && category == registrant.CategoryNone {
		return fmt.Errorf("--output writes one table: set --category iftar or --category programming")
	}

	cfg, err := config.LoadAndValidate()
	if err != nil {
		return err
	}

	result, err := importer.Run(ctx, opts.Inputs, opts.InputFormat, *cfg, logger)
	if err != nil {
		return err
	}
	records := result.Records

	event := strings.TrimSpace(opts.Event)
	if event == "" {
		event = registrant.AllEvents
	}
	warnUnknownEvent(records, category, event)

	summaryOut := stdout
	if opts.Output == output.StdoutPath {
		summaryOut = stderr
	}
	fmt.Fprintf(summaryOut, "Extraction completed. Files: %d, Rows read: %d, Rows skipped: %d, Iftar: %d, Programming: %d\n",
		result.FilesProcessed,
		records.RowsRead,
		records.RowsSkipped,
		len(records.Iftar),
		len(records.Programming),
	)

	tables := buildTables(records, category, event)
	if opts.Output == "" {
		for _, named := range tables {
			fmt.Fprintln(stdout)
			fmt.Fprint(stdout, output.Render(named.title, named.table))
		}
		return nil
	}

	format := opts.Format
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(opts.Output)
	}
	writer, err := writerFor(format, tables[0].title, stdout)
	if err != nil {
		return err
	}
	if err := writer.Write(opts.Output, tables[0].table); err != nil {
		return err
	}

	if opts.Output != output.StdoutPath {
		fmt.Fprintf(stdout, "Export completed. Rows: %d, Category: %s, Event: %s, Format: %s, File: %s\n",
			len(tables[0].table.Rows), category, event, format, opts.Output)
	}
	return nil
}

// parseCategory maps the --category flag; CategoryNone stands for "all".
func parseCategory(value string) (registrant.Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return registrant.CategoryNone, nil
	case "iftar":
		return registrant.CategoryIftar, nil
	case "programming":
		return registrant.CategoryProgramming, nil
	default:
		return registrant.CategoryNone, fmt.Errorf("unsupported category: %s (supported: all, iftar, programming)", value)
	}
}

type namedTable struct {
	title string
	table output.Table
}

func buildTables(records *registrant.Result, category registrant.Category, event string) []namedTable {
	tables := make([]namedTable, 0, 2)
	if category != registrant.CategoryProgramming {
		tables = append(tables, namedTable{title: "Iftar", table: output.IftarTable(records.FilterIftar(event))})
	}
	if category != registrant.CategoryIftar {
		tables = append(tables, namedTable{title: "Programming", table: output.ProgrammingTable(records.FilterProgramming(event))})
	}
	return tables
}

func writerFor(format, sheet string, stdout io.Writer) (output.Writer, error) {
	writer, err := output.WriterForFormat(format)
	if err != nil {
		return nil, err
	}
	switch w := writer.(type) {
	case *output.TSVWriter:
		w.Stdout = stdout
	case *output.CSVWriter:
		w.Stdout = stdout
	case *output.ExcelWriter:
		w.SheetName = sheet
	}
	return writer, nil
}

func warnUnknownEvent(records *registrant.Result, category registrant.Category, event string) {
	if event == registrant.AllEvents {
		return
	}
	var known []string
	if category != registrant.CategoryProgramming {
		known = append(known, records.IftarEvents...)
	}
	if category != registrant.CategoryIftar {
		known = append(known, records.ProgrammingEvents...)
	}
	if !slices.Contains(known, event) {
		logger.Warn("event not found in input", zap.String("event", event))
	}
}
