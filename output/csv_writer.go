package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVWriter struct {
	Stdout io.Writer
}

func (w *CSVWriter) Write(path string, table Table) error {
	if path == StdoutPath {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		return writeCSV(out, table)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	return writeCSV(file, table)
}

func writeCSV(out io.Writer, table Table) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
