package output

import (
	"fmt"
	"io"
	"os"
)

// TSVWriter writes the clipboard-friendly tab-separated form of a table.
type TSVWriter struct {
	Stdout io.Writer
}

func (w *TSVWriter) Write(path string, table Table) error {
	if path == StdoutPath {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprintln(out, table.TSV()); err != nil {
			return fmt.Errorf("write tsv output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(table.TSV()+"\n"), 0o644); err != nil {
		return fmt.Errorf("create tsv output %s: %w", path, err)
	}
	return nil
}
