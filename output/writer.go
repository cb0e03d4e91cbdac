package output

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// StdoutPath makes text writers print instead of creating a file.
const StdoutPath = "-"

type Writer interface {
	Write(path string, table Table) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "tsv":
		return &TSVWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// DetectFormat infers the writer format from an output path extension.
func DetectFormat(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return "csv"
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return "excel"
	default:
		return "tsv"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
