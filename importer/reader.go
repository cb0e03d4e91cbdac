package importer

import (
	"errors"
	"fmt"
	"strings"

	"regsift/registrant"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

// Table is a tokenized export: the header row plus one Row per data line.
type Table struct {
	Headers []string
	Rows    []registrant.Row
}

type Reader interface {
	Read(path string) (*Table, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// buildTable maps raw cells onto headers. Short rows get "" for the missing
// columns and rows with only blank cells are dropped.
func buildTable(headers []string, rows [][]string) *Table {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		cleaned[i] = cleanHeader(header)
	}

	table := &Table{Headers: cleaned, Rows: make([]registrant.Row, 0, len(rows))}
	for _, cells := range rows {
		if isBlankRow(cells) {
			continue
		}

		row := make(registrant.Row, len(cleaned))
		for i, header := range cleaned {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

func cleanHeader(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
