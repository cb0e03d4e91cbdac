package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads comma-separated exports. Point-of-sale exports opened and
// re-saved in spreadsheet tools may carry a UTF-8 or UTF-16 byte order mark,
// so input is decoded with BOM detection before tokenizing.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Table, error) {
	if path == "-" {
		return r.ReadFrom(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	table, err := r.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func (r *CSVReader) ReadFrom(input io.Reader) (*Table, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(input, decoder))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	rows := make([][]string, 0, 128)
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}
		rows = append(rows, row)
		rowNumber++
	}

	return buildTable(headers, rows), nil
}
