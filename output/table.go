package output

import (
	"strconv"
	"strings"

	"regsift/registrant"
)

var (
	IftarHeaders       = []string{"#", "Full Name", "Email", "Dietary Restrictions"}
	ProgrammingHeaders = []string{"Full Name", "Email", "Gender", "Status", "Year", "Photo Consent", "Accessibility"}
)

// Table is a header row plus cleaned cell rows, ready for any writer.
type Table struct {
	Headers []string
	Rows    [][]string
}

// IftarTable numbers the records from 1 in the order given.
func IftarTable(records []registrant.IftarRecord) Table {
	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			Clean(record.FullName),
			Clean(record.Email),
			Clean(record.DietaryRestrictions),
		})
	}
	return Table{Headers: IftarHeaders, Rows: rows}
}

func ProgrammingTable(records []registrant.ProgrammingRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			Clean(record.FullName),
			Clean(record.Email),
			Clean(record.Gender),
			Clean(record.Status),
			Clean(record.Year),
			Clean(record.PhotoConsent),
			Clean(record.Accessibility),
		})
	}
	return Table{Headers: ProgrammingHeaders, Rows: rows}
}

var controlReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Clean replaces tabs and line breaks with spaces and trims the result, so a
// value always stays within one TSV cell.
func Clean(value string) string {
	return strings.TrimSpace(controlReplacer.Replace(value))
}

// TSV renders the table as tab-separated text without a trailing newline.
func (t Table) TSV() string {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = Clean(cell)
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}

// FilterOptions lists the values a filter control offers: AllEvents first,
// then every event in first-seen order.
func FilterOptions(events []string) []string {
	options := make([]string, 0, len(events)+1)
	options = append(options, registrant.AllEvents)
	return append(options, events...)
}

// CountLabel formats a record count the way the summary badges read.
func CountLabel(count int) string {
	if count == 1 {
		return "1 entry"
	}
	return strconv.Itoa(count) + " entries"
}
