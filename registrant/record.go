package registrant

import "strings"

// Row is one export line keyed by its column header.
type Row map[string]string

// Get returns the trimmed value for key, or "" when the column is missing.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// Category is the output collection a row is routed to; CategoryNone means skipped.
type Category int

const (
	CategoryNone Category = iota
	CategoryIftar
	CategoryProgramming
)

func (c Category) String() string {
	switch c {
	case CategoryIftar:
		return "iftar"
	case CategoryProgramming:
		return "programming"
	default:
		return "none"
	}
}

// IftarRecord is one registrant for an iftar dinner.
type IftarRecord struct {
	FullName            string
	Email               string
	DietaryRestrictions string
	Event               string
}

// ProgrammingRecord is one registrant for a programming event. Gender and
// Year may be empty when the form did not ask for them.
type ProgrammingRecord struct {
	FullName      string
	Email         string
	Gender        string
	Status        string
	Year          string
	PhotoConsent  string
	Accessibility string
	Event         string
}

// Outcome is the result of classifying a single row. Exactly one of Iftar or
// Programming is set when Category is not CategoryNone.
type Outcome struct {
	Category    Category
	Iftar       *IftarRecord
	Programming *ProgrammingRecord
}

func (o Outcome) Skipped() bool {
	return o.Category == CategoryNone
}
