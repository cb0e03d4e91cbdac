package registrant

import "strings"

const (
	DefaultLegacyIftarCategory       = "Ramadan Iftars 2026"
	DefaultLegacyProgrammingCategory = "Ramadan Programming 2026"
	DefaultIftarKeyword              = "iftar"
)

// Labels holds the strings that route a row to a category. Legacy categories
// are compared verbatim; the iftar keyword is matched case-insensitively
// against the orders Item Name.
type Labels struct {
	LegacyIftarCategory       string
	LegacyProgrammingCategory string
	IftarKeyword              string
}

func DefaultLabels() Labels {
	return Labels{
		LegacyIftarCategory:       DefaultLegacyIftarCategory,
		LegacyProgrammingCategory: DefaultLegacyProgrammingCategory,
		IftarKeyword:              DefaultIftarKeyword,
	}
}

type Classifier struct {
	Labels Labels
}

func NewClassifier(labels Labels) *Classifier {
	return &Classifier{Labels: labels}
}

// source is the per-row input to record construction after the format
// specific column mapping.
type source struct {
	category       Category
	item           string
	modifiers      string
	recipientName  string
	recipientEmail string
}

// Classify turns one row into at most one record. Rows without modifiers or
// without a category come back as a skipped Outcome; that is not an error.
func (c *Classifier) Classify(row Row, format Format) Outcome {
	var src source
	if format == FormatOrdersV2 {
		src = c.ordersSource(row)
	} else {
		src = c.legacySource(row)
	}

	if src.modifiers == "" || src.category == CategoryNone {
		return Outcome{}
	}

	clauses := SplitModifiers(src.modifiers)

	switch src.category {
	case CategoryIftar:
		record := ParseIftar(clauses)
		record.FullName = firstNonEmpty(record.FullName, src.recipientName)
		record.Email = firstNonEmpty(record.Email, src.recipientEmail)
		record.Event = src.item
		return Outcome{Category: CategoryIftar, Iftar: &record}
	case CategoryProgramming:
		record := ParseProgramming(clauses)
		record.FullName = firstNonEmpty(record.FullName, src.recipientName)
		record.Email = firstNonEmpty(record.Email, src.recipientEmail)
		record.Event = src.item
		return Outcome{Category: CategoryProgramming, Programming: &record}
	default:
		return Outcome{}
	}
}

func (c *Classifier) ordersSource(row Row) source {
	src := source{
		item:           row.Get(ColumnItemName),
		modifiers:      row.Get(ColumnItemModifiers),
		recipientEmail: row.Get(ColumnRecipientEmail),
		recipientName:  row.Get(ColumnRecipientName),
	}

	keyword := strings.ToLower(c.Labels.IftarKeyword)
	switch {
	case keyword != "" && strings.Contains(strings.ToLower(src.item), keyword):
		src.category = CategoryIftar
	case src.item != "":
		src.category = CategoryProgramming
	}
	return src
}

// Legacy exports have no recipient columns, so unlabeled names stay empty.
func (c *Classifier) legacySource(row Row) source {
	src := source{
		item:      row.Get(ColumnItem),
		modifiers: row.Get(ColumnModifiersApplied),
	}

	switch category := row.Get(ColumnCategory); {
	case category == "":
	case category == c.Labels.LegacyIftarCategory:
		src.category = CategoryIftar
	case category == c.Labels.LegacyProgrammingCategory:
		src.category = CategoryProgramming
	}
	return src
}

// ParseIftar extracts an iftar record from split clauses. Clauses that match
// no rule, such as a standalone acknowledgment, are discarded.
func ParseIftar(clauses []string) IftarRecord {
	fields, _ := extractLabeled(clauses, iftarRules)
	return IftarRecord{
		FullName:            fields.fullName,
		Email:               fields.email,
		DietaryRestrictions: fields.dietaryRestrictions,
	}
}

// ParseProgramming extracts a programming record from split clauses, using
// the positional grammar for everything without a label.
func ParseProgramming(clauses []string) ProgrammingRecord {
	fields, unlabeled := extractLabeled(clauses, programmingRules)
	answers := disambiguate(unlabeled)
	return ProgrammingRecord{
		FullName:      fields.fullName,
		Email:         fields.email,
		Gender:        answers.gender,
		Status:        answers.status,
		Year:          answers.year,
		PhotoConsent:  answers.photoConsent,
		Accessibility: fields.accessibility,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
