package registrant

// Format identifies which of the two point-of-sale export schemas a file uses.
type Format int

const (
	// FormatLegacy is the older "items" export with a Category column.
	FormatLegacy Format = iota
	// FormatOrdersV2 is the newer "orders" export keyed by Item Name.
	FormatOrdersV2
)

const (
	ColumnCategory         = "Category"
	ColumnItem             = "Item"
	ColumnModifiersApplied = "Modifiers Applied"

	ColumnItemName       = "Item Name"
	ColumnItemModifiers  = "Item Modifiers"
	ColumnRecipientEmail = "Recipient Email"
	ColumnRecipientName  = "Recipient Name"
)

func (f Format) String() string {
	if f == FormatOrdersV2 {
		return "orders"
	}
	return "legacy"
}

// DetectFormat decides the export schema from the header set of a file.
func DetectFormat(headers []string) Format {
	for _, header := range headers {
		if header == ColumnItemName {
			return FormatOrdersV2
		}
	}
	return FormatLegacy
}

// DetectRowFormat decides the export schema from the keys of the first row.
func DetectRowFormat(row Row) Format {
	if _, ok := row[ColumnItemName]; ok {
		return FormatOrdersV2
	}
	return FormatLegacy
}
