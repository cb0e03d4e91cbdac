package registrant

import (
	"regexp"
	"strings"
	"unicode"
)

// spaceClass matches what spreadsheet exports treat as whitespace: ASCII
// space characters plus vertical tab, Unicode space separators (NBSP among
// them), line and paragraph separators, and the zero-width no-break space.
const spaceClass = `[\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	quantityPrefixPattern = regexp.MustCompile(`(?i)^1` + spaceClass + `*x` + spaceClass)
	quantitySplitPattern  = regexp.MustCompile(`(?i),` + spaceClass + `*1` + spaceClass + `*x` + spaceClass)
	commaSplitPattern     = regexp.MustCompile(`,` + spaceClass + `*`)
)

// SplitModifiers breaks a modifier string into trimmed, non-empty clauses.
//
// Orders exports prefix every answer with a quantity ("1 x Full Name: X, 1 x Male"),
// which lets answers contain commas. Strings without the leading quantity token
// fall back to a plain comma split. The choice is made per string.
func SplitModifiers(modifiers string) []string {
	var parts []string
	if quantityPrefixPattern.MatchString(modifiers) {
		stripped := quantityPrefixPattern.ReplaceAllString(modifiers, "")
		parts = quantitySplitPattern.Split(stripped, -1)
	} else {
		parts = commaSplitPattern.Split(modifiers, -1)
	}

	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := trimClause(part)
		if trimmed == "" {
			continue
		}
		clauses = append(clauses, trimmed)
	}
	return clauses
}

func trimClause(clause string) string {
	return strings.TrimFunc(clause, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}
