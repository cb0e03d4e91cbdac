package registrant

import (
	"regexp"
	"strings"
)

var (
	fullNamePattern      = regexp.MustCompile(`(?i)^Full Name:\s*`)
	accessibilityPattern = regexp.MustCompile(`(?i)^Accessibility Needs?:\s*`)
	emailLabelPattern    = regexp.MustCompile(`(?i)^(Confirm )?Email:`)
	confirmEmailPrefix   = regexp.MustCompile(`(?i)^Confirm Email:\s*`)
	emailPrefix          = regexp.MustCompile(`(?i)^Email:\s*`)
	dietaryPattern       = regexp.MustCompile(`(?i)dietary|food allerg`)
	phoneLabelPattern    = regexp.MustCompile(`(?i)^Phone Number:`)
	phoneDigitsPattern   = regexp.MustCompile(`^\d(?:\d|-|` + spaceClass + `){6,}$`)
)

// labeledFields collects the values of clauses that identify themselves,
// either by a "Key:" prefix or by their content.
type labeledFields struct {
	fullName            string
	email               string
	accessibility       string
	dietaryRestrictions string
}

// rule pairs a clause predicate with the extractor that runs when it matches.
// A nil apply discards the clause.
type rule struct {
	name  string
	match func(clause string) bool
	apply func(fields *labeledFields, clause string)
}

var (
	fullNameRule = rule{
		name:  "full-name",
		match: fullNamePattern.MatchString,
		apply: func(fields *labeledFields, clause string) {
			fields.fullName = strings.TrimSpace(fullNamePattern.ReplaceAllString(clause, ""))
		},
	}
	accessibilityRule = rule{
		name:  "accessibility",
		match: accessibilityPattern.MatchString,
		apply: func(fields *labeledFields, clause string) {
			fields.accessibility = strings.TrimSpace(accessibilityPattern.ReplaceAllString(clause, ""))
		},
	}
	// Some exports carry a bare address with no label, hence the "@" check.
	emailRule = rule{
		name: "email",
		match: func(clause string) bool {
			return emailLabelPattern.MatchString(clause) || strings.Contains(clause, "@")
		},
		apply: func(fields *labeledFields, clause string) {
			value := confirmEmailPrefix.ReplaceAllString(clause, "")
			value = emailPrefix.ReplaceAllString(value, "")
			fields.email = strings.TrimSpace(value)
		},
	}
	// The dietary question text contains colons of its own, so the answer
	// starts after the last ": ".
	dietaryRule = rule{
		name:  "dietary",
		match: dietaryPattern.MatchString,
		apply: func(fields *labeledFields, clause string) {
			idx := strings.LastIndex(clause, ": ")
			if idx == -1 {
				return
			}
			fields.dietaryRestrictions = strings.TrimSpace(clause[idx+2:])
		},
	}
	phoneRule = rule{
		name: "phone",
		match: func(clause string) bool {
			return phoneLabelPattern.MatchString(clause) || phoneDigitsPattern.MatchString(clause)
		},
	}
)

var (
	iftarRules       = []rule{fullNameRule, emailRule, dietaryRule, phoneRule}
	programmingRules = []rule{fullNameRule, accessibilityRule, emailRule, phoneRule}
)

// extractLabeled runs rules top-down against every clause; the first matching
// rule consumes the clause. Clauses no rule matched are returned in order.
func extractLabeled(clauses []string, rules []rule) (labeledFields, []string) {
	var fields labeledFields
	unlabeled := make([]string, 0, len(clauses))

	for _, clause := range clauses {
		clause = trimClause(clause)
		if clause == "" {
			continue
		}

		matched := false
		for _, r := range rules {
			if !r.match(clause) {
				continue
			}
			if r.apply != nil {
				r.apply(&fields, clause)
			}
			matched = true
			break
		}
		if !matched {
			unlabeled = append(unlabeled, clause)
		}
	}

	return fields, unlabeled
}
