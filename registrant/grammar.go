package registrant

import (
	"regexp"
	"strings"
)

var (
	yearPattern  = regexp.MustCompile(`^\d\+?$`)
	yesNoPattern = regexp.MustCompile(`(?i)^(yes|no)$`)
)

var genderValues = map[string]struct{}{
	"male":              {},
	"female":            {},
	"non-binary":        {},
	"nonbinary":         {},
	"prefer not to say": {},
}

type grammarState int

const (
	awaitGender grammarState = iota
	awaitStatus
	awaitYear
	awaitPhotoConsent
	grammarDone
)

// positionalAnswers are the programming form answers that carry no label:
// [Gender], Status, [Year], PhotoConsent, in that order.
type positionalAnswers struct {
	gender       string
	status       string
	year         string
	photoConsent string
}

func isGender(clause string) bool {
	_, ok := genderValues[strings.ToLower(clause)]
	return ok
}

func isYear(clause string) bool {
	return yearPattern.MatchString(clause)
}

func isYesNo(clause string) bool {
	return yesNoPattern.MatchString(clause)
}

// disambiguate walks the unlabeled clauses once, left to right. Each state
// looks at the clause under the cursor only and either consumes it or passes
// to the next state. There is no backtracking: a status that reads "Male" or
// "Yes" is misread, and clauses left after the last state are dropped.
func disambiguate(clauses []string) positionalAnswers {
	var answers positionalAnswers
	cursor := 0
	current := func() (string, bool) {
		if cursor < len(clauses) {
			return clauses[cursor], true
		}
		return "", false
	}

	for state := awaitGender; state != grammarDone; state++ {
		clause, ok := current()
		if !ok {
			break
		}

		switch state {
		case awaitGender:
			if isGender(clause) {
				answers.gender = clause
				cursor++
			}
		case awaitStatus:
			// Status has no vocabulary: anything that is not a year or yes/no.
			if !isYear(clause) && !isYesNo(clause) {
				answers.status = clause
				cursor++
			}
		case awaitYear:
			if isYear(clause) {
				answers.year = clause
				cursor++
			}
		case awaitPhotoConsent:
			if isYesNo(clause) {
				answers.photoConsent = clause
				cursor++
			}
		}
	}

	return answers
}
