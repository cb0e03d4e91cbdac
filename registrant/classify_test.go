package registrant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	if got := DetectFormat([]string{"Date", "Item Name", "Item Modifiers"}); got != FormatOrdersV2 {
		t.Fatalf("expected orders format, got %s", got)
	}
	if got := DetectFormat([]string{"Category", "Item", "Modifiers Applied"}); got != FormatLegacy {
		t.Fatalf("expected legacy format, got %s", got)
	}
	if got := DetectRowFormat(Row{"Item Name": ""}); got != FormatOrdersV2 {
		t.Fatalf("expected orders format from row keys, got %s", got)
	}
	if got := DetectRowFormat(Row{"item name": "x"}); got != FormatLegacy {
		t.Fatalf("expected header match to be exact, got %s", got)
	}
}

func TestClassify_OrdersIftarUsesRecipientFallback(t *testing.T) {
	t.Parallel()

	row := Row{
		"Item Name":       " Community IFTAR - March 3 ",
		"Item Modifiers":  "1 x Phone Number: 555 123 4567, 1 x Do you have any food allergies or dietary restrictions?: Please list: Halal, 1 x Yes",
		"Recipient Email": "recipient@example.com",
		"Recipient Name":  "Recipient Name",
	}

	outcome := NewClassifier(DefaultLabels()).Classify(row, FormatOrdersV2)
	if outcome.Category != CategoryIftar || outcome.Programming != nil {
		t.Fatalf("expected iftar outcome, got %+v", outcome)
	}

	want := IftarRecord{
		FullName:            "Recipient Name",
		Email:               "recipient@example.com",
		DietaryRestrictions: "Halal",
		Event:               "Community IFTAR - March 3",
	}
	if diff := cmp.Diff(want, *outcome.Iftar); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestClassify_OrdersLabeledFieldsWinOverRecipient(t *testing.T) {
	t.Parallel()

	row := Row{
		"Item Name":       "Youth Halaqa",
		"Item Modifiers":  "1 x Full Name: Jane Doe, 1 x Email: jane@example.com, 1 x Female, 1 x Undergraduate, 1 x 2, 1 x Yes, 1 x Accessibility Needs: none",
		"Recipient Email": "parent@example.com",
		"Recipient Name":  "Parent",
	}

	outcome := NewClassifier(DefaultLabels()).Classify(row, FormatOrdersV2)
	if outcome.Category != CategoryProgramming || outcome.Iftar != nil {
		t.Fatalf("expected programming outcome, got %+v", outcome)
	}

	want := ProgrammingRecord{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Gender:        "Female",
		Status:        "Undergraduate",
		Year:          "2",
		PhotoConsent:  "Yes",
		Accessibility: "none",
		Event:         "Youth Halaqa",
	}
	if diff := cmp.Diff(want, *outcome.Programming); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestClassify_LegacyRows(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultLabels())

	iftar := classifier.Classify(Row{
		"Category":          "Ramadan Iftars 2026",
		"Item":              "Iftar Night 1",
		"Modifiers Applied": "Full Name: Omar Ali, Phone Number: 5551234567, Yes",
	}, FormatLegacy)
	if iftar.Category != CategoryIftar {
		t.Fatalf("expected iftar outcome, got %+v", iftar)
	}
	if diff := cmp.Diff(IftarRecord{FullName: "Omar Ali", Event: "Iftar Night 1"}, *iftar.Iftar); diff != "" {
		t.Fatalf("unexpected iftar record (-want +got):\n%s", diff)
	}

	programming := classifier.Classify(Row{
		"Category":          "Ramadan Programming 2026",
		"Item":              "Quran Circle",
		"Modifiers Applied": "Male, Status Only, 3, No",
	}, FormatLegacy)
	if programming.Category != CategoryProgramming {
		t.Fatalf("expected programming outcome, got %+v", programming)
	}
	want := ProgrammingRecord{Gender: "Male", Status: "Status Only", Year: "3", PhotoConsent: "No", Event: "Quran Circle"}
	if diff := cmp.Diff(want, *programming.Programming); diff != "" {
		t.Fatalf("unexpected programming record (-want +got):\n%s", diff)
	}
}

func TestClassify_Skips(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultLabels())

	tests := []struct {
		name   string
		row    Row
		format Format
	}{
		{
			name:   "orders empty modifiers",
			row:    Row{"Item Name": "Iftar", "Item Modifiers": "   "},
			format: FormatOrdersV2,
		},
		{
			name:   "orders missing modifiers column",
			row:    Row{"Item Name": "Iftar"},
			format: FormatOrdersV2,
		},
		{
			name:   "orders empty item",
			row:    Row{"Item Name": "", "Item Modifiers": "1 x Yes"},
			format: FormatOrdersV2,
		},
		{
			name:   "legacy unknown category",
			row:    Row{"Category": "Donations", "Item": "Zakat", "Modifiers Applied": "Yes"},
			format: FormatLegacy,
		},
		{
			name:   "legacy category is case sensitive",
			row:    Row{"Category": "ramadan iftars 2026", "Item": "Iftar", "Modifiers Applied": "Yes"},
			format: FormatLegacy,
		},
		{
			name:   "legacy missing category",
			row:    Row{"Item": "Iftar", "Modifiers Applied": "Yes"},
			format: FormatLegacy,
		},
		{
			name:   "legacy empty modifiers",
			row:    Row{"Category": "Ramadan Iftars 2026", "Item": "Iftar", "Modifiers Applied": ""},
			format: FormatLegacy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome := classifier.Classify(tt.row, tt.format)
			if !outcome.Skipped() {
				t.Fatalf("expected row to be skipped, got %+v", outcome)
			}
			if outcome.Iftar != nil || outcome.Programming != nil {
				t.Fatalf("expected no record for skipped row, got %+v", outcome)
			}
		})
	}
}

func TestClassify_LegacyHasNoRecipientFallback(t *testing.T) {
	t.Parallel()

	outcome := NewClassifier(DefaultLabels()).Classify(Row{
		"Category":          "Ramadan Programming 2026",
		"Item":              "Quran Circle",
		"Modifiers Applied": "Graduate, Yes",
		"Recipient Name":    "Ignored",
		"Recipient Email":   "ignored@example.com",
	}, FormatLegacy)

	if outcome.Programming == nil {
		t.Fatalf("expected programming record")
	}
	if outcome.Programming.FullName != "" || outcome.Programming.Email != "" {
		t.Fatalf("expected empty name and email, got %+v", *outcome.Programming)
	}
}

func TestClassify_CustomIftarKeyword(t *testing.T) {
	t.Parallel()

	labels := DefaultLabels()
	labels.IftarKeyword = "Dinner"

	outcome := NewClassifier(labels).Classify(Row{
		"Item Name":      "Community dinner",
		"Item Modifiers": "Full Name: Sara",
	}, FormatOrdersV2)
	if outcome.Category != CategoryIftar {
		t.Fatalf("expected iftar via custom keyword, got %s", outcome.Category)
	}
}

func TestParseProgramming_GenderPresentYearOmitted(t *testing.T) {
	t.Parallel()

	got := ParseProgramming(SplitModifiers("Full Name: Jane Doe, Female, Graduate, Yes"))
	want := ProgrammingRecord{FullName: "Jane Doe", Gender: "Female", Status: "Graduate", PhotoConsent: "Yes"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestParseIftar_BareEmail(t *testing.T) {
	t.Parallel()

	got := ParseIftar([]string{"Full Name: Jane", "jane@example.com", "Yes"})
	want := IftarRecord{FullName: "Jane", Email: "jane@example.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestParse_NonBreakingSpaces(t *testing.T) {
	t.Parallel()

	iftar := ParseIftar(SplitModifiers("1 x\u00a0Full Name: Jane, 1 x\u00a0Yes"))
	if iftar.FullName != "Jane" {
		t.Fatalf("expected full name from quantity-prefixed clauses, got %+v", iftar)
	}

	got := ParseProgramming(SplitModifiers(
		"1 x\u00a0Full Name: Omar, 1 x\u00a0555\u00a0123\u00a04567, 1 x\u00a0Male, 1 x\u00a0Student, 1 x\u00a0Yes",
	))
	want := ProgrammingRecord{FullName: "Omar", Gender: "Male", Status: "Student", PhotoConsent: "Yes"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}
