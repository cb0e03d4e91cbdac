package registrant

import "testing"

func TestDisambiguate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		clauses []string
		want    positionalAnswers
	}{
		{
			name:    "all four answers",
			clauses: []string{"Male", "Undergraduate", "2", "No"},
			want:    positionalAnswers{gender: "Male", status: "Undergraduate", year: "2", photoConsent: "No"},
		},
		{
			name:    "gender omitted",
			clauses: []string{"Status Only", "3", "Yes"},
			want:    positionalAnswers{status: "Status Only", year: "3", photoConsent: "Yes"},
		},
		{
			name:    "year omitted",
			clauses: []string{"Female", "Graduate", "Yes"},
			want:    positionalAnswers{gender: "Female", status: "Graduate", photoConsent: "Yes"},
		},
		{
			name:    "year with plus",
			clauses: []string{"prefer not to say", "Undergraduate", "5+", "yes"},
			want:    positionalAnswers{gender: "prefer not to say", status: "Undergraduate", year: "5+", photoConsent: "yes"},
		},
		{
			name:    "gender vocabulary is case-insensitive",
			clauses: []string{"NON-BINARY", "Other", "No"},
			want:    positionalAnswers{gender: "NON-BINARY", status: "Other", photoConsent: "No"},
		},
		{
			name:    "status missing",
			clauses: []string{"Male", "4", "Yes"},
			want:    positionalAnswers{gender: "Male", year: "4", photoConsent: "Yes"},
		},
		{
			name:    "extra clauses dropped",
			clauses: []string{"Male", "Graduate", "1", "Yes", "Trailing", "No"},
			want:    positionalAnswers{gender: "Male", status: "Graduate", year: "1", photoConsent: "Yes"},
		},
		{
			name:    "empty",
			clauses: nil,
			want:    positionalAnswers{},
		},
		{
			// Known limitation: a status equal to a gender word is read as gender.
			name:    "status colliding with gender vocabulary",
			clauses: []string{"Female", "2", "Yes"},
			want:    positionalAnswers{gender: "Female", year: "2", photoConsent: "Yes"},
		},
		{
			// Known limitation: out-of-order clauses are not recovered.
			name:    "out of order",
			clauses: []string{"Yes", "Graduate"},
			want:    positionalAnswers{photoConsent: "Yes"},
		},
		{
			name:    "two digit year is status",
			clauses: []string{"12", "Yes"},
			want:    positionalAnswers{status: "12", photoConsent: "Yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := disambiguate(tt.clauses)
			if got != tt.want {
				t.Fatalf("unexpected answers: want %+v, got %+v", tt.want, got)
			}
		})
	}
}
