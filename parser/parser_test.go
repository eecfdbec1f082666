package parser

import (
	"reflect"
	"regexp"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "a b", "a b"},
		{"multi space", "  a   b  ", "a b"},
		{"newlines and tabs", "line one\n\tline two\r\n  line three", "line one line two line three"},
		{"only whitespace", " \n\t ", ""},
		{"single word", "  contract  ", "contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNoMultiSpaceRuns(t *testing.T) {
	inputs := []string{
		"a\n\n\nb\t\tc    d",
		"   leading",
		"trailing   ",
		" ", // non-breaking space is whitespace too
	}

	multiSpace := regexp.MustCompile(`\s{2,}`)
	for _, in := range inputs {
		got := Normalize(in)
		if multiSpace.MatchString(got) {
			t.Errorf("Normalize(%q) = %q contains a whitespace run", in, got)
		}
		if got != "" && (got[0] == ' ' || got[len(got)-1] == ' ') {
			t.Errorf("Normalize(%q) = %q has leading/trailing space", in, got)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := New()

	for _, input := range []string{"", "   ", "\n\t\n"} {
		data := p.Parse(input)
		if data == nil {
			t.Fatalf("Parse(%q) returned nil", input)
		}
		if data.FinancialDetails.Currency != "" {
			t.Errorf("Parse(%q): expected empty currency, got %s", input, data.FinancialDetails.Currency)
		}
		if data.PartyIdentification.Name != nil {
			t.Errorf("Parse(%q): expected nil party name", input)
		}

		scores := Score(data)
		if scores.OverallScore != 0 {
			t.Errorf("Parse(%q): expected overall score 0, got %f", input, scores.OverallScore)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	p := New()
	text := `ABC Corporation Inc. Total: $10,000 USD. Net 30. Contact: jane@example.com
	Account Number: ACC-99 Signed by: Jane Roe`

	first := p.Parse(text)
	for i := 0; i < 5; i++ {
		if got := p.Parse(text); !reflect.DeepEqual(first, got) {
			t.Fatalf("Parse is not deterministic: run %d differs", i)
		}
	}
}

func TestParseFailSoft(t *testing.T) {
	// A nil pattern in the rule table panics inside the first extractor;
	// Parse must swallow it and return the fully-empty structure.
	p := NewWithRules(&Rules{
		CompanyPatterns: []*regexp.Regexp{nil},
	})

	data := p.Parse("ABC Corporation Inc.")
	if data == nil {
		t.Fatal("expected empty data, got nil")
	}
	if data.PartyIdentification == nil || data.FinancialDetails == nil {
		t.Fatal("expected all sections allocated in empty structure")
	}
	if data.PartyIdentification.Name != nil {
		t.Error("expected nil party name after extraction fault")
	}
	if data.FinancialDetails.Currency != "" {
		t.Errorf("expected empty currency after extraction fault, got %s", data.FinancialDetails.Currency)
	}

	if scores := Score(data); scores.OverallScore != 0 {
		t.Errorf("expected overall score 0 after extraction fault, got %f", scores.OverallScore)
	}
}
