package titlecase

import (
	"testing"
)

func TestTitle(t *testing.T) {
	caser := Default()

	tests := []struct {
		name           string
		input          string
		capitalizeLast bool
		want           string
	}{
		{
			name:  "minor words stay lower",
			input: "the effects of monetary policy",
			want:  "The Effects of Monetary Policy",
		},
		{
			name:           "acronym and capitalized last word",
			input:          "a study of gdp growth",
			capitalizeLast: true,
			want:           "A Study of GDP Growth",
		},
		{
			name:  "word after colon is capitalized",
			input: "risk and return: a new approach",
			want:  "Risk and Return: A New Approach",
		},
		{
			name:  "word after dash is capitalized",
			input: "markets - the long view",
			want:  "Markets - The Long View",
		},
		{
			name:  "word after em dash is capitalized",
			input: "growth— an overview",
			want:  "Growth— An Overview",
		},
		{
			name:  "last minor word stays lower for journals",
			input: "journal of economics and",
			want:  "Journal of Economics and",
		},
		{
			name:           "last minor word capitalized for entry titles",
			input:          "what are banks for",
			capitalizeLast: true,
			want:           "What Are Banks For",
		},
		{
			name:  "braces are stripped",
			input: "{The} {Review} of {Financial} studies",
			want:  "The Review of Financial Studies",
		},
		{
			name:  "run of capitals is kept",
			input: "evidence from NASDAQ listings",
			want:  "Evidence from NASDAQ Listings",
		},
		{
			name:  "capitals followed by punctuation are kept",
			input: "the FOMC, revisited",
			want:  "The FOMC, Revisited",
		},
		{
			name:  "mixed case word is normalized",
			input: "tHE jOURNAL of fINANCE",
			want:  "The Journal of Finance",
		},
		{
			name:  "acronym lookup is case-insensitive",
			input: "r&d spending in the usa",
			want:  "R&D Spending in the USA",
		},
		{
			name:  "whitespace is collapsed",
			input: "  american   economic\treview ",
			want:  "American Economic Review",
		},
		{
			name:  "non-ascii letters are cased",
			input: "économie et société",
			want:  "Économie Et Société",
		},
		{
			name:  "empty input",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := caser.Title(tt.input, tt.capitalizeLast)
			if got != tt.want {
				t.Errorf("Title(%q, %v) = %q, want %q", tt.input, tt.capitalizeLast, got, tt.want)
			}
		})
	}
}

func TestTitle_Idempotent(t *testing.T) {
	caser := Default()
	inputs := []string{
		"the effects of monetary policy",
		"a study of gdp growth",
		"risk and return: a new approach",
		"{{Journal of Political Economy}}",
	}
	for _, in := range inputs {
		for _, last := range []bool{false, true} {
			once := caser.Title(in, last)
			twice := caser.Title(once, last)
			if once != twice {
				t.Errorf("Title not idempotent for %q: %q then %q", in, once, twice)
			}
		}
	}
}

func TestNew_InjectedTables(t *testing.T) {
	caser := New([]string{"ecb"}, []string{"and"})

	got := caser.Title("the ecb and the fed", false)
	want := "The ECB and The Fed"
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	caser := Default()

	got := caser.Classify("the case for GDP: of course", true)
	want := []Class{ForceCapitalize, Capitalize, Lower, Upper, ForceCapitalize, ForceCapitalize}
	if len(got) != len(want) {
		t.Fatalf("Classify() returned %d classes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("class[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
