package bibtex

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFields_SingleNote(t *testing.T) {
	got, count := RemoveFields("note = {some text},\n", []string{"note"})
	assert.Equal(t, 1, count)
	assert.False(t, regexp.MustCompile(`(?i)note\s*=`).MatchString(got), "output still contains note: %q", got)
}

func TestRemoveFields_CountMatchesOccurrences(t *testing.T) {
	input := `@article{a,
  note = {first},
  title = {A}
}
@book{b,
  NOTE = "second",
  title = {B},
  note={third}
}
`
	got, count := RemoveFields(input, []string{"note"})
	assert.Equal(t, 3, count)
	assert.NotRegexp(t, `(?i)note\s*=`, got)
}

func TestRemoveFields_Document(t *testing.T) {
	input := `@article{smith2020,
  title = {{A Title}},
  author = {Smith, John},
  abstract = {A long abstract that
    spans {several} lines and has {nested {braces}}
    inside it.},
  journal = {{Journal of Finance}},
  year = {2020},
  month = jan,
  doi = {10.1000/xyz},
  url = "https://example.org/{x}",
  eprint = "2001.00001" # "v2",
  keywords = {a, b, c}
}
`
	want := `@article{smith2020,
  title = {{A Title}},
  author = {Smith, John},
  journal = {{Journal of Finance}},
  year = {2020}
}
`
	got, count := RemoveFields(input, []string{"abstract", "month", "doi", "url", "eprint", "keywords"})
	require.Equal(t, 6, count)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RemoveFields() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveFields_DanglingComma(t *testing.T) {
	input := "@misc{k,\n  title = {T},\n  note = {gone}\n}\n"
	got, count := RemoveFields(input, []string{"note"})
	assert.Equal(t, 1, count)
	assert.Equal(t, "@misc{k,\n  title = {T}\n}\n", got)
}

func TestRemoveFields_ClosingBraceOnSameLine(t *testing.T) {
	input := "@misc{k,\n  title = {T},\n  note = {gone}}\n"
	got, count := RemoveFields(input, []string{"note"})
	assert.Equal(t, 1, count)
	assert.Equal(t, "@misc{k,\n  title = {T}\n  }\n", got)
}

func TestRemoveFields_UnterminatedValueIsKept(t *testing.T) {
	input := "@misc{k,\n  note = {never closed,\n  title = {T}\n"
	got, count := RemoveFields(input, []string{"note"})
	assert.Zero(t, count)
	assert.Equal(t, input, got)
}

func TestRemoveFields_ValueOnNextLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{
			name:  "braced",
			input: "@misc{k,\n  title = {T},\n  abstract =\n    {long text},\n  year = {2020}\n}\n",
			want:  "@misc{k,\n  title = {T},\n  year = {2020}\n}\n",
			count: 1,
		},
		{
			name:  "quoted",
			input: "@misc{k,\n  abstract =\n\t\"long text\",\n  year = {2020}\n}\n",
			want:  "@misc{k,\n  year = {2020}\n}\n",
			count: 1,
		},
		{
			name:  "bare value does not reach the next field",
			input: "@misc{k,\n  abstract =\n  year = {2020}\n}\n",
			want:  "@misc{k,\n  abstract =\n  year = {2020}\n}\n",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := RemoveFields(tt.input, []string{"abstract"})
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveFields_BareValueWithSpacesIsKept(t *testing.T) {
	input := "@misc{k,\n  note = some text,\n  title = {T}\n}\n"
	got, count := RemoveFields(input, []string{"note"})
	assert.Zero(t, count)
	assert.Equal(t, input, got)

	got, count = RemoveFields("@misc{k,\n  note = jan # feb ,\n  title = {T}\n}\n", []string{"note"})
	assert.Equal(t, 1, count)
	assert.Equal(t, "@misc{k,\n  title = {T}\n}\n", got)
}

func TestRemoveFields_DeepNesting(t *testing.T) {
	value := strings.Repeat("{", 200) + "x" + strings.Repeat("}", 200)
	input := "@misc{k,\n  file = " + value + ",\n  title = {T}\n}\n"
	got, count := RemoveFields(input, []string{"file"})
	assert.Equal(t, 1, count)
	assert.Equal(t, "@misc{k,\n  title = {T}\n}\n", got)
}

func TestRemoveFields_CollapsesBlankLines(t *testing.T) {
	input := "@misc{a,\n  title = {A}\n}\n\n\n\n@misc{b,\n  title = {B}\n}\n"
	got, count := RemoveFields(input, nil)
	assert.Zero(t, count)
	assert.Equal(t, "@misc{a,\n  title = {A}\n}\n\n@misc{b,\n  title = {B}\n}\n", got)
}

func TestRemoveFields_DuplicateNamesCountOnce(t *testing.T) {
	_, count := RemoveFields("  doi = {x},\n", []string{"doi", "DOI", " doi "})
	assert.Equal(t, 1, count)
}

func TestRemoveFields_LeavesSimilarNames(t *testing.T) {
	input := "  notes = {keep},\n  annote = {keep},\n"
	got, count := RemoveFields(input, []string{"note"})
	assert.Zero(t, count)
	assert.Equal(t, input, got)
}

func TestStripBlankLines(t *testing.T) {
	input := "@misc{a,\n\n  title = {A}\n \t\n}\n\n@misc{b}\n"
	assert.Equal(t, "@misc{a,\n  title = {A}\n}\n@misc{b}\n", StripBlankLines(input))
}

func TestCollapseBlankRuns(t *testing.T) {
	assert.Equal(t, "a\n\nb", CollapseBlankRuns("a\n\n\n\nb"))
	assert.Equal(t, "a\n\nb", CollapseBlankRuns("a\n\nb"))
}
