package bibtex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(value string, _ bool) string {
	return strings.ToUpper(value)
}

func TestRewriteField(t *testing.T) {
	input := `@article{smith2020,
  title = {a title, with a comma},
  Journal = {journal of finance},
  JOURNAL={{review of studies}}  ,
  booktitle = "not touched",
  journal = "quoted journal"
}
`
	want := `@article{smith2020,
  title = {a title, with a comma},
  Journal = {{JOURNAL OF FINANCE}},
  JOURNAL={{REVIEW OF STUDIES}}  ,
  booktitle = "not touched",
  journal = {{QUOTED JOURNAL}}
}
`
	got, count := RewriteField(input, "journal", upper, false)
	require.Equal(t, 3, count)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RewriteField() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewriteField_PassesCapitalizeLast(t *testing.T) {
	var seen []bool
	record := func(value string, capitalizeLast bool) string {
		seen = append(seen, capitalizeLast)
		return value
	}

	_, count := RewriteField("  title = {x},\n  title = {y}\n", "title", record, true)
	assert.Equal(t, 2, count)
	assert.Equal(t, []bool{true, true}, seen)
}

func TestRewriteField_DoesNotMatchLongerNames(t *testing.T) {
	input := "  booktitle = {proceedings},\n  journaltitle = {jf},\n"
	got, count := RewriteField(input, "title", upper, true)
	assert.Zero(t, count)
	assert.Equal(t, input, got)

	got, count = RewriteField(input, "journal", upper, false)
	assert.Zero(t, count)
	assert.Equal(t, input, got)
}

func TestRewriteField_Idempotent(t *testing.T) {
	input := "  journal = {journal of finance},\n"
	once, _ := RewriteField(input, "journal", upper, false)
	twice, _ := RewriteField(once, "journal", upper, false)
	assert.Equal(t, once, twice)
}

func TestRewriteFields(t *testing.T) {
	input := "  title = {a},\n  booktitle = {b},\n  TITLE = {c}\n"
	got, count := RewriteFields(input, []string{"title", "booktitle", "Title"}, upper, true)
	assert.Equal(t, 3, count)
	assert.Equal(t, "  title = {{A}},\n  booktitle = {{B}},\n  TITLE = {{C}}\n", got)
}
