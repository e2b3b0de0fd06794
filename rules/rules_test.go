package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/bibtidy/bibtex"
	"github.com/lehigh-university-libraries/bibtidy/titlecase"
)

func TestDefault(t *testing.T) {
	rs := Default()

	assert.Equal(t, DefaultName, rs.Name)
	assert.ElementsMatch(t, titlecase.DefaultAcronyms, rs.Acronyms)
	assert.ElementsMatch(t, titlecase.DefaultMinorWords, rs.MinorWords)
	assert.Equal(t, []string{"title"}, rs.GetTitleFields())
	assert.Equal(t, bibtex.DefaultRemoveFields, rs.GetRemoveFields())
	assert.NotContains(t, rs.GetRemoveFields(), "month")
	assert.Equal(t, bibtex.DefaultUppercaseMacro, rs.UppercaseMacro)
}

func TestLoadRuleSetFromBytes_FallsBackToBuiltinTables(t *testing.T) {
	rs, err := LoadRuleSetFromBytes([]byte("name: tiny\nremove_fields: [doi]\n"))
	require.NoError(t, err)

	assert.Equal(t, "tiny", rs.Name)
	assert.Equal(t, titlecase.DefaultAcronyms, rs.Acronyms)
	assert.Equal(t, []string{"doi"}, rs.GetRemoveFields())
	assert.Equal(t, []string{"title"}, rs.GetTitleFields())
	assert.Equal(t, "The GDP of Nations", rs.Caser().Title("the gdp of nations", false))
}

func TestLoadRuleSetFromBytes_Invalid(t *testing.T) {
	_, err := LoadRuleSetFromBytes([]byte("acronyms: {not: [a list"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })

	rs, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, rs.Name)

	path, err := Create("econ")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rules", "econ.yaml"), path)

	rs, err = Resolve("econ")
	require.NoError(t, err)
	assert.Equal(t, "econ", rs.Name)

	_, err = Create("econ")
	assert.Error(t, err, "Create should refuse to overwrite")

	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("acronyms: [ECB]\nuppercase_macro: textsc\n"), 0o644))
	rs, err = Resolve(custom)
	require.NoError(t, err)
	assert.Equal(t, "custom", rs.Name)
	assert.Equal(t, "textsc", rs.SurnameWrapper().Macro)

	_, err = Resolve("missing")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })

	names, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultName}, names)

	_, err = Create("zeta")
	require.NoError(t, err)
	_, err = Create("alpha")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules", "notes.txt"), nil, 0o644))

	names, err = List()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultName, "alpha", "zeta"}, names)
}

func TestPath_RejectsSeparators(t *testing.T) {
	_, err := Path("../evil")
	assert.Error(t, err)
}
