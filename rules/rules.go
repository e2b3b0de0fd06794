// Package rules loads the word tables and field lists that drive a cleaning
// run.
//
// A RuleSet is plain data: the acronyms and minor words used for title case,
// the fields treated as entry titles, the fields removed by default and the
// macro used to uppercase surnames. The built-in "default" set is embedded in
// the binary; users can add their own YAML files under ~/.bibtidy/rules.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bibtidy/bibtex"
	"github.com/lehigh-university-libraries/bibtidy/titlecase"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultName is the name of the embedded rule set.
const DefaultName = "default"

// RuleSet contains the tables used by a cleaning run.
type RuleSet struct {
	// Name identifies this rule set
	Name string `yaml:"name" json:"name"`

	// Description documents what these rules are for
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Acronyms are always written in capitals
	Acronyms []string `yaml:"acronyms" json:"acronyms"`

	// MinorWords are lower-cased inside titles
	MinorWords []string `yaml:"minor_words" json:"minor_words"`

	// TitleFields are title-cased with the last word capitalized
	TitleFields []string `yaml:"title_fields,omitempty" json:"title_fields,omitempty"`

	// RemoveFields are deleted unless the caller supplies its own list
	RemoveFields []string `yaml:"remove_fields,omitempty" json:"remove_fields,omitempty"`

	// UppercaseMacro is the LaTeX command wrapped around surnames
	UppercaseMacro string `yaml:"uppercase_macro,omitempty" json:"uppercase_macro,omitempty"`
}

// Caser builds a title caser from the rule set's tables.
func (rs *RuleSet) Caser() *titlecase.Caser {
	return titlecase.New(rs.Acronyms, rs.MinorWords)
}

// SurnameWrapper builds the surname pass for the rule set's macro.
func (rs *RuleSet) SurnameWrapper() *bibtex.SurnameWrapper {
	return bibtex.NewSurnameWrapper(rs.UppercaseMacro)
}

// GetTitleFields returns the entry title fields with a default.
func (rs *RuleSet) GetTitleFields() []string {
	if len(rs.TitleFields) > 0 {
		return rs.TitleFields
	}
	return []string{"title"}
}

// GetRemoveFields returns the removal list with a default.
func (rs *RuleSet) GetRemoveFields() []string {
	if len(rs.RemoveFields) > 0 {
		return rs.RemoveFields
	}
	return bibtex.DefaultRemoveFields
}

// Default returns the embedded rule set.
func Default() *RuleSet {
	rs, err := LoadRuleSetFromBytes(defaultYAML)
	if err != nil {
		// The embedded file is part of the build.
		panic(fmt.Sprintf("embedded rule set: %v", err))
	}
	return rs
}

// LoadRuleSet loads a rule set from a YAML file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	rs, err := LoadRuleSetFromBytes(data)
	if err != nil {
		return nil, err
	}
	if rs.Name == "" {
		rs.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return rs, nil
}

// LoadRuleSetFromBytes loads a rule set from YAML bytes. Tables left out of
// the YAML fall back to the built-in title-case tables.
func LoadRuleSetFromBytes(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}
	if rs.Acronyms == nil {
		rs.Acronyms = titlecase.DefaultAcronyms
	}
	if rs.MinorWords == nil {
		rs.MinorWords = titlecase.DefaultMinorWords
	}
	return &rs, nil
}

// Resolve finds a rule set by name or path. An empty ref returns the
// embedded default; a ref naming an existing file is loaded from disk;
// anything else is looked up in the user rules directory.
func Resolve(ref string) (*RuleSet, error) {
	if ref == "" || ref == DefaultName {
		return Default(), nil
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadRuleSet(ref)
	}

	path, err := Path(ref)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown rule set: %s (not a file and not found in rules directory)", ref)
	}
	return LoadRuleSet(path)
}

// List returns the names of the embedded and user rule sets, sorted.
func List() ([]string, error) {
	names := []string{DefaultName}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return names, nil
		}
		return nil, fmt.Errorf("reading rules directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])
	return names, nil
}
