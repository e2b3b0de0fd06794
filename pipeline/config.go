package pipeline

import (
	"errors"

	"github.com/lehigh-university-libraries/bibtidy/rules"
)

// ErrConflictingModes is returned when both single-purpose modes are requested.
var ErrConflictingModes = errors.New("cannot use --journals-only and --remove-fields-only together")

// Mode selects which groups of passes run.
type Mode int

const (
	ModeFull             Mode = iota // Title casing, optional surnames, field removal.
	ModeJournalsOnly                 // Journal title casing only.
	ModeRemoveFieldsOnly             // Field removal only.
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeJournalsOnly:
		return "journals-only"
	case ModeRemoveFieldsOnly:
		return "remove-fields-only"
	default:
		return "full"
	}
}

// Config holds the settings for one cleaning run.
type Config struct {
	// Mode flags (mutually exclusive).
	JournalsOnly     bool
	RemoveFieldsOnly bool

	// Optional passes.
	UppercaseSurnames bool // Wrap author/editor surnames; full mode only.
	NormalizeUnicode  bool // NFC-normalize the document first.

	// Fields overrides the rule set's removal list when non-empty.
	Fields []string

	// TitleFields overrides the rule set's entry title fields when non-empty.
	TitleFields []string

	// Rules supplies the word tables. Nil means the embedded default.
	Rules *rules.RuleSet

	// DryRun runs every pass but skips writing the output file.
	DryRun bool
}

// Validate rejects conflicting mode flags. It never touches the filesystem.
func (c *Config) Validate() error {
	if c.JournalsOnly && c.RemoveFieldsOnly {
		return ErrConflictingModes
	}
	return nil
}

// Mode returns the mode selected by the flags. Call Validate first.
func (c *Config) Mode() Mode {
	switch {
	case c.JournalsOnly:
		return ModeJournalsOnly
	case c.RemoveFieldsOnly:
		return ModeRemoveFieldsOnly
	default:
		return ModeFull
	}
}

// RuleSet returns the configured rule set or the embedded default.
func (c *Config) RuleSet() *rules.RuleSet {
	if c.Rules != nil {
		return c.Rules
	}
	return rules.Default()
}

// RemoveFields returns the fields the remove-fields pass deletes.
func (c *Config) RemoveFields() []string {
	if len(c.Fields) > 0 {
		return c.Fields
	}
	return c.RuleSet().GetRemoveFields()
}

// CustomFields reports whether the removal list came from the caller.
func (c *Config) CustomFields() bool {
	return len(c.Fields) > 0
}

// titleFields returns the fields handled by the entry-titles pass.
func (c *Config) titleFields() []string {
	if len(c.TitleFields) > 0 {
		return c.TitleFields
	}
	return c.RuleSet().GetTitleFields()
}
