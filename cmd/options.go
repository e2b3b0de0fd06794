package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
	"github.com/lehigh-university-libraries/bibtidy/rules"
)

// passOptions holds the flags shared by the clean and batch commands.
type passOptions struct {
	journalsOnly      bool
	removeFieldsOnly  bool
	uppercaseSurnames bool
	normalizeUnicode  bool
	dryRun            bool
	fields            []string
	titleFields       []string
	rulesRef          string
}

func addPassFlags(c *cobra.Command, o *passOptions) {
	c.Flags().BoolVar(&o.journalsOnly, "journals-only", false, "Only fix journal titles (skip entry titles, surnames and field removal)")
	c.Flags().BoolVar(&o.removeFieldsOnly, "remove-fields-only", false, "Only remove fields (skip title and surname fixing)")
	c.Flags().BoolVar(&o.uppercaseSurnames, "uppercase-surnames", false, "Wrap author/editor surnames in an uppercase macro")
	c.Flags().BoolVar(&o.normalizeUnicode, "nfc", false, "Normalize the file to Unicode NFC before cleaning")
	c.Flags().BoolVar(&o.dryRun, "dry-run", false, "Run all passes and report counts without writing output")
	c.Flags().StringSliceVar(&o.fields, "fields", nil, "Comma-separated list of fields to remove (overrides defaults)")
	c.Flags().StringSliceVar(&o.titleFields, "title-fields", nil, "Comma-separated list of entry title fields (default from rules: title)")
	c.Flags().StringVar(&o.rulesRef, "rules", "", "Rule set name or YAML file (default: embedded rules)")
}

// config validates the mode flags before anything is read from disk, then
// resolves the rule set.
func (o *passOptions) config() (pipeline.Config, error) {
	cfg := pipeline.Config{
		JournalsOnly:      o.journalsOnly,
		RemoveFieldsOnly:  o.removeFieldsOnly,
		UppercaseSurnames: o.uppercaseSurnames,
		NormalizeUnicode:  o.normalizeUnicode,
		DryRun:            o.dryRun,
		Fields:            trimAll(o.fields),
		TitleFields:       trimAll(o.titleFields),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	rs, err := rules.Resolve(o.rulesRef)
	if err != nil {
		return cfg, err
	}
	cfg.Rules = rs
	return cfg, nil
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
