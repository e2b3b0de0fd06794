package pipeline

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lehigh-university-libraries/bibtidy/bibtex"
)

// PassName identifies a pass in plans and results.
type PassName string

const (
	PassNormalizeUnicode PassName = "unicode-nfc"
	PassJournalTitles    PassName = "journal-titles"
	PassEntryTitles      PassName = "entry-titles"
	PassSurnames         PassName = "surnames"
	PassRemoveFields     PassName = "remove-fields"
	PassStripBlankLines  PassName = "strip-blank-lines"
)

// Pass is one text-to-text transformation of the whole document.
type Pass struct {
	Name PassName
	// Description is a short human-readable summary for plans.
	Description string

	apply func(text string) (string, int)
}

// Apply runs the pass and returns the new text and the number of fields (or
// lines) it changed.
func (p Pass) Apply(text string) (string, int) {
	return p.apply(text)
}

// Plan validates cfg and returns the passes it enables, in execution order.
func Plan(cfg Config) ([]Pass, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rs := cfg.RuleSet()
	mode := cfg.Mode()
	var passes []Pass

	if cfg.NormalizeUnicode {
		passes = append(passes, Pass{
			Name:        PassNormalizeUnicode,
			Description: "NFC-normalize the document",
			apply:       normalizeUnicode,
		})
	}

	if mode != ModeRemoveFieldsOnly {
		caser := rs.Caser()
		passes = append(passes, Pass{
			Name:        PassJournalTitles,
			Description: "title-case journal names",
			apply: func(text string) (string, int) {
				return bibtex.RewriteField(text, "journal", caser.Title, false)
			},
		})

		if mode == ModeFull {
			fields := cfg.titleFields()
			passes = append(passes, Pass{
				Name:        PassEntryTitles,
				Description: "title-case " + strings.Join(fields, ", "),
				apply: func(text string) (string, int) {
					return bibtex.RewriteFields(text, fields, caser.Title, true)
				},
			})
		}
	}

	if mode == ModeFull && cfg.UppercaseSurnames {
		wrapper := rs.SurnameWrapper()
		passes = append(passes, Pass{
			Name:        PassSurnames,
			Description: `wrap author and editor surnames in \` + wrapper.Macro,
			apply:       wrapper.Uppercase,
		})
	}

	if mode != ModeJournalsOnly {
		fields := cfg.RemoveFields()
		passes = append(passes, Pass{
			Name:        PassRemoveFields,
			Description: "remove " + strings.Join(fields, ", "),
			apply: func(text string) (string, int) {
				return bibtex.RemoveFields(text, fields)
			},
		})
	}

	passes = append(passes, Pass{
		Name:        PassStripBlankLines,
		Description: "strip blank lines",
		apply: func(text string) (string, int) {
			out := bibtex.StripBlankLines(text)
			return out, strings.Count(text, "\n") - strings.Count(out, "\n")
		},
	})

	return passes, nil
}

// normalizeUnicode applies NFC and counts the lines it changed.
func normalizeUnicode(text string) (string, int) {
	if norm.NFC.IsNormalString(text) {
		return text, 0
	}
	lines := strings.Split(text, "\n")
	changed := 0
	for i, line := range lines {
		if n := norm.NFC.String(line); n != line {
			lines[i] = n
			changed++
		}
	}
	return strings.Join(lines, "\n"), changed
}
