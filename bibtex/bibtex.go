// Package bibtex rewrites BibTeX bibliography text in place.
//
// The passes in this package work on the raw file content rather than on a
// parsed entry tree: each one finds the fields it cares about, rewrites or
// deletes them, and returns the whole document together with a count of what
// it touched. Anything a pass does not recognize is copied through untouched,
// so comments, @string macros and unusual formatting survive.
package bibtex

import (
	"regexp"
	"strings"
)

// Transform rewrites a normalized field value. capitalizeLast is passed
// through from the caller; title casers use it to decide whether the final
// word may stay a minor word.
type Transform func(value string, capitalizeLast bool) string

// fieldNamePattern returns a case-insensitive pattern for a field name.
func fieldNamePattern(name string) string {
	return regexp.QuoteMeta(strings.TrimSpace(name))
}

// replaceSubmatches calls fn for every match of re in text and splices in its
// result. fn returns false to leave a match unchanged and uncounted.
func replaceSubmatches(re *regexp.Regexp, text string, fn func(groups []string) (string, bool)) (string, int) {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	cursor, count := 0, 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = text[loc[2*g]:loc[2*g+1]]
			}
		}
		replacement, ok := fn(groups)
		if !ok {
			continue
		}
		b.WriteString(text[cursor:loc[0]])
		b.WriteString(replacement)
		cursor = loc[1]
		count++
	}
	b.WriteString(text[cursor:])
	return b.String(), count
}

// uniqueFields lower-cases and de-duplicates field names, keeping order.
func uniqueFields(fields []string) []string {
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
