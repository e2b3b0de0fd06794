package bibtex

import (
	"regexp"
)

// RewriteField replaces the value of every single-line occurrence of field
// with transform(NormalizeValue(value), capitalizeLast), wrapped in double
// braces so BibTeX styles keep the casing as written. The field name is
// matched case-insensitively at the start of a line; values that continue on
// the next line are not supported.
//
// It returns the rewritten text and the number of fields matched.
func RewriteField(text, field string, transform Transform, capitalizeLast bool) (string, int) {
	re := regexp.MustCompile(`(?im)^([ \t]*` + fieldNamePattern(field) + `[ \t]*=[ \t]*)(.+?)([ \t]*,[ \t]*)?$`)

	return replaceSubmatches(re, text, func(groups []string) (string, bool) {
		prefix, value, trailing := groups[1], groups[2], groups[3]
		fixed := transform(NormalizeValue(value), capitalizeLast)
		return prefix + "{{" + fixed + "}}" + trailing, true
	})
}

// RewriteFields applies RewriteField for each field in turn and sums the
// counts.
func RewriteFields(text string, fields []string, transform Transform, capitalizeLast bool) (string, int) {
	total := 0
	for _, field := range uniqueFields(fields) {
		var n int
		text, n = RewriteField(text, field, transform, capitalizeLast)
		total += n
	}
	return text, total
}
