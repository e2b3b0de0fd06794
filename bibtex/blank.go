package bibtex

import "regexp"

var blankLineRegex = regexp.MustCompile(`(?m)^[ \t]*\n`)

// StripBlankLines removes every line that contains only spaces or tabs.
func StripBlankLines(text string) string {
	return blankLineRegex.ReplaceAllString(text, "")
}
