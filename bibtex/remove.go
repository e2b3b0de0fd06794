package bibtex

import (
	"regexp"
	"strings"
)

// DefaultRemoveFields are the fields dropped when no explicit list is given.
var DefaultRemoveFields = []string{
	"doi",
	"url",
	"urldate",
	"eprint",
	"eprinttype",
	"archiveprefix",
	"file",
	"abstract",
	"keywords",
	"issn",
	"isbn",
	"language",
	"shorttitle",
	"annotation",
	"note",
}

var (
	blankRunRegex      = regexp.MustCompile(`\n\n\n+`)
	danglingCommaRegex = regexp.MustCompile(`,(\s*\n\s*\})`)
)

// RemoveFields deletes every field in fields from text. A field is removed
// when its name starts a line; its value may be braced (nested to any depth
// and spanning lines), quoted, a bare number or macro, or a # concatenation
// of those. The line is dropped entirely when nothing but whitespace follows
// the field. Values that never terminate are left in place.
//
// Afterwards runs of blank lines are collapsed to one and a comma left
// dangling before an entry's closing brace is removed. The returned count is
// the number of fields deleted.
func RemoveFields(text string, fields []string) (string, int) {
	total := 0
	for _, field := range uniqueFields(fields) {
		var n int
		text, n = removeField(text, field)
		total += n
	}

	text = CollapseBlankRuns(text)
	text = danglingCommaRegex.ReplaceAllString(text, "${1}")
	return text, total
}

// CollapseBlankRuns replaces three or more consecutive newlines with two.
func CollapseBlankRuns(text string) string {
	return blankRunRegex.ReplaceAllString(text, "\n\n")
}

func removeField(text, field string) (string, int) {
	re := regexp.MustCompile(`(?im)^([ \t]*)` + fieldNamePattern(field) + `[ \t]*=[ \t]*`)
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	cursor, removed := 0, 0
	for _, loc := range locs {
		lineStart, nameStart, valueStart := loc[0], loc[3], loc[1]
		// A match inside a value that was already removed.
		if lineStart < cursor {
			continue
		}
		start, end, ok := fieldSpan(text, lineStart, nameStart, valueStart)
		if !ok {
			continue
		}
		b.WriteString(text[cursor:start])
		cursor = end
		removed++
	}
	b.WriteString(text[cursor:])
	return b.String(), removed
}

// fieldSpan returns the byte range to delete for the field whose value starts
// at valueStart.
func fieldSpan(text string, lineStart, nameStart, valueStart int) (int, int, bool) {
	// A delimited value may start on a following line. A bare value may not,
	// or it would swallow the next field.
	if next := skipSpace(text, valueStart); next < len(text) && (text[next] == '{' || text[next] == '"') {
		valueStart = next
	}
	end, ok := scanValue(text, valueStart)
	if !ok {
		return 0, 0, false
	}

	end = skipBlanks(text, end)
	if end < len(text) && text[end] == ',' {
		end = skipBlanks(text, end+1)
	}

	switch {
	case end == len(text):
		return lineStart, end, true
	case text[end] == '\n':
		return lineStart, end + 1, true
	case strings.HasPrefix(text[end:], "\r\n"):
		return lineStart, end + 2, true
	default:
		// Something else shares the line, e.g. the entry's closing brace.
		return nameStart, end, true
	}
}

// scanValue returns the index just past the value starting at i.
func scanValue(text string, i int) (int, bool) {
	for {
		end, ok := scanPiece(text, i)
		if !ok {
			return 0, false
		}
		next := skipBlanks(text, end)
		if next >= len(text) || text[next] != '#' {
			return end, true
		}
		i = skipSpace(text, next+1)
	}
}

// scanPiece scans one braced, quoted or bare value.
func scanPiece(text string, i int) (int, bool) {
	if i >= len(text) {
		return 0, false
	}

	switch text[i] {
	case '{':
		depth := 0
		for j := i; j < len(text); j++ {
			switch text[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return j + 1, true
				}
			}
		}
		return 0, false
	case '"':
		depth := 0
		for j := i + 1; j < len(text); j++ {
			switch text[j] {
			case '{':
				depth++
			case '}':
				depth--
			case '"':
				if depth == 0 {
					return j + 1, true
				}
			}
		}
		return 0, false
	default:
		j := i
		for j < len(text) && !strings.ContainsRune(",}#\"{ \t\r\n", rune(text[j])) {
			j++
		}
		if j == i {
			return 0, false
		}
		// A bare value must end the field; "some text" is not a value.
		if k := skipBlanks(text, j); k < len(text) && !strings.ContainsRune(",#}\r\n", rune(text[k])) {
			return 0, false
		}
		return j, true
	}
}

func skipBlanks(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i
}

func skipSpace(text string, i int) int {
	for i < len(text) && strings.ContainsRune(" \t\r\n", rune(text[i])) {
		i++
	}
	return i
}
