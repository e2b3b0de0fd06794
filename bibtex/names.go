package bibtex

import (
	"regexp"
	"strings"
)

// DefaultUppercaseMacro is the LaTeX command used to render surnames in
// capitals.
const DefaultUppercaseMacro = "MakeUppercase"

// nameSeparator joins names inside author and editor fields.
const nameSeparator = " and "

var personFieldRegex = regexp.MustCompile(`(?im)^([ \t]*(?:author|editor)[ \t]*=[ \t]*)([{"])(.*)([}"])([ \t]*,?[ \t]*)$`)

// SurnameWrapper wraps surnames in author and editor fields with an
// uppercase macro, e.g. "Smith, John" becomes "{\MakeUppercase{Smith}}, John".
type SurnameWrapper struct {
	// Macro is the LaTeX command name without the backslash.
	Macro string
}

// NewSurnameWrapper returns a SurnameWrapper for macro, falling back to
// DefaultUppercaseMacro when macro is empty.
func NewSurnameWrapper(macro string) *SurnameWrapper {
	macro = strings.TrimPrefix(strings.TrimSpace(macro), `\`)
	if macro == "" {
		macro = DefaultUppercaseMacro
	}
	return &SurnameWrapper{Macro: macro}
}

// UppercaseSurnames wraps surnames using DefaultUppercaseMacro.
func UppercaseSurnames(text string) (string, int) {
	return NewSurnameWrapper("").Uppercase(text)
}

// Uppercase rewrites every single-line author and editor field in text and
// returns the new text with the number of fields it matched. Names that
// already carry the macro are left as they are.
func (w *SurnameWrapper) Uppercase(text string) (string, int) {
	return replaceSubmatches(personFieldRegex, text, func(groups []string) (string, bool) {
		prefix, open, value, closing, trailing := groups[1], groups[2], groups[3], groups[4], groups[5]
		if (open == "{") != (closing == "}") {
			return "", false
		}

		names := splitNames(value)
		for i, name := range names {
			names[i] = w.wrapName(name)
		}
		return prefix + open + strings.Join(names, nameSeparator) + closing + trailing, true
	})
}

// wrapName wraps the surname of a single "Surname, Given" or "Given Surname"
// name.
func (w *SurnameWrapper) wrapName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "others") || strings.Contains(name, w.marker()) {
		return name
	}

	if idx := topLevelIndex(name, ','); idx >= 0 {
		surname := stripEnclosingBraces(strings.TrimSpace(name[:idx]))
		given := strings.TrimSpace(name[idx+1:])
		if given == "" {
			return w.wrap(surname)
		}
		return w.wrap(surname) + ", " + given
	}

	tokens := topLevelFields(name)
	last := len(tokens) - 1
	tokens[last] = w.wrap(stripEnclosingBraces(tokens[last]))
	return strings.Join(tokens, " ")
}

func (w *SurnameWrapper) wrap(surname string) string {
	return "{" + w.marker() + surname + "}}"
}

func (w *SurnameWrapper) marker() string {
	return `\` + w.Macro + "{"
}

// splitNames splits a field value on " and " (any case) outside braces.
func splitNames(value string) []string {
	var names []string
	depth, start := 0, 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ' ':
			if depth == 0 && i+len(nameSeparator) <= len(value) && strings.EqualFold(value[i:i+len(nameSeparator)], nameSeparator) {
				names = append(names, value[start:i])
				start = i + len(nameSeparator)
				i += len(nameSeparator) - 1
			}
		}
	}
	return append(names, value[start:])
}

// topLevelIndex returns the index of the first c outside braces, or -1.
func topLevelIndex(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case c:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// topLevelFields splits s on whitespace outside braces, so "{van Dyke}"
// stays one token.
func topLevelFields(s string) []string {
	var fields []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{':
			depth++
		case c == '}':
			depth--
		case (c == ' ' || c == '\t') && depth <= 0:
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}
