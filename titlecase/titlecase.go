// Package titlecase capitalizes bibliography titles.
//
// A Caser works token by token over whitespace-delimited words. Known
// acronyms and runs of capitals are kept upper case, minor words (articles,
// short prepositions, coordinating conjunctions) are lowered unless they open
// the title or follow a colon or dash, and everything else is capitalized.
// Existing braces are dropped before casing so that previously protected
// values are re-cased from scratch.
package titlecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Class is the casing decision made for a single token.
type Class int

const (
	// Capitalize is the default: first letter upper, rest lower.
	Capitalize Class = iota
	// Upper forces the whole token upper case (acronyms, initialisms).
	Upper
	// ForceCapitalize is a capitalization that minor-word rules cannot override.
	ForceCapitalize
	// Lower keeps a minor word lower case.
	Lower
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case ForceCapitalize:
		return "force-capitalize"
	case Lower:
		return "lower"
	default:
		return "capitalize"
	}
}

// DefaultMinorWords are lowered inside a title.
var DefaultMinorWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "for", "in", "of",
	"on", "or", "the", "to", "with", "from", "into", "via", "nor",
}

// DefaultAcronyms are always emitted upper case.
var DefaultAcronyms = []string{
	"US", "USA", "UK", "EU", "NBER", "CEO", "GDP", "AI", "IT", "R&D", "OECD",
}

var (
	abbrevRegex = regexp.MustCompile(`^[A-Z]{2,}\b`)
	braceRegex  = regexp.MustCompile(`[{}]`)
)

// clauseBreaks end a clause; the next token is always capitalized.
const clauseBreaks = ":—-"

// Caser applies title case with a fixed acronym and minor-word table.
// A Caser is immutable and safe for concurrent use.
type Caser struct {
	acronyms map[string]struct{}
	minor    map[string]struct{}
}

// New creates a Caser. Acronyms are matched against the upper-cased token,
// minor words against the lower-cased token.
func New(acronyms, minorWords []string) *Caser {
	c := &Caser{
		acronyms: make(map[string]struct{}, len(acronyms)),
		minor:    make(map[string]struct{}, len(minorWords)),
	}
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for _, a := range acronyms {
		if a = strings.TrimSpace(a); a != "" {
			c.acronyms[upper.String(a)] = struct{}{}
		}
	}
	for _, w := range minorWords {
		if w = strings.TrimSpace(w); w != "" {
			c.minor[lower.String(w)] = struct{}{}
		}
	}
	return c
}

// Default returns a Caser using DefaultAcronyms and DefaultMinorWords.
func Default() *Caser {
	return New(DefaultAcronyms, DefaultMinorWords)
}

// Title returns text in title case. When capitalizeLast is set the final
// token is capitalized even if it is a minor word; entry titles want this,
// journal names do not.
func (c *Caser) Title(text string, capitalizeLast bool) string {
	words := strings.Fields(braceRegex.ReplaceAllString(text, ""))
	if len(words) == 0 {
		return ""
	}

	// cases.Caser is stateful, so each call gets its own pair.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	out := make([]string, len(words))
	for i, word := range words {
		switch c.classify(words, i, capitalizeLast, upper) {
		case Upper:
			out[i] = upper.String(word)
		case Lower:
			out[i] = lower.String(word)
		default:
			out[i] = capitalize(word, upper, lower)
		}
	}
	return strings.Join(out, " ")
}

// Classify reports the decision Title would make for every token of text.
func (c *Caser) Classify(text string, capitalizeLast bool) []Class {
	words := strings.Fields(braceRegex.ReplaceAllString(text, ""))
	upper := cases.Upper(language.Und)
	classes := make([]Class, len(words))
	for i := range words {
		classes[i] = c.classify(words, i, capitalizeLast, upper)
	}
	return classes
}

func (c *Caser) classify(words []string, i int, capitalizeLast bool, upper cases.Caser) Class {
	word := words[i]
	if _, ok := c.acronyms[upper.String(word)]; ok || abbrevRegex.MatchString(word) {
		return Upper
	}
	if i == 0 || endsClause(words[i-1]) {
		return ForceCapitalize
	}
	if capitalizeLast && i == len(words)-1 {
		return ForceCapitalize
	}
	if _, ok := c.minor[strings.ToLower(word)]; ok {
		return Lower
	}
	return Capitalize
}

func endsClause(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	return r != utf8.RuneError && strings.ContainsRune(clauseBreaks, r)
}

func capitalize(word string, upper, lower cases.Caser) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return upper.String(string(r)) + lower.String(word[size:])
}
