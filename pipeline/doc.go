// Package pipeline sequences the BibTeX cleaning passes.
//
// A Config is validated once and turned into an ordered list of named passes
// (see [Plan]). A Pipeline runs those passes over a whole document, one after
// another, each pass seeing the complete output of the previous one, and
// records how many fields every pass touched. [CleanFile] wraps a run with
// file I/O: the input is read as UTF-8 and the output is written atomically,
// only after every pass has succeeded.
//
// Pass order is fixed:
//
//	unicode-nfc        optional, --nfc
//	journal-titles     journal values in title case
//	entry-titles       title (and other title fields), last word capitalized
//	surnames           optional, author/editor surnames wrapped in an uppercase macro
//	remove-fields      unwanted fields deleted
//	strip-blank-lines  always last
package pipeline
