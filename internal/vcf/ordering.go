package vcf

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

// DefaultLocale is used for ordering when no locale is configured.
var DefaultLocale = language.Japanese

// SelectedEntries flattens the selected entries of all dictionaries, in dictionary
// order and then line order.
func SelectedEntries(dictionaries []dictionary.Dictionary) []dictionary.Entry {
	var entries []dictionary.Entry
	for _, d := range dictionaries {
		for _, e := range d.Entries {
			if e.Selected {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// Deduplicate keeps one entry per word and sorts the result with the collation rules
// of locale.
//
// When several entries share a word, the last one wins but it takes the position of
// the first, so an entry from a later dictionary silently replaces the reading of an
// earlier one.
//
// The sort has no secondary key. Distinct words that collate equal, such as a
// precomposed "é" and "e" followed by a combining acute accent, keep that position
// order, so their relative order follows the order of the dictionaries.
func Deduplicate(entries []dictionary.Entry, locale language.Tag) []dictionary.Entry {
	positions := make(map[string]int, len(entries))
	unique := make([]dictionary.Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := positions[e.Word]; ok {
			unique[i] = e
			continue
		}
		positions[e.Word] = len(unique)
		unique = append(unique, e)
	}

	collator := collate.New(locale)
	slices.SortStableFunc(unique, func(a, b dictionary.Entry) int {
		return collator.CompareString(a.Word, b.Word)
	})
	return unique
}

// SortWords sorts words in place with the collation rules of locale.
func SortWords(words []string, locale language.Tag) {
	collator := collate.New(locale)
	slices.SortStableFunc(words, collator.CompareString)
}
