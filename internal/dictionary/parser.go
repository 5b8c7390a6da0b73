package dictionary

import (
	"fmt"
	"strings"
)

// SplitLine splits one "word,reading" line on its first comma.
// ok is false when there is no comma or either half is empty after trimming.
func SplitLine(line string) (word string, reading string, ok bool) {
	word, reading, found := strings.Cut(line, ",")
	if !found {
		return "", "", false
	}
	word = strings.TrimSpace(word)
	reading = strings.TrimSpace(reading)
	if word == "" || reading == "" {
		return "", "", false
	}
	return word, reading, true
}

// EntryID returns the identifier of the entry at lineIndex of the named dictionary.
func EntryID(dictionaryName string, lineIndex int) string {
	return fmt.Sprintf("%s-%d", dictionaryName, lineIndex)
}

// ParseEntries parses the word list of one dictionary.
// Malformed lines are skipped but still count towards the line index used for IDs,
// so an entry keeps its ID when lines before it become invalid.
func ParseEntries(text string, dictionaryName string) []Entry {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Entry{}
	}

	lines := strings.Split(text, "\n")
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		word, reading, ok := SplitLine(line)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			ID:              EntryID(dictionaryName, i),
			Word:            word,
			Reading:         reading,
			OriginalReading: reading,
			Selected:        true,
		})
	}
	return entries
}
