package maintenance

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Occurrence is a word found in a file.
type Occurrence struct {
	File    string
	Word    string
	Reading string
}

// DuplicateGroup holds the occurrences of one word across several files.
// Word is the lower-cased key the occurrences share.
type DuplicateGroup struct {
	Word        string
	Occurrences []Occurrence
}

// SameFileDuplicate lists the lower-cased words a single file contains more than once.
type SameFileDuplicate struct {
	File  string
	Words []string
}

// FindCrossFileDuplicates groups words case-insensitively and returns the groups
// found in more than one file. Groups that only repeat within one file are left to
// FindSameFileDuplicates.
func FindCrossFileDuplicates(files []SourceFile, locale language.Tag) []DuplicateGroup {
	groups := make(map[string][]Occurrence)
	var keys []string
	for _, file := range files {
		for _, line := range file.Lines {
			key := strings.ToLower(line.Word)
			if _, ok := groups[key]; !ok {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], Occurrence{
				File:    file.Name,
				Word:    line.Word,
				Reading: line.Reading,
			})
		}
	}

	var duplicates []DuplicateGroup
	for _, key := range keys {
		occurrences := groups[key]
		if !spansFiles(occurrences) {
			continue
		}
		sort.SliceStable(occurrences, func(i, j int) bool {
			return occurrences[i].File < occurrences[j].File
		})
		duplicates = append(duplicates, DuplicateGroup{Word: key, Occurrences: occurrences})
	}

	collator := collate.New(locale)
	slices.SortStableFunc(duplicates, func(a, b DuplicateGroup) int {
		return collator.CompareString(a.Word, b.Word)
	})
	return duplicates
}

// FindSameFileDuplicates returns, per file, the words that occur more than once
// ignoring case.
func FindSameFileDuplicates(files []SourceFile) []SameFileDuplicate {
	var duplicates []SameFileDuplicate
	for _, file := range files {
		counts := make(map[string]int)
		for _, line := range file.Lines {
			counts[strings.ToLower(line.Word)]++
		}

		var words []string
		for word, count := range counts {
			if count > 1 {
				words = append(words, word)
			}
		}
		if len(words) == 0 {
			continue
		}
		sort.Strings(words)
		duplicates = append(duplicates, SameFileDuplicate{File: file.Name, Words: words})
	}
	return duplicates
}

func spansFiles(occurrences []Occurrence) bool {
	for _, o := range occurrences[1:] {
		if o.File != occurrences[0].File {
			return true
		}
	}
	return false
}
