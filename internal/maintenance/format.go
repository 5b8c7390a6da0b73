package maintenance

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FormatCSV returns the canonical form of a word list: invalid lines dropped,
// whitespace trimmed, lines sorted by word and terminated by a newline. A list without
// valid lines formats to an empty file.
func FormatCSV(content string, locale language.Tag) string {
	lines := ParseLines(content)
	if len(lines) == 0 {
		return ""
	}

	collator := collate.New(locale)
	slices.SortStableFunc(lines, func(a, b Line) int {
		return collator.CompareString(a.Word, b.Word)
	})

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Word)
		b.WriteByte(',')
		b.WriteString(line.Reading)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDirectory formats every CSV file in dir and returns the paths of the files
// that were not in canonical form. When check is true nothing is written.
func FormatDirectory(dir string, locale language.Tag, check bool) ([]string, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("ReadDirectory() > %w", err)
	}

	var changed []string
	for _, file := range files {
		formatted := FormatCSV(file.Content, locale)
		if formatted == file.Content {
			continue
		}
		changed = append(changed, file.Path)
		if check {
			continue
		}
		if err := os.WriteFile(file.Path, []byte(formatted), 0644); err != nil {
			return changed, fmt.Errorf("os.WriteFile(%s) > %w", file.Path, err)
		}
	}
	return changed, nil
}
