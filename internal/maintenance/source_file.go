// Package maintenance checks and normalizes the CSV word lists a dictionary directory holds.
package maintenance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

const csvExtension = ".csv"

// Line is one valid line of a word list.
type Line struct {
	Word    string
	Reading string
}

// SourceFile is a parsed word list.
type SourceFile struct {
	// Name is the file name without the extension, which is also the dictionary name.
	Name    string
	Path    string
	Content string
	Lines   []Line
}

// ReadDirectory reads every CSV file directly under dir, ordered by file name.
// Subdirectories are not read, since the loader only looks up <name>.csv at the top.
func ReadDirectory(dir string) ([]SourceFile, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", dir, err)
	}

	var files []SourceFile
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != csvExtension {
			continue
		}
		path := filepath.Join(dir, dirEntry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		files = append(files, SourceFile{
			Name:    strings.TrimSuffix(dirEntry.Name(), csvExtension),
			Path:    path,
			Content: string(content),
			Lines:   ParseLines(string(content)),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// ParseLines returns the valid lines of a word list in file order.
func ParseLines(content string) []Line {
	var lines []Line
	for _, line := range strings.Split(content, "\n") {
		word, reading, ok := dictionary.SplitLine(line)
		if !ok {
			continue
		}
		lines = append(lines, Line{Word: word, Reading: reading})
	}
	return lines
}
