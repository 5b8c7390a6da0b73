package maintenance

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
)

// FileCount is the number of valid lines in a file.
type FileCount struct {
	File  string
	Lines int
}

// Report is the result of checking a dictionary directory for duplicates.
type Report struct {
	CrossFile []DuplicateGroup
	SameFile  []SameFileDuplicate
	Counts    []FileCount
}

// NewReport checks files for duplicated words.
func NewReport(files []SourceFile, locale language.Tag) *Report {
	counts := make([]FileCount, len(files))
	for i, file := range files {
		counts[i] = FileCount{File: file.Name, Lines: len(file.Lines)}
	}
	return &Report{
		CrossFile: FindCrossFileDuplicates(files, locale),
		SameFile:  FindSameFileDuplicates(files),
		Counts:    counts,
	}
}

func (r *Report) HasDuplicates() bool {
	return len(r.CrossFile) > 0 || len(r.SameFile) > 0
}

// Total is the number of valid lines in all files.
func (r *Report) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Lines
	}
	return total
}

// Write prints the report for a terminal.
func (r *Report) Write(w io.Writer) {
	failure := color.New(color.FgRed, color.Bold)
	success := color.New(color.FgGreen)
	bold := color.New(color.Bold)
	separator := strings.Repeat("=", 60)

	if len(r.CrossFile) > 0 {
		_, _ = failure.Fprintln(w, "✗ Duplicates across files:")
		_, _ = fmt.Fprintln(w, separator)
		for _, group := range r.CrossFile {
			_, _ = bold.Fprintf(w, "\n%q\n", group.Word)
			for _, o := range group.Occurrences {
				_, _ = fmt.Fprintf(w, "   %s: %s → %s\n", o.File, o.Word, o.Reading)
			}
		}
		_, _ = fmt.Fprintf(w, "\n%d duplicated word(s) found.\n\n", len(r.CrossFile))
	} else {
		_, _ = success.Fprintln(w, "✓ No duplicates across files.")
		_, _ = fmt.Fprintln(w)
	}

	if len(r.SameFile) > 0 {
		_, _ = failure.Fprintln(w, "✗ Duplicates within a file:")
		_, _ = fmt.Fprintln(w, separator)
		for _, d := range r.SameFile {
			_, _ = bold.Fprintf(w, "\n%s.csv:\n", d.File)
			for _, word := range d.Words {
				_, _ = fmt.Fprintf(w, "   - %s\n", word)
			}
		}
		_, _ = fmt.Fprintf(w, "\n%d file(s) contain duplicated words.\n\n", len(r.SameFile))
	} else {
		_, _ = success.Fprintln(w, "✓ No duplicates within a file.")
		_, _ = fmt.Fprintln(w)
	}

	_, _ = bold.Fprintln(w, "Statistics:")
	_, _ = fmt.Fprintln(w, separator)
	for _, c := range r.Counts {
		_, _ = fmt.Fprintf(w, "%-20s : %3d words\n", c.File, c.Lines)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(w, "%-20s : %3d words\n", "total", r.Total())
}
