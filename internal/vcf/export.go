package vcf

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

// FileBaseName prefixes every generated file name.
const FileBaseName = "dictionary"

const recordSeparator = "\n\n"

// Exporter turns a selection into a VCF document.
type Exporter struct {
	locale language.Tag
}

// NewExporter creates an exporter that orders words by the collation rules of locale.
func NewExporter(locale language.Tag) *Exporter {
	return &Exporter{locale: locale}
}

// Export renders every selected entry once, ordered by word, with a blank line
// between records. An empty selection gives an empty document.
func (e *Exporter) Export(selection *dictionary.Selection) string {
	return e.ExportDictionaries(selection.Dictionaries())
}

// ExportDictionaries is Export over a plain list of dictionaries.
func (e *Exporter) ExportDictionaries(dictionaries []dictionary.Dictionary) string {
	entries := Deduplicate(SelectedEntries(dictionaries), e.locale)
	records := make([]string, len(entries))
	for i, entry := range entries {
		records[i] = FormatRecord(entry)
	}
	return strings.Join(records, recordSeparator)
}

// Export renders a selection with the default locale.
func Export(selection *dictionary.Selection) string {
	return NewExporter(DefaultLocale).Export(selection)
}

// Filename returns the download name for a document exported at t,
// e.g. dictionary_20250102T030405.vcf.
func Filename(t time.Time) string {
	return FileBaseName + "_" + t.UTC().Format("20060102T150405") + ".vcf"
}
