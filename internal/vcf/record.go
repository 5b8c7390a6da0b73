// Package vcf renders selected dictionary entries as a vCard 3.0 contacts file.
//
// Every entry becomes a company contact whose phonetic organization name is the
// reading, which voice input systems use to learn how a word is pronounced.
package vcf

import (
	"strings"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

// NoteURL is written to the NOTE field of every record.
const NoteURL = "https://pokutuna.github.io/dictionary.vcf/"

// ContentType is the media type of an exported document.
const ContentType = "text/vcard"

// escaper works in a single pass, so backslashes it inserts are never escaped again.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\n", `\n`,
)

// Escape escapes a property value.
func Escape(value string) string {
	return escaper.Replace(value)
}

// Unescape reverses Escape.
func Unescape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' || i+1 == len(value) {
			b.WriteByte(c)
			continue
		}
		i++
		switch value[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// FormatRecord renders one entry. The entry is expected to come from the parser,
// so its word and reading are not empty.
func FormatRecord(entry dictionary.Entry) string {
	word := Escape(entry.Word)
	reading := Escape(entry.Reading)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"PRODID:dictionary.vcf",
		"N:;;;;",
		"FN:" + word,
		"ORG:" + word,
		"X-PHONETIC-ORG:" + reading,
		"X-ABShowAs:COMPANY",
		"NOTE:" + NoteURL,
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}
