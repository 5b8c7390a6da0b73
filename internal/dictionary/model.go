// Package dictionary loads word lists and tracks which of their entries are selected for export.
package dictionary

// Entry is one word of a dictionary with its phonetic reading.
type Entry struct {
	ID              string `json:"id" yaml:"id"`
	Word            string `json:"word" yaml:"word"`
	Reading         string `json:"reading" yaml:"reading"`
	OriginalReading string `json:"original_reading" yaml:"original_reading"`
	Selected        bool   `json:"selected" yaml:"selected"`
}

// Edited reports whether the reading was changed after loading.
func (e Entry) Edited() bool {
	return e.Reading != e.OriginalReading
}

// Dictionary is a named, ordered collection of entries loaded from one word list.
// Selected is true only when every entry is selected.
type Dictionary struct {
	Name        string  `json:"name" yaml:"name"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	Description string  `json:"description" yaml:"description"`
	Entries     []Entry `json:"entries" yaml:"entries"`
	Selected    bool    `json:"selected" yaml:"selected"`
}

// DictionaryRef points from a category to a word list.
type DictionaryRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// Category groups dictionaries for presentation. It has no effect on export.
type Category struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Dictionaries []DictionaryRef `json:"dictionaries"`
}

// Manifest is the decoded list.json.
type Manifest struct {
	Categories []Category `json:"categories"`
}

// Library is the result of loading a manifest and all of its word lists.
type Library struct {
	Categories   []Category
	Dictionaries []Dictionary
}

// Selection returns the initial selection state of the library.
func (l *Library) Selection() *Selection {
	return NewSelection(l.Dictionaries)
}
