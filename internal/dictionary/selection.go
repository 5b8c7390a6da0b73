package dictionary

// Selection tracks which dictionaries and entries are chosen for export.
//
// A Selection is never modified in place. Every operation returns a new Selection
// that shares unchanged dictionaries with the receiver, and operations addressing an
// unknown dictionary or entry return the receiver itself.
type Selection struct {
	dictionaries []Dictionary
}

// Stats summarises a selection.
type Stats struct {
	SelectedDictionaries int  `json:"selected_dictionaries"`
	SelectedEntries      int  `json:"selected_entries"`
	TotalEntries         int  `json:"total_entries"`
	AllSelected          bool `json:"all_selected"`
}

// NewSelection copies dictionaries into a new selection.
func NewSelection(dictionaries []Dictionary) *Selection {
	copied := make([]Dictionary, len(dictionaries))
	for i, d := range dictionaries {
		copied[i] = d
		copied[i].Entries = append([]Entry(nil), d.Entries...)
	}
	return &Selection{dictionaries: copied}
}

// Dictionaries returns a copy of the dictionaries in load order.
func (s *Selection) Dictionaries() []Dictionary {
	return NewSelection(s.dictionaries).dictionaries
}

// Dictionary returns a copy of the named dictionary.
func (s *Selection) Dictionary(name string) (Dictionary, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return Dictionary{}, false
	}
	d := s.dictionaries[i]
	d.Entries = append([]Entry(nil), d.Entries...)
	return d, true
}

// ToggleDictionary flips the named dictionary and sets every entry to the new value.
func (s *Selection) ToggleDictionary(name string) *Selection {
	i := s.indexOf(name)
	if i < 0 {
		return s
	}
	return s.SetDictionary(name, !s.dictionaries[i].Selected)
}

// SetDictionary sets the named dictionary and all of its entries to selected.
func (s *Selection) SetDictionary(name string, selected bool) *Selection {
	i := s.indexOf(name)
	if i < 0 {
		return s
	}
	return s.replace(i, func(d Dictionary) Dictionary {
		d.Entries = setAll(d.Entries, selected)
		d.Selected = selected
		return d
	})
}

// ToggleEntry flips one entry and recomputes whether its dictionary is selected.
func (s *Selection) ToggleEntry(dictionaryName string, entryID string) *Selection {
	i, j := s.entryIndex(dictionaryName, entryID)
	if j < 0 {
		return s
	}
	return s.replace(i, func(d Dictionary) Dictionary {
		entries := append([]Entry(nil), d.Entries...)
		entries[j].Selected = !entries[j].Selected
		d.Entries = entries
		d.Selected = allSelected(entries)
		return d
	})
}

// UpdateReading replaces the reading of one entry. Its original reading and
// selection are left as they are.
func (s *Selection) UpdateReading(dictionaryName string, entryID string, reading string) *Selection {
	i, j := s.entryIndex(dictionaryName, entryID)
	if j < 0 {
		return s
	}
	return s.replace(i, func(d Dictionary) Dictionary {
		entries := append([]Entry(nil), d.Entries...)
		entries[j].Reading = reading
		d.Entries = entries
		return d
	})
}

// SelectAll selects every dictionary and entry.
func (s *Selection) SelectAll() *Selection {
	return s.setEverything(true)
}

// DeselectAll deselects every dictionary and entry.
func (s *Selection) DeselectAll() *Selection {
	return s.setEverything(false)
}

// Indeterminate reports whether some, but not all, entries of the named dictionary
// are selected. It is derived for display and never stored.
func (s *Selection) Indeterminate(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}
	selected := 0
	for _, e := range s.dictionaries[i].Entries {
		if e.Selected {
			selected++
		}
	}
	return selected > 0 && selected < len(s.dictionaries[i].Entries)
}

// Stats counts selected dictionaries and entries.
func (s *Selection) Stats() Stats {
	var stats Stats
	for _, d := range s.dictionaries {
		if d.Selected {
			stats.SelectedDictionaries++
		}
		for _, e := range d.Entries {
			if e.Selected {
				stats.SelectedEntries++
			}
		}
		stats.TotalEntries += len(d.Entries)
	}
	stats.AllSelected = stats.TotalEntries > 0 && stats.SelectedEntries == stats.TotalEntries
	return stats
}

func (s *Selection) setEverything(selected bool) *Selection {
	dictionaries := make([]Dictionary, len(s.dictionaries))
	for i, d := range s.dictionaries {
		d.Entries = setAll(d.Entries, selected)
		d.Selected = selected
		dictionaries[i] = d
	}
	return &Selection{dictionaries: dictionaries}
}

func (s *Selection) replace(i int, update func(Dictionary) Dictionary) *Selection {
	dictionaries := make([]Dictionary, len(s.dictionaries))
	copy(dictionaries, s.dictionaries)
	dictionaries[i] = update(dictionaries[i])
	return &Selection{dictionaries: dictionaries}
}

func (s *Selection) indexOf(name string) int {
	for i, d := range s.dictionaries {
		if d.Name == name {
			return i
		}
	}
	return -1
}

func (s *Selection) entryIndex(dictionaryName string, entryID string) (int, int) {
	i := s.indexOf(dictionaryName)
	if i < 0 {
		return -1, -1
	}
	for j, e := range s.dictionaries[i].Entries {
		if e.ID == entryID {
			return i, j
		}
	}
	return i, -1
}

func (s *Selection) entry(dictionaryName string, entryID string) (Entry, bool) {
	i, j := s.entryIndex(dictionaryName, entryID)
	if j < 0 {
		return Entry{}, false
	}
	return s.dictionaries[i].Entries[j], true
}

func setAll(entries []Entry, selected bool) []Entry {
	updated := make([]Entry, len(entries))
	for i, e := range entries {
		e.Selected = selected
		updated[i] = e
	}
	return updated
}

// allSelected derives a dictionary's selection from its entries.
func allSelected(entries []Entry) bool {
	for _, e := range entries {
		if !e.Selected {
			return false
		}
	}
	return true
}
