package dictionary

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid selection profile")

// DefaultSelection is the state a profile starts from.
type DefaultSelection string

const (
	DefaultSelectionAll  DefaultSelection = "all"
	DefaultSelectionNone DefaultSelection = "none"
)

// Profile describes a selection declaratively, so it can be stored in a file or sent
// over HTTP instead of replaying individual toggles.
type Profile struct {
	Default      DefaultSelection    `json:"default,omitempty" yaml:"default,omitempty"`
	Dictionaries []DictionaryProfile `json:"dictionaries,omitempty" yaml:"dictionaries,omitempty"`
	Entries      []EntryProfile      `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type DictionaryProfile struct {
	Name     string `json:"name" yaml:"name"`
	Selected bool   `json:"selected" yaml:"selected"`
}

// EntryProfile overrides one entry. Nil fields keep the current value.
type EntryProfile struct {
	Dictionary string  `json:"dictionary" yaml:"dictionary"`
	ID         string  `json:"id" yaml:"id"`
	Selected   *bool   `json:"selected,omitempty" yaml:"selected,omitempty"`
	Reading    *string `json:"reading,omitempty" yaml:"reading,omitempty"`
}

// LoadProfile reads a YAML profile.
func LoadProfile(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var profile Profile
	if err := yaml.NewDecoder(file).Decode(&profile); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Validate checks the default selection value.
func (p *Profile) Validate() error {
	switch p.Default {
	case "", DefaultSelectionAll, DefaultSelectionNone:
		return nil
	default:
		return fmt.Errorf("%w: unknown default %q", ErrInvalidProfile, p.Default)
	}
}

// Apply returns the selection described by the profile.
// The default is applied first, then dictionaries, then entries.
// Names and IDs that do not exist are ignored.
func (p *Profile) Apply(selection *Selection) *Selection {
	switch p.Default {
	case DefaultSelectionNone:
		selection = selection.DeselectAll()
	case DefaultSelectionAll, "":
		selection = selection.SelectAll()
	}

	for _, d := range p.Dictionaries {
		selection = selection.SetDictionary(d.Name, d.Selected)
	}

	for _, e := range p.Entries {
		if e.Selected != nil {
			if current, ok := selection.entry(e.Dictionary, e.ID); ok && current.Selected != *e.Selected {
				selection = selection.ToggleEntry(e.Dictionary, e.ID)
			}
		}
		if e.Reading != nil {
			selection = selection.UpdateReading(e.Dictionary, e.ID, *e.Reading)
		}
	}
	return selection
}
