package dictionary

import (
	"context"
	"log/slog"
)

// Loader builds a Library from a Source.
type Loader struct {
	source Source
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger uses slog.Default().
func NewLoader(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		source: source,
		logger: logger,
	}
}

// Load reads the manifest and every dictionary it references.
//
// Load never fails. An unreadable manifest yields an empty library, and an unreadable
// word list yields a dictionary without entries. Both are logged.
func (l *Loader) Load(ctx context.Context) *Library {
	library := &Library{
		Categories:   []Category{},
		Dictionaries: []Dictionary{},
	}

	data, err := l.source.ReadManifest(ctx)
	if err != nil {
		l.logger.Error("failed to load dictionary list", slog.Any("error", err))
		return library
	}
	manifest, err := DecodeManifest(data)
	if err != nil {
		l.logger.Error("failed to decode dictionary list", slog.Any("error", err))
		return library
	}

	library.Categories = manifest.Categories
	loaded := make(map[string]bool)
	for _, category := range manifest.Categories {
		for _, ref := range category.Dictionaries {
			if loaded[ref.Name] {
				l.logger.Warn("dictionary listed more than once",
					slog.String("dictionary", ref.Name),
					slog.String("category", category.ID),
				)
				continue
			}
			loaded[ref.Name] = true
			library.Dictionaries = append(library.Dictionaries, l.loadDictionary(ctx, ref))
		}
	}

	l.logger.Debug("loaded dictionaries",
		slog.Int("categories", len(library.Categories)),
		slog.Int("dictionaries", len(library.Dictionaries)),
	)
	return library
}

func (l *Loader) loadDictionary(ctx context.Context, ref DictionaryRef) Dictionary {
	dictionary := Dictionary{
		Name:        ref.Name,
		DisplayName: ref.DisplayName,
		Description: ref.Description,
		Entries:     []Entry{},
		Selected:    true,
	}

	data, err := l.source.ReadDictionary(ctx, ref.Name)
	if err != nil {
		l.logger.Error("failed to load dictionary",
			slog.String("dictionary", ref.Name),
			slog.Any("error", err),
		)
		return dictionary
	}
	dictionary.Entries = ParseEntries(string(data), ref.Name)
	return dictionary
}
