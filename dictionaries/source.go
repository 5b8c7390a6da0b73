package dictionaries

import (
	"os"

	"github.com/pokutuna/dictionary-vcf/internal/config"
	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

// NewSource picks where word lists come from: a base URL (cached on disk when a cache
// directory is set), a local directory, or FS.
func NewSource(cfg config.DictionariesConfig) dictionary.Source {
	switch {
	case cfg.BaseURL != "":
		var source dictionary.Source = dictionary.NewHTTPSource(cfg.BaseURL)
		if cfg.CacheDirectory != "" {
			source = dictionary.NewFileCache(cfg.CacheDirectory, source)
		}
		return source
	case cfg.Directory != "":
		return dictionary.NewFSSource(os.DirFS(cfg.Directory))
	default:
		return dictionary.NewFSSource(FS)
	}
}
