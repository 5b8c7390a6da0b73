// Package testutil provides shared test helpers for config files and dictionary fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

// SetupTestConfig creates a config file that reads dictionaries from tmpDir/dictionaries and
// exports into tmpDir/output. Both directories are created. Returns the config file path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dictionariesDir := filepath.Join(tmpDir, "dictionaries")
	outputDir := filepath.Join(tmpDir, "output")
	for _, d := range []string{dictionariesDir, outputDir} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}

	configContent := fmt.Sprintf(`dictionaries:
  directory: %s
export:
  locale: ja
  output_directory: %s
server:
  port: 18080
`,
		dictionariesDir,
		outputDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DictionaryFixture is one word list written by WriteDictionaries.
type DictionaryFixture struct {
	Category string
	Name     string
	CSV      string
}

// WriteDictionaries writes list.json and one CSV file per fixture into dir. Categories are
// listed in the order they first appear.
func WriteDictionaries(t *testing.T, dir string, fixtures ...DictionaryFixture) {
	t.Helper()

	var manifest dictionary.Manifest
	categoryIndex := map[string]int{}
	for _, f := range fixtures {
		i, ok := categoryIndex[f.Category]
		if !ok {
			i = len(manifest.Categories)
			categoryIndex[f.Category] = i
			manifest.Categories = append(manifest.Categories, dictionary.Category{
				ID:   f.Category,
				Name: f.Category,
			})
		}
		manifest.Categories[i].Dictionaries = append(manifest.Categories[i].Dictionaries, dictionary.DictionaryRef{
			Name:        f.Name,
			DisplayName: f.Name,
		})
		require.NoError(t, os.WriteFile(filepath.Join(dir, f.Name+".csv"), []byte(f.CSV), 0644))
	}

	contents, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, dictionary.ManifestFileName), contents, 0644))
}
