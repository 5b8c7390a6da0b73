package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/pokutuna/dictionary-vcf/internal/testutil"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// setupDictionaries creates a config whose dictionary directory holds aws and tools.
// Returns the temporary root directory.
func setupDictionaries(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.WriteDictionaries(t, filepath.Join(tmpDir, "dictionaries"),
		testutil.DictionaryFixture{Category: "cloud", Name: "aws", CSV: "S3,えすすりー\nEC2,いーしーつー\n"},
		testutil.DictionaryFixture{Category: "development", Name: "tools", CSV: "Docker,どっかー\n"},
	)
	return tmpDir
}

// execute runs the root command with args and the config file set by setConfigFile,
// and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	// Defining the --config flag resets configFile, so pass it explicitly.
	args = append([]string{"--config", configFile}, args...)

	var stdout bytes.Buffer
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	rootCommand.SetOut(&stdout)
	rootCommand.SetErr(&bytes.Buffer{})
	err := rootCommand.ExecuteContext(context.Background())
	return stdout.String(), err
}
