package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pokutuna/dictionary-vcf/dictionaries"
	"github.com/pokutuna/dictionary-vcf/internal/config"
	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func loadLibrary(ctx context.Context, cfg *config.Config) *dictionary.Library {
	return dictionary.NewLoader(dictionaries.NewSource(cfg.Dictionaries), slog.Default()).Load(ctx)
}
