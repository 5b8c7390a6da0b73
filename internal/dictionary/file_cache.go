package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileCache keeps a copy of every file read from another source, so a remote word list
// only has to be fetched once. Failing to write the cache is logged and does not fail
// the read.
type FileCache struct {
	rootDir string
	source  Source
	logger  *slog.Logger
}

func NewFileCache(cacheDirectory string, source Source) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
		source:  source,
		logger:  slog.Default(),
	}
}

func (cache *FileCache) ReadManifest(ctx context.Context) ([]byte, error) {
	return cache.cache(ManifestFileName, func() ([]byte, error) {
		return cache.source.ReadManifest(ctx)
	})
}

func (cache *FileCache) ReadDictionary(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateDictionaryName(name); err != nil {
		return nil, err
	}
	return cache.cache(name+".csv", func() ([]byte, error) {
		return cache.source.ReadDictionary(ctx, name)
	})
}

func (cache *FileCache) filePath(fileName string) string {
	return filepath.Join(cache.rootDir, fileName)
}

func (cache *FileCache) cache(fileName string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(fileName)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(fileName)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, fmt.Errorf("read %s from source > %w", fileName, err)
	}

	if err := cache.write(fileName, contents); err != nil {
		cache.logger.Warn("failed to cache a file",
			slog.String("file", localFilePath),
			slog.Any("error", err),
		)
	}
	return contents, nil
}

// write stores contents through a temporary file, so an interrupted write never
// leaves a partial file that a later read would take as a cache hit.
func (cache *FileCache) write(fileName string, contents []byte) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.CreateTemp(cache.rootDir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("os.Chmod > %w", err)
	}
	if err := os.Rename(tmpPath, cache.filePath(fileName)); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func (cache *FileCache) read(fileName string) ([]byte, error) {
	file, err := os.Open(cache.filePath(fileName))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
