package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_dictionary "github.com/pokutuna/dictionary-vcf/internal/mocks/dictionary"
)

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		fileName string
		expected string
	}{
		{
			name:     "manifest",
			rootDir:  "cache",
			fileName: ManifestFileName,
			expected: filepath.Join("cache", "list.json"),
		},
		{
			name:     "word list",
			rootDir:  "cache",
			fileName: "aws.csv",
			expected: filepath.Join("cache", "aws.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(tt.rootDir, nil)
			assert.Equal(t, tt.expected, cache.filePath(tt.fileName))
		})
	}
}

func TestFileCache_ReadDictionary(t *testing.T) {
	tests := []struct {
		name         string
		cacheContent string
		setupMock    func(source *mock_dictionary.MockSource)
		want         string
		wantErr      bool
	}{
		{
			name: "cache miss fetches from source",
			setupMock: func(source *mock_dictionary.MockSource) {
				source.EXPECT().ReadDictionary(gomock.Any(), "aws").Return([]byte("EC2,いーしーつー\n"), nil)
			},
			want: "EC2,いーしーつー\n",
		},
		{
			name:         "cache hit does not call source",
			cacheContent: "S3,えすすりー\n",
			setupMock:    func(source *mock_dictionary.MockSource) {},
			want:         "S3,えすすりー\n",
		},
		{
			name: "source error",
			setupMock: func(source *mock_dictionary.MockSource) {
				source.EXPECT().ReadDictionary(gomock.Any(), "aws").Return(nil, errors.New("unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock_dictionary.NewMockSource(ctrl)
			tt.setupMock(source)

			rootDir := filepath.Join(t.TempDir(), "cache")
			if tt.cacheContent != "" {
				require.NoError(t, os.MkdirAll(rootDir, 0755))
				require.NoError(t, os.WriteFile(filepath.Join(rootDir, "aws.csv"), []byte(tt.cacheContent), 0644))
			}

			cache := NewFileCache(rootDir, source)
			got, err := cache.ReadDictionary(context.Background(), "aws")
			if tt.wantErr {
				assert.Error(t, err)
				assert.NoFileExists(t, filepath.Join(rootDir, "aws.csv"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			stored, err := os.ReadFile(filepath.Join(rootDir, "aws.csv"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(stored))
		})
	}
}

func TestFileCache_ReadManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_dictionary.NewMockSource(ctrl)
	source.EXPECT().ReadManifest(gomock.Any()).Return([]byte(`{"categories":[]}`), nil).Times(1)

	cache := NewFileCache(t.TempDir(), source)
	for i := 0; i < 2; i++ {
		got, err := cache.ReadManifest(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `{"categories":[]}`, string(got))
	}
}

func TestFileCache_ReadDictionary_invalidName(t *testing.T) {
	tests := []struct {
		name           string
		dictionaryName string
	}{
		{name: "parent directory", dictionaryName: "../escaped"},
		{name: "nested path", dictionaryName: "sub/aws"},
		{name: "absolute path", dictionaryName: "/tmp/aws"},
		{name: "backslash", dictionaryName: `..\escaped`},
		{name: "empty", dictionaryName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock_dictionary.NewMockSource(ctrl)

			root := t.TempDir()
			cache := NewFileCache(filepath.Join(root, "cache"), source)
			_, err := cache.ReadDictionary(context.Background(), tt.dictionaryName)

			assert.ErrorIs(t, err, ErrInvalidDictionaryName)
			assert.NoFileExists(t, filepath.Join(root, "escaped.csv"))
			assert.NoDirExists(t, filepath.Join(root, "cache"))
		})
	}
}

func TestFileCache_unwritableCacheDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_dictionary.NewMockSource(ctrl)
	source.EXPECT().ReadManifest(gomock.Any()).
		Return([]byte(`{"categories":[{"id":"cloud","name":"Cloud","description":"","dictionaries":[{"name":"aws","displayName":"AWS"}]}]}`), nil)
	source.EXPECT().ReadDictionary(gomock.Any(), "aws").Return([]byte("EC2,いーしーつー\n"), nil)

	// a regular file where the cache directory should be
	rootDir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(rootDir, []byte("not a directory"), 0644))

	logger, _ := newTestLogger()
	library := NewLoader(NewFileCache(rootDir, source), logger).Load(context.Background())

	require.Len(t, library.Dictionaries, 1)
	assert.Equal(t, "aws", library.Dictionaries[0].Name)
	require.Len(t, library.Dictionaries[0].Entries, 1)
	assert.Equal(t, "EC2", library.Dictionaries[0].Entries[0].Word)
}

func TestFileCache_leavesNoTemporaryFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_dictionary.NewMockSource(ctrl)
	source.EXPECT().ReadDictionary(gomock.Any(), "aws").Return([]byte("EC2,いーしーつー\n"), nil)

	rootDir := t.TempDir()
	_, err := NewFileCache(rootDir, source).ReadDictionary(context.Background(), "aws")
	require.NoError(t, err)

	entries, err := os.ReadDir(rootDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "aws.csv", entries[0].Name())
}
