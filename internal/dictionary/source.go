package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=source.go -destination=../mocks/dictionary/mock_source.go -package=mock_dictionary

// ErrInvalidDictionaryName is returned for a name that is not a plain file name.
var ErrInvalidDictionaryName = errors.New("invalid dictionary name")

// ValidateDictionaryName rejects names that would leave the directory a source reads from.
// Manifests may come from a remote server, so their names are untrusted.
func ValidateDictionaryName(name string) error {
	if name == "" || !fs.ValidPath(name) || !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidDictionaryName, name)
	}
	return nil
}

// Source provides the manifest and the raw word lists it references.
type Source interface {
	ReadManifest(ctx context.Context) ([]byte, error)
	ReadDictionary(ctx context.Context, name string) ([]byte, error)
}

// FSSource reads list.json and <name>.csv from a file system.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source over fsys, e.g. os.DirFS(directory).
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) ReadManifest(ctx context.Context) ([]byte, error) {
	return s.read(ctx, ManifestFileName)
}

func (s *FSSource) ReadDictionary(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateDictionaryName(name); err != nil {
		return nil, err
	}
	return s.read(ctx, name+".csv")
}

func (s *FSSource) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	contents, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadFile(%s) > %w", path, err)
	}
	return contents, nil
}

// HTTPSource fetches the manifest and word lists published under a base URL.
type HTTPSource struct {
	baseURL string
	client  *resty.Client
}

// NewHTTPSource creates a source for files served under baseURL.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  resty.New(),
	}
}

func (s *HTTPSource) ReadManifest(ctx context.Context) ([]byte, error) {
	return s.get(ctx, ManifestFileName)
}

func (s *HTTPSource) ReadDictionary(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateDictionaryName(name); err != nil {
		return nil, err
	}
	return s.get(ctx, url.PathEscape(name)+".csv")
}

func (s *HTTPSource) get(ctx context.Context, path string) ([]byte, error) {
	fileURL := s.baseURL + "/" + path
	res, err := s.client.R().
		SetContext(ctx).
		Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get(%s) > %w", fileURL, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status code: %d", fileURL, res.StatusCode())
	}
	return res.Body(), nil
}
