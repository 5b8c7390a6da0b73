package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSource(t *testing.T) {
	source := NewFSSource(fstest.MapFS{
		"list.json": {Data: []byte(`{"categories":[]}`)},
		"aws.csv":   {Data: []byte("EC2,いーしーつー\n")},
	})
	ctx := context.Background()

	manifest, err := source.ReadManifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"categories":[]}`, string(manifest))

	contents, err := source.ReadDictionary(ctx, "aws")
	require.NoError(t, err)
	assert.Equal(t, "EC2,いーしーつー\n", string(contents))

	_, err = source.ReadDictionary(ctx, "missing")
	assert.Error(t, err)

	_, err = source.ReadDictionary(ctx, "../list")
	assert.ErrorIs(t, err, ErrInvalidDictionaryName)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = source.ReadManifest(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dictionaries/list.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"categories":[]}`))
		case "/dictionaries/aws.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("EC2,いーしーつー\n"))
		case "/dictionaries/cloud native.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("Helm,へるむ\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	tests := []struct {
		name    string
		read    func(s *HTTPSource) ([]byte, error)
		want    string
		wantErr bool
		wantIs  error
	}{
		{
			name: "manifest",
			read: func(s *HTTPSource) ([]byte, error) { return s.ReadManifest(context.Background()) },
			want: `{"categories":[]}`,
		},
		{
			name: "word list",
			read: func(s *HTTPSource) ([]byte, error) { return s.ReadDictionary(context.Background(), "aws") },
			want: "EC2,いーしーつー\n",
		},
		{
			name: "name is escaped in the URL",
			read: func(s *HTTPSource) ([]byte, error) { return s.ReadDictionary(context.Background(), "cloud native") },
			want: "Helm,へるむ\n",
		},
		{
			name:    "name leaving the base URL",
			read:    func(s *HTTPSource) ([]byte, error) { return s.ReadDictionary(context.Background(), "../secret") },
			wantErr: true,
			wantIs:  ErrInvalidDictionaryName,
		},
		{
			name:    "missing word list",
			read:    func(s *HTTPSource) ([]byte, error) { return s.ReadDictionary(context.Background(), "gcp") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewHTTPSource(server.URL + "/dictionaries/")
			got, err := tt.read(source)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
				return
			}
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "status code: 404")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
