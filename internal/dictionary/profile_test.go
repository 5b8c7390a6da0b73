package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

func TestProfile_Apply(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    map[string][]bool
		wantAWS []string
	}{
		{
			name:    "empty profile selects everything",
			profile: Profile{},
			want: map[string][]bool{
				"aws": {true, true, true},
				"gcp": {true, true},
			},
		},
		{
			name: "start from none and pick a dictionary and an entry",
			profile: Profile{
				Default:      DefaultSelectionNone,
				Dictionaries: []DictionaryProfile{{Name: "gcp", Selected: true}},
				Entries:      []EntryProfile{{Dictionary: "aws", ID: "aws-2", Selected: boolPtr(true)}},
			},
			want: map[string][]bool{
				"aws": {false, false, true},
				"gcp": {true, true},
			},
		},
		{
			name: "deselect an entry and override a reading",
			profile: Profile{
				Default: DefaultSelectionAll,
				Entries: []EntryProfile{
					{Dictionary: "aws", ID: "aws-0", Selected: boolPtr(false)},
					{Dictionary: "aws", ID: "aws-1", Reading: stringPtr("えすさん")},
					{Dictionary: "aws", ID: "aws-2", Selected: boolPtr(true)},
				},
			},
			want: map[string][]bool{
				"aws": {false, true, true},
				"gcp": {true, true},
			},
			wantAWS: []string{"いーしーつー", "えすさん", "らむだ"},
		},
		{
			name: "unknown names are ignored",
			profile: Profile{
				Dictionaries: []DictionaryProfile{{Name: "azure", Selected: false}},
				Entries:      []EntryProfile{{Dictionary: "aws", ID: "aws-9", Selected: boolPtr(false), Reading: stringPtr("x")}},
			},
			want: map[string][]bool{
				"aws": {true, true, true},
				"gcp": {true, true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.Apply(newTestSelection().DeselectAll().ToggleEntry("gcp", "gcp-0"))
			for name, flags := range tt.want {
				assert.Equal(t, flags, selectedFlags(t, got, name), name)
			}
			if tt.wantAWS != nil {
				d, _ := got.Dictionary("aws")
				readings := make([]string, len(d.Entries))
				for i, e := range d.Entries {
					readings[i] = e.Reading
				}
				assert.Equal(t, tt.wantAWS, readings)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Profile
		wantErr error
	}{
		{
			name: "valid profile",
			content: `default: none
dictionaries:
  - name: aws
    selected: true
entries:
  - dictionary: aws
    id: aws-1
    selected: false
    reading: えすさん
`,
			want: &Profile{
				Default:      DefaultSelectionNone,
				Dictionaries: []DictionaryProfile{{Name: "aws", Selected: true}},
				Entries: []EntryProfile{{
					Dictionary: "aws",
					ID:         "aws-1",
					Selected:   boolPtr(false),
					Reading:    stringPtr("えすさん"),
				}},
			},
		},
		{
			name:    "unknown default",
			content: "default: some\n",
			wantErr: ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := LoadProfile(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}
