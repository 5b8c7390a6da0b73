package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ManifestFileName is the name of the manifest inside a source.
const ManifestFileName = "list.json"

// DecodeManifest decodes list.json. Unknown fields are rejected.
func DecodeManifest(data []byte) (*Manifest, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var manifest Manifest
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("json.Decoder.Decode() > %w", err)
	}
	if manifest.Categories == nil {
		manifest.Categories = []Category{}
	}
	return &manifest, nil
}
