// Package dictionaries provides the word lists shipped with the binary.
package dictionaries

import "embed"

// FS contains list.json and one CSV file per dictionary.
//
//go:embed list.json *.csv
var FS embed.FS
