package output

import (
	"io"

	json "github.com/goccy/go-json"
)

// JSONFormat outputs v as indented JSON followed by a newline.
func JSONFormat(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
