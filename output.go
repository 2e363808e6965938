package asciify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// SavePath returns the file rendered rows of source are saved to. An empty
// path replaces the extension of source with ".txt"; anything else is used
// verbatim.
func SavePath(source, path string) string {
	if path != "" {
		return path
	}
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".txt"
}

// WriteFile saves rows to path as UTF-8, each followed by LineSeparator.
// Nothing is written unless every row has been encoded.
func WriteFile(path string, rows []string) error {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, LineSeparator).Encode(rows); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
