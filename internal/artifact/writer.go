// Package artifact persists outline results, one JSON file per source
// document. It is a pure side-effecting boundary: no outline logic
// lives here and write errors are the caller's to handle.
package artifact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"encoding/json"

	"github.com/dgallion1/outliner/internal/outline"
)

// Writer writes outline artifacts into a directory, keyed by the
// source document's base name.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes o as indented UTF-8 JSON to <dir>/<base>.json and
// returns the artifact path. The output directory is created on
// demand; an existing artifact for the same base name is overwritten.
func (w *Writer) Write(base string, o *outline.Outline) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	outline.Sanitize(o)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return "", fmt.Errorf("marshal outline: %w", err)
	}

	path := filepath.Join(w.dir, base+".json")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}
