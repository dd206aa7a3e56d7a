package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Parser recovers a document outline from raw document bytes. The PDF
// parser is the heuristic engine over page geometry; the other formats
// declare their structure and are mapped directly.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.Outline, error)
}

// SupportedExtensions lists file extensions this service can outline.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
	".txt":  true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle derives the fallback title from a filename: the base name
// without its extension.
func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// levelFromDepth maps a declared heading depth (1-based) onto the
// outline's three levels. Depths beyond 3 report false: the 3-level
// cap applies to every format.
func levelFromDepth(depth int) (outline.Level, bool) {
	switch depth {
	case 1:
		return outline.H1, true
	case 2:
		return outline.H2, true
	case 3:
		return outline.H3, true
	}
	return "", false
}
