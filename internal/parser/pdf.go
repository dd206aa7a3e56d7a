package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/outliner/internal/layout"
	"github.com/dgallion1/outliner/internal/outline"
)

// PDFParser runs the heuristic outline engine over page geometry:
// scan positioned runs, score them, extract a title, classify levels.
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	src, release, err := layout.OpenPDF(tmpPath)
	if err != nil {
		return nil, err
	}
	defer release()

	cands, err := layout.Scan(src)
	if err != nil {
		return nil, fmt.Errorf("scan layout: %w", err)
	}

	return outline.Build(cands, filename), nil
}
