// Package sections assembles page-level text sections from a document,
// titled by the nearest preceding outline heading. Sections feed the
// persona ranking layer.
package sections

import (
	"fmt"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
	"github.com/dgallion1/outliner/internal/outline"
)

// Section is one page's worth of text under its governing heading.
type Section struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
	Title    string `json:"section_title"`
	Text     string `json:"text"`
}

// FromPDF opens a PDF and returns one section per non-empty page,
// capped at the page budget used for outline extraction.
func FromPDF(path, docName string) ([]Section, error) {
	src, release, err := layout.OpenPDF(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer release()

	cands, err := layout.Scan(src)
	if err != nil {
		return nil, fmt.Errorf("scan layout: %w", err)
	}
	o := outline.Build(cands, docName)

	total := src.NumPages()
	if total > layout.MaxPages {
		total = layout.MaxPages
	}
	pageTexts := make([]string, total)
	for i := 0; i < total; i++ {
		pageTexts[i] = src.PlainText(i + 1)
	}
	return Assemble(docName, o, pageTexts), nil
}

// Assemble pairs page texts (index 0 is page 1) with section titles
// carried forward from the outline. Blank pages are dropped.
func Assemble(docName string, o *outline.Outline, pageTexts []string) []Section {
	var out []Section
	for i, text := range pageTexts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		page := i + 1
		out = append(out, Section{
			Document: docName,
			Page:     page,
			Title:    titleForPage(o, page),
			Text:     text,
		})
	}
	return out
}

// titleForPage returns the last outline heading on or before the page,
// falling back to the document title.
func titleForPage(o *outline.Outline, page int) string {
	title := o.Title
	for _, e := range o.Outline {
		if e.Page > page {
			break
		}
		title = e.Text
	}
	return title
}
