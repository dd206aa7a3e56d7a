package layout

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

const (
	// rowTolerance in points when regrouping glyphs into lines. The
	// decoder yields one Text element per glyph run, so rows are
	// reassembled by baseline proximity.
	rowTolerance = 2.0

	// defaultPageHeight (US Letter, points) when a page carries no
	// usable MediaBox.
	defaultPageHeight = 792.0
)

// PDFSource adapts a ledongthuc reader to the scanner's Source. It
// holds an open document handle; the release func returned by OpenPDF
// must be called when the document's processing pass ends.
type PDFSource struct {
	reader *pdflib.Reader
}

// OpenPDF opens the document at path. Decoding failures here are
// document-fatal: no candidates are emitted for an unreadable file.
func OpenPDF(path string) (*PDFSource, func() error, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open pdf: %w", err)
	}
	return &PDFSource{reader: reader}, f.Close, nil
}

func (s *PDFSource) NumPages() int { return s.reader.NumPage() }

// Page decodes page n into lines of spans. Glyphs are grouped into
// rows by baseline proximity, ordered left to right, and merged into
// spans wherever font name and size stay constant. Y is flipped from
// the PDF's bottom-up coordinates into top-down page space so footer
// checks and vertical ordering share one frame.
func (s *PDFSource) Page(n int) (Page, error) {
	page := s.reader.Page(n)
	if page.V.IsNull() {
		return Page{Height: defaultPageHeight}, nil
	}
	height := pageHeight(page)

	content := page.Content()
	texts := make([]pdflib.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" || t.S == "\n" {
			continue
		}
		texts = append(texts, t)
	}
	if len(texts) == 0 {
		return Page{Height: height}, nil
	}

	// Top of page first, then left to right within a row.
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var lines []Line
	rowStart := 0
	for i := 1; i <= len(texts); i++ {
		if i < len(texts) && texts[rowStart].Y-texts[i].Y <= rowTolerance {
			continue
		}
		lines = append(lines, buildLine(texts[rowStart:i], height))
		rowStart = i
	}

	return Page{Height: height, Lines: lines}, nil
}

// buildLine merges a row of glyphs into spans. A new span starts when
// the font name or size changes; the scanner later regroups by size
// alone, so span boundaries only need to be at least that fine.
func buildLine(row []pdflib.Text, height float64) Line {
	var line Line
	spanStart := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].Font == row[spanStart].Font && row[i].FontSize == row[spanStart].FontSize {
			continue
		}
		var b strings.Builder
		for _, g := range row[spanStart:i] {
			b.WriteString(g.S)
		}
		first := row[spanStart]
		line.Spans = append(line.Spans, Span{
			Text: b.String(),
			Font: first.Font,
			Size: first.FontSize,
			Bold: fontIsBold(first.Font),
			X:    first.X,
			Y:    height - first.Y,
		})
		spanStart = i
	}

	// The row baseline is the line's bottom edge in top-down space.
	line.Bottom = height - row[0].Y
	for _, g := range row {
		if height-g.Y > line.Bottom {
			line.Bottom = height - g.Y
		}
	}
	return line
}

// fontIsBold derives boldness from the font name; the decoder exposes
// no style-flag word, so the name marker is the only signal here.
func fontIsBold(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}

// pageHeight reads the page's MediaBox height, walking up the page
// tree for inherited values the way PDF attribute inheritance works.
func pageHeight(p pdflib.Page) float64 {
	box := p.V.Key("MediaBox")
	for parent := p.V.Key("Parent"); box.IsNull() && !parent.IsNull(); parent = parent.Key("Parent") {
		box = parent.Key("MediaBox")
	}
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}

// PlainText returns the plain text of page n, used by the section
// assembly path. Pages that fail to decode yield empty text rather
// than failing the document.
func (s *PDFSource) PlainText(n int) string {
	page := s.reader.Page(n)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
