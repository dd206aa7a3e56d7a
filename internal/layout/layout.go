// Package layout turns decoded page geometry into heading candidates.
// The scanner itself is decoder-agnostic; pdf.go adapts the actual PDF
// library to the Source interface.
package layout

// Span is one positioned text fragment with its font attributes. X and
// Y are the span origin in top-down page coordinates (origin at the
// page's top-left corner).
type Span struct {
	Text string
	Font string
	Size float64
	Bold bool
	X, Y float64
}

// Line is one horizontal row of spans in left-to-right order. Bottom
// is the line's lowest edge in top-down coordinates, compared against
// the footer boundary.
type Line struct {
	Spans  []Span
	Bottom float64
}

// Page is a decoded page: its height in the same units as the span
// coordinates, and its lines in reading order.
type Page struct {
	Height float64
	Lines  []Line
}

// Source yields decoded pages, 1-based. Implementations sit at the
// boundary to the external decoder; tests feed synthetic pages.
type Source interface {
	NumPages() int
	Page(n int) (Page, error)
}
