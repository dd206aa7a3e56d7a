package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/outliner/internal/outline"
)

const (
	// MaxPages caps per-document work regardless of the document's
	// true page count. Pages beyond the cap are silently ignored.
	MaxPages = 50

	// footerFraction of page height marks the footer exclusion
	// boundary; lines whose bottom edge falls below it are skipped.
	footerFraction = 0.90

	// minRunLength: runs whose trimmed text is this short or shorter
	// are never headings and are discarded at extraction time.
	minRunLength = 3
)

// Scan walks at most MaxPages pages of src and returns heading
// candidates in scan order (page, then position). Within a line,
// consecutive spans sharing an identical font size form one run; a
// size change ends the run immediately. Each surviving run becomes one
// candidate with the attributes of its first span and the concatenated
// text of all its spans.
func Scan(src Source) ([]outline.Candidate, error) {
	pages := src.NumPages()
	if pages > MaxPages {
		pages = MaxPages
	}

	var cands []outline.Candidate
	for n := 1; n <= pages; n++ {
		page, err := src.Page(n)
		if err != nil {
			return nil, fmt.Errorf("decode page %d: %w", n, err)
		}
		boundary := page.Height * footerFraction
		for _, line := range page.Lines {
			if line.Bottom > boundary {
				continue
			}
			cands = appendLineRuns(cands, line.Spans, n)
		}
	}
	return cands, nil
}

// appendLineRuns splits a line's spans into maximal same-size runs and
// appends one candidate per admissible run.
func appendLineRuns(cands []outline.Candidate, spans []Span, pageNum int) []outline.Candidate {
	var run []Span

	flush := func() {
		if len(run) == 0 {
			return
		}
		var b strings.Builder
		for _, s := range run {
			b.WriteString(s.Text)
		}
		text := strings.TrimSpace(b.String())
		if utf8.RuneCountInString(text) > minRunLength {
			first := run[0]
			cands = append(cands, outline.Candidate{
				Text:     text,
				Page:     pageNum,
				FontSize: first.Size,
				FontName: first.Font,
				Bold:     first.Bold,
				X:        first.X,
				Y:        first.Y,
			})
		}
		run = run[:0]
	}

	for _, s := range spans {
		if len(run) > 0 && s.Size != run[len(run)-1].Size {
			flush()
		}
		run = append(run, s)
	}
	flush()

	return cands
}
