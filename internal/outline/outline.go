package outline

import (
	"regexp"
	"strings"
)

// Level is the hierarchy depth of an outline entry.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Candidate is a text run lifted from page layout with its font and
// position metadata, not yet confirmed as a heading. Confidence is
// meaningful only after scoring, Level only after classification.
type Candidate struct {
	Text       string
	Page       int // 1-based
	FontSize   float64
	FontName   string
	Bold       bool
	X, Y       float64 // run origin, page-local, Y grows downward
	Confidence float64
	Level      Level
}

// Entry is one heading in the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the derived structure for one document: a title plus
// headings ordered by (page, vertical position).
type Outline struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText lower-cases and collapses whitespace. Two candidates
// with equal normalized text are the same logical heading; the same
// normalization decides title exclusion.
func NormalizeText(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// Build runs the scorer, the title extractor and the classifier over
// raw layout candidates and assembles the final outline. sourceName is
// the document's filename, used only for the empty-input title
// fallback.
func Build(cands []Candidate, sourceName string) *Outline {
	scored := Score(cands)
	title := ExtractTitle(scored, sourceName)
	entries := Classify(scored, title)
	if entries == nil {
		entries = []Entry{}
	}
	return &Outline{Title: title, Outline: entries}
}
