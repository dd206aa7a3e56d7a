package parser

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/outliner/internal/outline"
)

// MarkdownParser maps goldmark's heading AST straight onto the
// outline. Markdown has no page geometry, so every entry reports
// page 1 and keeps document order.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	o := &outline.Outline{
		Title:   baseTitle(filename),
		Outline: []outline.Entry{},
	}

	titleTaken := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		headingText := string(heading.Text(src))
		if headingText == "" {
			continue
		}

		// The document's first heading, when it is a top-level one,
		// is the title and never repeats as an outline entry.
		if !titleTaken && heading.Level == 1 {
			o.Title = headingText
			titleTaken = true
			continue
		}
		titleTaken = true

		level, ok := levelFromDepth(heading.Level)
		if !ok {
			continue
		}
		o.Outline = append(o.Outline, outline.Entry{
			Level: level,
			Text:  headingText,
			Page:  1,
		})
	}

	return o, nil
}
