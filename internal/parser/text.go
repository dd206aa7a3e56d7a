package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// textFontSize is the synthetic uniform size attached to plain-text
// candidates. With a single size tier the classifier falls back to
// content cues, which is exactly right for text files.
const textFontSize = 12.0

// TextParser applies the heading-idiom patterns line by line and runs
// the scorer/classifier over the matches. Plain text carries no visual
// title, so the filename is the title. Form feeds separate pages.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cands []outline.Candidate
	page := 1
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		for strings.Contains(line, "\f") {
			page++
			lineNum = 0
			line = strings.Replace(line, "\f", "", 1)
		}
		lineNum++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, ok := outline.MatchHeadingIdiom(trimmed); !ok {
			continue
		}
		cands = append(cands, outline.Candidate{
			Text:     trimmed,
			Page:     page,
			FontSize: textFontSize,
			FontName: "text",
			Y:        float64(lineNum),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	title := baseTitle(filename)
	scored := outline.Score(cands)
	entries := outline.Classify(scored, title)
	if entries == nil {
		entries = []outline.Entry{}
	}
	return &outline.Outline{Title: title, Outline: entries}, nil
}
