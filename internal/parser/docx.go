package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/outliner/internal/outline"
)

// DOCXParser maps Word heading styles (Heading1–Heading3) onto the
// outline.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	o := &outline.Outline{
		Title:   baseTitle(filename),
		Outline: []outline.Entry{},
	}

	titleTaken := false
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		depth := docxHeadingDepth(para)
		if depth == 0 {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		if !titleTaken && depth == 1 {
			o.Title = text
			titleTaken = true
			continue
		}
		titleTaken = true

		level, ok := levelFromDepth(depth)
		if !ok {
			continue
		}
		o.Outline = append(o.Outline, outline.Entry{
			Level: level,
			Text:  text,
			Page:  1,
		})
	}

	return o, nil
}

func docxHeadingDepth(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for depth := 1; depth <= 6; depth++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", depth)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", depth)) {
			return depth
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
