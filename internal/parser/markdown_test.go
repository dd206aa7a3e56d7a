package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestMarkdownParser_HeadingsBecomeOutline(t *testing.T) {
	input := `# User Guide

intro paragraph

## Installation

steps

### From Source

more steps

## Configuration
`
	p := &MarkdownParser{}
	o, err := p.Parse(strings.NewReader(input), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Title != "User Guide" {
		t.Errorf("expected title from first h1, got %q", o.Title)
	}
	want := []outline.Entry{
		{Level: outline.H2, Text: "Installation", Page: 1},
		{Level: outline.H3, Text: "From Source", Page: 1},
		{Level: outline.H2, Text: "Configuration", Page: 1},
	}
	if len(o.Outline) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(o.Outline))
	}
	for i, w := range want {
		if o.Outline[i] != w {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, o.Outline[i])
		}
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	p := &MarkdownParser{}
	o, err := p.Parse(strings.NewReader("just a paragraph\n\nand another"), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Title != "notes" {
		t.Errorf("expected filename-derived title, got %q", o.Title)
	}
	if len(o.Outline) != 0 {
		t.Errorf("expected empty outline, got %d entries", len(o.Outline))
	}
}

func TestMarkdownParser_SecondH1IsAnEntry(t *testing.T) {
	input := "# Title\n\n# Another Top Section\n"
	p := &MarkdownParser{}
	o, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Title != "Title" {
		t.Errorf("expected %q, got %q", "Title", o.Title)
	}
	if len(o.Outline) != 1 || o.Outline[0].Level != outline.H1 || o.Outline[0].Text != "Another Top Section" {
		t.Errorf("expected the second h1 as an H1 entry, got %+v", o.Outline)
	}
}

func TestMarkdownParser_DeepHeadingsIgnored(t *testing.T) {
	input := "# Title\n\n#### Too Deep\n\n## Kept\n"
	p := &MarkdownParser{}
	o, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Outline) != 1 || o.Outline[0].Text != "Kept" {
		t.Errorf("expected only the h2, got %+v", o.Outline)
	}
}

func TestMarkdownParser_LeadingH2DoesNotBecomeTitle(t *testing.T) {
	input := "## Not A Title\n"
	p := &MarkdownParser{}
	o, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Title != "doc" {
		t.Errorf("expected filename title, got %q", o.Title)
	}
	if len(o.Outline) != 1 || o.Outline[0].Level != outline.H2 {
		t.Errorf("expected one H2 entry, got %+v", o.Outline)
	}
}
