package outline

import "testing"

func TestClassify_TitleExcluded(t *testing.T) {
	cands := []Candidate{
		{Text: "Project  Charter", Page: 1, FontSize: 24, Y: 50},
		{Text: "1. Introduction", Page: 1, FontSize: 16, Y: 120},
	}
	entries := Classify(cands, "project charter")
	for _, e := range entries {
		if NormalizeText(e.Text) == "project charter" {
			t.Errorf("title leaked into outline: %+v", e)
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestClassify_EmptyAfterTitleExclusion(t *testing.T) {
	// One large bold line becomes the title, leaving an empty outline.
	cands := []Candidate{
		{Text: "Project Charter", Page: 1, FontName: "Helvetica-Bold", FontSize: 24, Bold: true},
	}
	entries := Classify(cands, "Project Charter")
	if len(entries) != 0 {
		t.Fatalf("expected empty outline, got %d entries", len(entries))
	}
}

func TestClassify_NumberingPrecedence(t *testing.T) {
	// Numbering prefixes decide levels before size tiering gets a say.
	cands := []Candidate{
		{Text: "1. Introduction", Page: 1, FontSize: 16, Y: 100},
		{Text: "1.1 Background", Page: 1, FontSize: 13, Y: 200},
		{Text: "2. Methods", Page: 2, FontSize: 16, Y: 80},
	}
	entries := Classify(cands, "report")
	want := []Entry{
		{Level: H1, Text: "1. Introduction", Page: 1},
		{Level: H2, Text: "1.1 Background", Page: 1},
		{Level: H1, Text: "2. Methods", Page: 2},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, entries[i])
		}
	}
}

func TestClassify_NumberingBeatsLargestTier(t *testing.T) {
	// "2.1 Scope" sits in the document's largest tier but is still H2.
	cands := []Candidate{
		{Text: "2.1 Scope", Page: 1, FontSize: 18, Y: 100},
		{Text: "Unnumbered Heading", Page: 1, FontSize: 18, Y: 200},
		{Text: "Smaller Heading", Page: 2, FontSize: 12, Y: 50},
	}
	entries := Classify(cands, "doc")
	if entries[0].Text != "2.1 Scope" || entries[0].Level != H2 {
		t.Errorf("expected 2.1 Scope as H2, got %+v", entries[0])
	}
	if entries[1].Level != H1 {
		t.Errorf("expected largest-tier heading as H1, got %+v", entries[1])
	}
	if entries[2].Level != H2 {
		t.Errorf("expected second-tier heading as H2, got %+v", entries[2])
	}
}

func TestClassify_NestedNumbering(t *testing.T) {
	cands := []Candidate{
		{Text: "1. Top", Page: 1, FontSize: 12, Y: 10},
		{Text: "1.2 Middle", Page: 1, FontSize: 12, Y: 20},
		{Text: "1.2.3 Deep", Page: 1, FontSize: 12, Y: 30},
	}
	entries := Classify(cands, "doc")
	wantLevels := []Level{H1, H2, H3}
	for i, lv := range wantLevels {
		if entries[i].Level != lv {
			t.Errorf("entry %d: expected %s, got %s", i, lv, entries[i].Level)
		}
	}
}

func TestClassify_FlatDocumentNeverH3(t *testing.T) {
	cands := []Candidate{
		{Text: "OVERVIEW AND GOALS", Page: 1, FontSize: 12, Y: 10},
		{Text: "Chapter Two", Page: 2, FontSize: 12, Y: 10},
		{Text: "Quiet Interlude", Page: 3, FontSize: 12, Y: 10},
	}
	entries := Classify(cands, "doc")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Level != H1 {
		t.Errorf("expected upper-case heading as H1, got %s", entries[0].Level)
	}
	if entries[1].Level != H1 {
		t.Errorf("expected Chapter-prefixed heading as H1, got %s", entries[1].Level)
	}
	if entries[2].Level != H2 {
		t.Errorf("expected plain flat heading as H2, got %s", entries[2].Level)
	}
	for _, e := range entries {
		if e.Level == H3 {
			t.Errorf("flat document produced an H3: %+v", e)
		}
	}
}

func TestClassify_SizeTiering(t *testing.T) {
	// Three tiers and a fourth smaller one: everything beyond the
	// second tier is H3.
	cands := []Candidate{
		{Text: "Biggest Heading", Page: 1, FontSize: 20, Y: 10},
		{Text: "Second Heading", Page: 1, FontSize: 16, Y: 20},
		{Text: "Third Heading", Page: 1, FontSize: 13, Y: 30},
		{Text: "Fourth Heading", Page: 1, FontSize: 11, Y: 40},
	}
	entries := Classify(cands, "doc")
	wantLevels := []Level{H1, H2, H3, H3}
	for i, lv := range wantLevels {
		if entries[i].Level != lv {
			t.Errorf("entry %d (%s): expected %s, got %s", i, entries[i].Text, lv, entries[i].Level)
		}
	}
}

func TestClassify_OrderedByPageThenPosition(t *testing.T) {
	// Input arrives in arbitrary order; output is (page, Y) sorted.
	cands := []Candidate{
		{Text: "Later Heading", Page: 2, FontSize: 14, Y: 300},
		{Text: "Early Heading", Page: 1, FontSize: 14, Y: 400},
		{Text: "Top Of Page Two", Page: 2, FontSize: 14, Y: 40},
		{Text: "Top Of Page One", Page: 1, FontSize: 14, Y: 30},
	}
	entries := Classify(cands, "doc")
	want := []string{"Top Of Page One", "Early Heading", "Top Of Page Two", "Later Heading"}
	for i, w := range want {
		if entries[i].Text != w {
			t.Errorf("position %d: expected %q, got %q", i, w, entries[i].Text)
		}
	}
}

func TestBuild_TitleOnlyDocument(t *testing.T) {
	cands := []Candidate{
		{Text: "Project Charter", Page: 1, FontName: "Helvetica-Bold", FontSize: 24, Bold: true, Y: 100},
		{Text: "plain body text below threshold", Page: 2, FontSize: 12, Y: 200},
	}
	o := Build(cands, "charter.pdf")
	if o.Title != "Project Charter" {
		t.Errorf("expected title %q, got %q", "Project Charter", o.Title)
	}
	if len(o.Outline) != 0 {
		t.Errorf("expected empty outline, got %d entries", len(o.Outline))
	}
}

func TestBuild_NoCandidates(t *testing.T) {
	o := Build(nil, "quarterly-summary.pdf")
	if o.Title != "quarterly-summary" {
		t.Errorf("expected filename-derived title, got %q", o.Title)
	}
	if o.Outline == nil || len(o.Outline) != 0 {
		t.Errorf("expected empty (non-nil) outline, got %#v", o.Outline)
	}
}
