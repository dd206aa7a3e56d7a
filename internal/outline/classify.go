package outline

import "sort"

// Classify assigns a level to every scored candidate except the title
// and returns the final outline entries ordered by (page ascending,
// vertical position ascending). Numbering patterns take precedence
// over font-size tiering; tiers beyond the second all map to H3.
func Classify(cands []Candidate, title string) []Entry {
	normTitle := NormalizeText(title)
	headings := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if NormalizeText(c.Text) == normTitle {
			continue
		}
		headings = append(headings, c)
	}
	if len(headings) == 0 {
		return nil
	}

	// Descending size while tiering; the output ordering is re-imposed
	// explicitly below, so this ordering is internal only.
	sort.SliceStable(headings, func(i, j int) bool {
		a, b := headings[i], headings[j]
		if a.FontSize != b.FontSize {
			return a.FontSize > b.FontSize
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Y < b.Y
	})

	tiers := sizeTiers(headings)
	for i := range headings {
		headings[i].Level = levelFor(headings[i], tiers)
	}

	// Final ordering: page, then vertical position.
	sort.SliceStable(headings, func(i, j int) bool {
		a, b := headings[i], headings[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Y < b.Y
	})

	entries := make([]Entry, len(headings))
	for i, h := range headings {
		entries[i] = Entry{Level: h.Level, Text: h.Text, Page: h.Page}
	}
	return entries
}

// sizeTiers returns the distinct font sizes among headings, largest
// first.
func sizeTiers(headings []Candidate) []float64 {
	seen := make(map[float64]struct{}, len(headings))
	var tiers []float64
	for _, h := range headings {
		if _, ok := seen[h.FontSize]; ok {
			continue
		}
		seen[h.FontSize] = struct{}{}
		tiers = append(tiers, h.FontSize)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(tiers)))
	return tiers
}

// levelFor applies the classification precedence for one candidate:
// numbered-outline prefixes first, then content cues when every
// heading shares one size, then size tiering.
func levelFor(c Candidate, tiers []float64) Level {
	switch {
	case h1Numbering.MatchString(c.Text):
		return H1
	case h2Numbering.MatchString(c.Text):
		return H2
	case h3Numbering.MatchString(c.Text):
		return H3
	}

	if len(tiers) == 1 {
		// Visually flat document. H3 is unreachable here.
		if isUpperCase(c.Text) || labelPrefix.MatchString(c.Text) {
			return H1
		}
		return H2
	}

	switch {
	case c.FontSize >= tiers[0]:
		return H1
	case c.FontSize >= tiers[1]:
		return H2
	default:
		return H3
	}
}
