package outline

import (
	"math"
	"unicode/utf8"
)

const (
	// ConfidenceThreshold is the admission bar into the outline
	// pipeline: candidates scoring below it are noise.
	ConfidenceThreshold = 0.1

	// fallbackMeanSize stands in for the document mean when no
	// candidates were extracted at all.
	fallbackMeanSize = 11.0
)

// MeanFontSize is the arithmetic mean font size over all candidates,
// the only global statistic the scorer uses. It is recomputed from
// scratch per document.
func MeanFontSize(cands []Candidate) float64 {
	if len(cands) == 0 {
		return fallbackMeanSize
	}
	var sum float64
	for _, c := range cands {
		sum += c.FontSize
	}
	return sum / float64(len(cands))
}

// Dedupe drops candidates whose normalized text has already been seen,
// keeping the first occurrence in scan order.
func Dedupe(cands []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(cands))
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		key := NormalizeText(c.Text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Confidence sums the independent scoring contributions for one
// candidate against the document mean font size, capped at 1.
func Confidence(c Candidate, meanSize float64) float64 {
	var score float64

	switch {
	case c.FontSize > meanSize*1.2:
		score += 0.3
	case c.FontSize > meanSize*1.1:
		score += 0.2
	}

	if c.Bold && c.FontSize > meanSize*1.1 {
		score += 0.2
	}

	if _, ok := MatchHeadingIdiom(c.Text); ok {
		score += 0.4
	}

	switch {
	case isUpperCase(c.Text) && utf8.RuneCountInString(c.Text) > 3:
		score += 0.2
	case isTitleCase(c.Text):
		score += 0.1
	}

	return math.Min(score, 1.0)
}

// Score deduplicates the candidate sequence, attaches confidence
// scores and drops everything below the admission threshold. The
// survivors keep scan order.
func Score(cands []Candidate) []Candidate {
	mean := MeanFontSize(cands)
	unique := Dedupe(cands)

	scored := make([]Candidate, 0, len(unique))
	for _, c := range unique {
		conf := Confidence(c, mean)
		if conf < ConfidenceThreshold {
			continue
		}
		c.Confidence = conf
		scored = append(scored, c)
	}
	return scored
}
