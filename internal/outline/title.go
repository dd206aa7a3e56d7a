package outline

import (
	"path/filepath"
	"strings"
)

// ExtractTitle derives the document title from the scored candidate
// sequence. The first candidate seeds the title; subsequent candidates
// with identical font name, font size and confidence are continuation
// fragments of the same visual title and are space-joined onto it. The
// merge stops at the first candidate that differs in any attribute.
// With no candidates the source's base filename, extension stripped,
// is the title.
func ExtractTitle(cands []Candidate, sourcePath string) string {
	if len(cands) == 0 {
		base := filepath.Base(sourcePath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}

	seed := cands[0]
	parts := []string{seed.Text}
	for _, c := range cands[1:] {
		if c.FontName != seed.FontName || c.FontSize != seed.FontSize || c.Confidence != seed.Confidence {
			break
		}
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}
