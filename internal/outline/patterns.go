package outline

import (
	"regexp"
	"unicode"
)

// Heading idioms tried in fixed priority order. Each is an independent
// predicate; during scoring at most one contributes.
type headingPattern struct {
	name string
	re   *regexp.Regexp
}

var headingPatterns = []headingPattern{
	{"numbered-h1", regexp.MustCompile(`^[0-9]+\.\s+[A-Z][A-Za-z\s]+$`)},        // 1. Introduction
	{"numbered-h2", regexp.MustCompile(`^[0-9]+\.[0-9]+\s+[A-Z][A-Za-z\s]+$`)},  // 1.1 Overview
	{"numbered-h3", regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+\s+[A-Z][A-Za-z\s]+$`)}, // 1.1.1 Details
	{"all-caps", regexp.MustCompile(`^[A-Z][A-Z\s]+$`)},                         // CHAPTER TITLE
	{"labeled", regexp.MustCompile(`^(Section|Chapter|Part)\s+[A-Z\d]+[:.\s-]+.+$`)}, // Chapter IV: Title
}

// MatchHeadingIdiom reports whether text matches one of the known
// heading idioms, and which one matched first.
func MatchHeadingIdiom(text string) (string, bool) {
	for _, p := range headingPatterns {
		if p.re.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}

// Numbered-outline prefixes used by the classifier. These only look at
// the start of the text, unlike the scoring idioms above.
var (
	h1Numbering = regexp.MustCompile(`^[0-9]+\.\s+`)
	h2Numbering = regexp.MustCompile(`^[0-9]+\.[0-9]+\s+`)
	h3Numbering = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+\s+`)
	labelPrefix = regexp.MustCompile(`(?i)^(chapter|section|part)`)
)

// isUpperCase reports whether s has at least one cased rune and no
// lowercase runes.
func isUpperCase(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitleCase reports whether every cased run in s starts with exactly
// one uppercase rune followed only by lowercase.
func isTitleCase(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
