package rank

import (
	"strings"

	"github.com/dgallion1/outliner/internal/sections"
)

// Refined is a condensed excerpt from a ranked section.
type Refined struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	Page        int    `json:"page_number"`
}

const maxRefinedTokens = 120

// Refine condenses the topK ranked sections into short excerpts by
// picking the paragraphs closest to the query.
func Refine(query string, ranked []Ranked, topK int) []Refined {
	if topK > len(ranked) {
		topK = len(ranked)
	}
	queryTokens := tokenize(query)

	out := make([]Refined, 0, topK)
	for _, r := range ranked[:topK] {
		out = append(out, Refined{
			Document:    r.Document,
			RefinedText: bestExcerpt(queryTokens, r.Text()),
			Page:        r.Page,
		})
	}
	return out
}

// bestExcerpt returns the paragraph most similar to the query, trimmed
// to a sentence boundary near the token cap.
func bestExcerpt(queryTokens []string, text string) string {
	paras := sections.SplitParagraphs(text)
	if len(paras) == 0 {
		return strings.TrimSpace(text)
	}

	docs := make([][]string, 0, len(paras)+1)
	for _, p := range paras {
		docs = append(docs, tokenize(p))
	}
	docs = append(docs, queryTokens)
	idf := inverseDocFreq(docs)
	queryVec := tfidf(queryTokens, idf)

	best := 0
	bestScore := -1.0
	for i := range paras {
		score := cosine(tfidf(docs[i], idf), queryVec)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return trimToSentences(paras[best], maxRefinedTokens)
}

// trimToSentences keeps whole sentences until the token budget runs out.
func trimToSentences(text string, budget int) string {
	if sections.EstimateTokens(text) <= budget {
		return text
	}
	var b strings.Builder
	used := 0
	for _, sent := range sections.SplitSentences(text) {
		t := sections.EstimateTokens(sent)
		if used+t > budget && used > 0 {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sent)
		used += t
	}
	return b.String()
}
