// Package rank orders document sections by relevance to a persona and
// its task, using TF-IDF cosine similarity with maximal marginal
// relevance to keep the selection diverse.
package rank

import (
	"math"
	"strings"
	"unicode"

	"github.com/dgallion1/outliner/internal/sections"
)

// Ranked is a section with its selection rank, 1 being most relevant.
type Ranked struct {
	Document string `json:"document"`
	Title    string `json:"section_title"`
	Rank     int    `json:"importance_rank"`
	Page     int    `json:"page_number"`

	text string
}

// Text returns the section body backing this result.
func (r Ranked) Text() string {
	return r.text
}

// Query joins a persona and its task into a single relevance query.
func Query(persona, job string) string {
	return persona + ". Task: " + job
}

// Sections ranks secs against the query and returns the topK most
// relevant, diversified with MMR at the given lambda.
func Sections(query string, secs []sections.Section, topK int, lambda float64) []Ranked {
	if len(secs) == 0 || topK <= 0 {
		return nil
	}

	docs := make([][]string, 0, len(secs)+1)
	for _, s := range secs {
		docs = append(docs, tokenize(s.Title+" "+s.Text))
	}
	docs = append(docs, tokenize(query))

	idf := inverseDocFreq(docs)
	vecs := make([]vector, len(docs))
	for i, d := range docs {
		vecs[i] = tfidf(d, idf)
	}
	queryVec := vecs[len(vecs)-1]
	secVecs := vecs[:len(vecs)-1]

	relevance := make([]float64, len(secVecs))
	for i, v := range secVecs {
		relevance[i] = cosine(v, queryVec)
	}

	picked := mmr(secVecs, relevance, topK, lambda)

	out := make([]Ranked, 0, len(picked))
	for rank, idx := range picked {
		s := secs[idx]
		out = append(out, Ranked{
			Document: s.Document,
			Title:    s.Title,
			Rank:     rank + 1,
			Page:     s.Page,
			text:     s.Text,
		})
	}
	return out
}

// mmr greedily selects up to topK indexes, trading relevance against
// similarity to what is already selected.
func mmr(vecs []vector, relevance []float64, topK int, lambda float64) []int {
	n := len(vecs)
	if topK > n {
		topK = n
	}

	var selected []int
	used := make([]bool, n)
	for len(selected) < topK {
		best := -1
		bestScore := math.Inf(-1)
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			maxSim := 0.0
			for _, j := range selected {
				if sim := cosine(vecs[i], vecs[j]); sim > maxSim {
					maxSim = sim
				}
			}
			score := lambda*relevance[i] - (1-lambda)*maxSim
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		selected = append(selected, best)
	}
	return selected
}

type vector map[string]float64

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

func inverseDocFreq(docs [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, d := range docs {
		seen := make(map[string]bool, len(d))
		for _, tok := range d {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	idf := make(map[string]float64, len(df))
	n := float64(len(docs))
	for tok, count := range df {
		idf[tok] = math.Log((n+1)/(float64(count)+1)) + 1
	}
	return idf
}

func tfidf(tokens []string, idf map[string]float64) vector {
	if len(tokens) == 0 {
		return vector{}
	}
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	v := make(vector, len(tf))
	total := float64(len(tokens))
	for tok, count := range tf {
		v[tok] = (float64(count) / total) * idf[tok]
	}
	return v
}

func cosine(a, b vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for tok, av := range a {
		if bv, ok := b[tok]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
