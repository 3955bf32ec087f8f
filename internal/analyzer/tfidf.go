package analyzer

import (
	"sort"
)

type tfidfScorer struct{}

// NewTFIDF returns the default term-importance scorer. The document is its
// own single-element corpus, so the smoothed inverse document frequency is
// the same for every term and the ranking reduces to relative term
// frequency, mirroring a single-document TfidfVectorizer fit.
func NewTFIDF() Scorer {
	return &tfidfScorer{}
}

func (s *tfidfScorer) Score(tokens []string) []RankedTerm {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}

	// idf = ln((1+docs)/(1+df)) + 1 with docs = df = 1
	const idf = 1.0

	total := float64(len(tokens))
	terms := make([]RankedTerm, 0, len(counts))
	for term, n := range counts {
		terms = append(terms, RankedTerm{Term: term, Score: float64(n) / total * idf})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Term < terms[j].Term
	})

	return terms
}
