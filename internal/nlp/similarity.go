package nlp

// SimilarityCalculator scores how alike two text strings are.
type SimilarityCalculator struct {
	preprocessor *Preprocessor
}

func NewSimilarityCalculator(preprocessor *Preprocessor) *SimilarityCalculator {
	return &SimilarityCalculator{preprocessor: preprocessor}
}

// Similarity returns the Jaccard index of the cleaned token sets of the two
// texts: |A ∩ B| / |A ∪ B|, in [0, 1]. Texts that clean down to nothing score
// zero against everything.
func (s *SimilarityCalculator) Similarity(first, second string) float64 {
	a := tokenSet(s.preprocessor.Tokens(first))
	b := tokenSet(s.preprocessor.Tokens(second))

	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
