package nlp

import "testing"

func newCalculator() *SimilarityCalculator {
	return NewSimilarityCalculator(NewPreprocessor())
}

func TestSimilarityIdenticalText(t *testing.T) {
	calc := newCalculator()
	if got := calc.Similarity("the quick brown fox", "the quick brown fox"); got != 1.0 {
		t.Fatalf("expected 1.0 for identical text, got %v", got)
	}
}

func TestSimilarityDisjointText(t *testing.T) {
	calc := newCalculator()
	if got := calc.Similarity("quick brown fox", "lazy sleepy dog"); got != 0 {
		t.Fatalf("expected 0 for disjoint text, got %v", got)
	}
}

func TestSimilarityPartialOverlap(t *testing.T) {
	calc := newCalculator()
	got := calc.Similarity("quick brown fox", "quick brown dog")
	// {quick, brown, fox} vs {quick, brown, dog}: 2 shared of 4 total.
	if got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestSimilarityIgnoresStopwordsAndCase(t *testing.T) {
	calc := newCalculator()
	if got := calc.Similarity("The Quick Brown Fox", "a quick brown fox"); got != 1.0 {
		t.Fatalf("expected stopwords and case ignored, got %v", got)
	}
}

func TestSimilarityEmptyText(t *testing.T) {
	calc := newCalculator()
	if got := calc.Similarity("", "quick brown fox"); got != 0 {
		t.Fatalf("expected 0 against empty text, got %v", got)
	}
	if got := calc.Similarity("the and or", "the and or"); got != 0 {
		t.Fatalf("expected 0 when both clean to nothing, got %v", got)
	}
}
