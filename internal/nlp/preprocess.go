// Package nlp cleans document text and scores lexical similarity between two
// documents as the Jaccard overlap of their cleaned token sets.
package nlp

import (
	"strings"
	"unicode"
)

// English stopwords filtered out before comparison.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"myself": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {},
	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "very": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "why": {}, "will": {}, "with": {}, "you": {}, "your": {},
	"yours": {}, "yourself": {}, "yourselves": {},
}

// Preprocessor cleans raw document text for comparison.
type Preprocessor struct{}

func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Clean lowercases the text, strips punctuation, drops tokens containing
// digits, removes stopwords, stems each remaining token, and collapses
// whitespace.
func (p *Preprocessor) Clean(text string) string {
	return strings.Join(p.Tokens(text), " ")
}

// Tokens returns the cleaned token stream of the text.
func (p *Preprocessor) Tokens(text string) []string {
	text = strings.ToLower(text)
	text = stripPunctuation(text)

	var tokens []string
	for _, word := range strings.Fields(text) {
		if word == "" || containsDigit(word) {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		tokens = append(tokens, stem(word))
	}
	return tokens
}

func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsDigit(word string) bool {
	return strings.ContainsFunc(word, unicode.IsDigit)
}

// suffixes stripped by the stemmer, longest first.
var stemSuffixes = []string{"ational", "iveness", "fulness", "ization", "ations", "ement", "ing", "edly", "ed", "ies", "ly", "es", "s"}

// stem applies a light suffix-stripping stem so that inflected forms of the
// same word compare equal ("running" -> "runn" -> matched by "runns" etc.).
// It is deliberately simpler than a full Porter stemmer; similarity scoring
// only needs both sides reduced the same way.
func stem(word string) string {
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(word, suffix) && len(word)-len(suffix) >= 3 {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}
