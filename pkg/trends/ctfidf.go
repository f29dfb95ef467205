package trends

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-zA-ZÀ-ÿ][a-zA-ZÀ-ÿ0-9'-]{2,}`)

// stopwords covers the high-frequency function words that would otherwise
// dominate every cluster's term list.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "with": {}, "this": {},
	"are": {}, "was": {}, "has": {}, "have": {}, "from": {}, "its": {},
	"but": {}, "not": {}, "you": {}, "all": {}, "can": {}, "will": {},
	"their": {}, "they": {}, "what": {}, "when": {}, "how": {}, "more": {},
	"about": {}, "which": {}, "been": {}, "were": {}, "also": {}, "into": {},
	"than": {}, "other": {}, "some": {}, "our": {}, "out": {}, "who": {},
	"les": {}, "des": {}, "une": {}, "dans": {}, "pour": {}, "est": {},
	"sur": {}, "avec": {}, "par": {}, "plus": {}, "son": {}, "ses": {},
	"aux": {}, "ces": {}, "mais": {}, "comme": {}, "tout": {}, "nous": {},
}

// TermWeight is one weighted term of a cluster.
type TermWeight struct {
	Term   string
	Weight float64
}

// TopTermsPerCluster computes class-based TF-IDF over the joined document
// texts of each cluster and returns each cluster's top-K terms by weight.
// The weight of term t in class c is tf(t,c) * log(1 + A/f(t)), where A is
// the average class token count and f(t) the corpus frequency of t.
func TopTermsPerCluster(texts []string, labels []int, topK int) map[int][]TermWeight {
	classTokens := map[int]map[string]int{}
	corpusFreq := map[string]int{}
	classTotal := map[int]int{}

	for i, text := range texts {
		label := labels[i]
		if label == Noise {
			continue
		}
		if classTokens[label] == nil {
			classTokens[label] = map[string]int{}
		}
		for _, token := range Tokenize(text) {
			classTokens[label][token]++
			corpusFreq[token]++
			classTotal[label]++
		}
	}
	if len(classTokens) == 0 {
		return nil
	}

	var totalTokens int
	for _, t := range classTotal {
		totalTokens += t
	}
	avgClassTokens := float64(totalTokens) / float64(len(classTokens))

	result := make(map[int][]TermWeight, len(classTokens))
	for label, tokens := range classTokens {
		weights := make([]TermWeight, 0, len(tokens))
		for term, tf := range tokens {
			idf := math.Log(1 + avgClassTokens/float64(corpusFreq[term]))
			weights = append(weights, TermWeight{Term: term, Weight: float64(tf) * idf})
		}
		sort.Slice(weights, func(a, b int) bool {
			if weights[a].Weight != weights[b].Weight {
				return weights[a].Weight > weights[b].Weight
			}
			return weights[a].Term < weights[b].Term
		})
		if len(weights) > topK {
			weights = weights[:topK]
		}
		result[label] = weights
	}
	return result
}

// Tokenize lowercases and extracts word tokens, dropping stopwords.
func Tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// LabelFromTerms builds a cluster label from its top three terms.
func LabelFromTerms(terms []TermWeight) string {
	n := len(terms)
	if n > 3 {
		n = 3
	}
	parts := make([]string, 0, n)
	for _, tw := range terms[:n] {
		parts = append(parts, strings.TrimSpace(tw.Term))
	}
	if len(parts) == 0 {
		return "unlabeled"
	}
	return strings.Join(parts, " / ")
}
