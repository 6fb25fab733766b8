package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords are ignored in frequency analysis. Alongside the usual English
// stopwords it drops boilerplate that saturates regulatory PDFs (page
// furniture, list markers) so the keyword lists say something about content.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "cannot": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "either": {}, "etc": {}, "every": {},
	"few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"may": {}, "more": {}, "most": {}, "must": {}, "my": {},
	"no": {}, "nor": {}, "not": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},
	"per": {}, "same": {}, "shall": {}, "she": {}, "should": {}, "so": {},
	"some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "why": {}, "will": {},
	"with": {}, "within": {}, "without": {}, "would": {},
	"you": {}, "your": {},

	// Document furniture common in regulatory PDFs
	"appendix": {}, "chapter": {}, "contents": {}, "figure": {},
	"note": {}, "page": {}, "pages": {}, "paragraph": {}, "section": {},
	"table": {}, "version": {},
}

// IsStopword checks if a word is filtered out of frequency analysis.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts non-stopword occurrences in the text after stripping
// punctuation.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Keep only lowercase letters and digits at the word edges
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopwords in the text.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}
	return topN
}
