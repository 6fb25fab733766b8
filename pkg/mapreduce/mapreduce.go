// Package mapreduce aggregates word frequencies across a batch of processed
// documents: one frequency map per document, reduced into a corpus-wide view
// for the processing summary.
package mapreduce

import "github.com/dtnitsch/acs-monitor/pkg/analytics"

// Map generates a word frequency map for a single document's text.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates per-document frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
