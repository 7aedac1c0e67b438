package ai

import "sort"

const maxKeywords = 10

// extractKeywords ranks the text's own tokens by term-frequency weight,
// stop words excluded. With a single document the inverse-document-frequency
// factor is a constant, so the ranking reduces to within-document salience:
// the caller wants the terms this text is about, not cross-document rarity.
// Degenerate input yields an empty slice.
func extractKeywords(text string) []string {
	tokens := wordTokens(text)
	if len(tokens) == 0 {
		return []string{}
	}

	counts := make(map[string]int)
	order := make(map[string]int) // first-occurrence index, for stable ties
	var terms []string
	for i, tok := range tokens {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order[tok] = i
			terms = append(terms, tok)
		}
		counts[tok]++
	}
	if len(terms) == 0 {
		return []string{}
	}

	// Equal weights keep first-occurrence order so the ranking is
	// deterministic for identical input.
	sort.SliceStable(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return order[terms[i]] < order[terms[j]]
	})

	if len(terms) > maxKeywords {
		terms = terms[:maxKeywords]
	}
	return terms
}
