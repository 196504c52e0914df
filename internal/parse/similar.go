package parse

import (
	"sort"
	"strings"

	"github.com/relay-tools/slashcmd/internal/domain"
)

const maxSimilar = 3

// levenshtein calculates the edit distance between two strings,
// case-insensitively.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type similar struct {
	label    string
	distance int
}

// SimilarLabels finds binding labels close to the input token, for
// "did you mean" hints on unknown-command errors. Results are ordered by
// distance, then alphabetically for stability.
func SimilarLabels(input string, bindings []domain.Binding, maxResults int) []string {
	if input == "" || len(bindings) == 0 {
		return nil
	}

	const maxDistance = 3

	var candidates []similar
	for i := range bindings {
		label := bindings[i].Label
		dist := levenshtein(input, label)
		if dist > 0 && dist <= maxDistance {
			candidates = append(candidates, similar{label: label, distance: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].label < candidates[j].label
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	result := make([]string, len(candidates))
	for i, s := range candidates {
		result[i] = s.label
	}
	return result
}
