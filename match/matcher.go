package match

import (
	"math"

	"github.com/poiesic/synonyms/core"
	"github.com/poiesic/synonyms/similarity"
)

// Score returns fn applied to the descriptors of word and candidate.
// If either word is missing from table the score is similarity.NoSimilarity.
func Score(word, candidate string, table core.DescriptorTable, fn similarity.Func) float64 {
	target, ok := table.Lookup(word)
	if !ok {
		return similarity.NoSimilarity
	}
	other, ok := table.Lookup(candidate)
	if !ok {
		return similarity.NoSimilarity
	}
	return fn(target, other)
}

// MostSimilar returns the candidate whose descriptor scores highest against word.
// A candidate replaces the current best only on a strictly higher score, so
// ties go to the earliest candidate. If nothing can be compared the first
// candidate is returned.
// Calling MostSimilar with no candidates is a caller error and returns ErrNoCandidates.
func MostSimilar(word string, candidates []string, table core.DescriptorTable, fn similarity.Func) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if fn == nil {
		return "", ErrSimilarityRequired
	}

	best := candidates[0]
	bestScore := math.Inf(-1)
	for _, candidate := range candidates {
		score := Score(word, candidate, table, fn)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, nil
}
