package similarity

import "github.com/poiesic/synonyms/core"

// Jaccard returns |A ∩ B| / |A ∪ B| over the terms of a and b with nonzero weight.
func Jaccard(a, b core.Descriptor) float64 {
	return JaccardOf[int](a, b)
}

// Dice returns 2|A ∩ B| / (|A| + |B|) over the terms of a and b with nonzero weight.
func Dice(a, b core.Descriptor) float64 {
	return DiceOf[int](a, b)
}

// JaccardOf is Jaccard for any sparse vector.
// Returns NoSimilarity if either vector has no nonzero term.
func JaccardOf[V Weight](a, b map[string]V) float64 {
	sizeA, sizeB, inter := overlap(a, b)
	if sizeA == 0 || sizeB == 0 {
		return NoSimilarity
	}
	return float64(inter) / float64(sizeA+sizeB-inter)
}

// DiceOf is Dice for any sparse vector.
// Returns NoSimilarity if either vector has no nonzero term.
func DiceOf[V Weight](a, b map[string]V) float64 {
	sizeA, sizeB, inter := overlap(a, b)
	if sizeA == 0 || sizeB == 0 {
		return NoSimilarity
	}
	return 2 * float64(inter) / float64(sizeA+sizeB)
}

// overlap counts the nonzero terms of a, of b, and of both.
func overlap[V Weight](a, b map[string]V) (sizeA, sizeB, inter int) {
	for term, w := range a {
		if w == 0 {
			continue
		}
		sizeA++
		if other, ok := b[term]; ok && other != 0 {
			inter++
		}
	}
	for _, w := range b {
		if w != 0 {
			sizeB++
		}
	}
	return sizeA, sizeB, inter
}
