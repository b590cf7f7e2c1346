// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package similarity

import (
	"slices"

	"github.com/poiesic/synonyms/core"
	"gonum.org/v1/gonum/floats"
)

// NoSimilarity is returned when two vectors cannot be compared.
// Valid scores over non-negative weights lie in [0, 1], so an incomparable
// pair ties with a pair that shares nothing.
const NoSimilarity = 0.0

// Func scores two descriptors; higher means more alike.
// Implementations must be symmetric and free of side effects.
type Func func(a, b core.Descriptor) float64

var (
	_ Func = Cosine
	_ Func = Jaccard
	_ Func = Dice
)

// Weight is the set of numeric types a sparse vector may hold.
type Weight interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Cosine returns the cosine similarity of two descriptors.
func Cosine(a, b core.Descriptor) float64 {
	return CosineOf[int](a, b)
}

// Vector returns the cosine similarity of two arbitrary sparse vectors.
func Vector(a, b core.SparseVector) float64 {
	return CosineOf[float64](a, b)
}

// CosineOf returns dot(a, b) / (|a| * |b|).
// Terms missing from one vector count as weight zero. If either vector has
// zero magnitude the result is NoSimilarity.
// Terms are visited in sorted order so the result is exactly symmetric.
func CosineOf[V Weight](a, b map[string]V) float64 {
	normA := magnitude(a)
	normB := magnitude(b)
	if normA == 0 || normB == 0 {
		return NoSimilarity
	}

	shared := sharedTerms(a, b)
	if len(shared) == 0 {
		return 0
	}

	xs := make([]float64, len(shared))
	ys := make([]float64, len(shared))
	for i, term := range shared {
		xs[i] = float64(a[term])
		ys[i] = float64(b[term])
	}
	return floats.Dot(xs, ys) / (normA * normB)
}

// magnitude returns the Euclidean norm over the nonzero weights of v.
func magnitude[V Weight](v map[string]V) float64 {
	weights := make([]float64, 0, len(v))
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	slices.Sort(terms)
	for _, term := range terms {
		if w := float64(v[term]); w != 0 {
			weights = append(weights, w)
		}
	}
	if len(weights) == 0 {
		return 0
	}
	return floats.Norm(weights, 2)
}

// sharedTerms returns the sorted terms present in both a and b.
func sharedTerms[V Weight](a, b map[string]V) []string {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}

	shared := make([]string, 0, len(small))
	for term := range small {
		if _, ok := large[term]; ok {
			shared = append(shared, term)
		}
	}
	slices.Sort(shared)
	return shared
}
