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

package core

// Sentence is the ordered list of lowercased tokens of one sentence.
// Each sentence is one co-occurrence context.
type Sentence []string

// Descriptor maps a co-occurring word to the number of sentences it shared
// with the described word.
// A descriptor never contains the described word itself and never stores a
// zero count; absence means zero.
type Descriptor map[string]int

// DescriptorTable maps every word seen in a corpus to its Descriptor.
// It is built once and only read afterwards, so concurrent readers are safe.
type DescriptorTable map[string]Descriptor

// Lookup returns the descriptor for word and whether the word is known.
func (t DescriptorTable) Lookup(word string) (Descriptor, bool) {
	d, ok := t[word]
	return d, ok
}

// Words returns the number of distinct words in the table.
func (t DescriptorTable) Words() int {
	return len(t)
}

// SparseVector maps a term to an arbitrary weight.
// Weights may be zero or negative; a Descriptor is one instance of this shape.
type SparseVector map[string]float64

// FromDescriptor converts a count descriptor into a SparseVector.
func FromDescriptor(d Descriptor) SparseVector {
	v := make(SparseVector, len(d))
	for term, count := range d {
		v[term] = float64(count)
	}
	return v
}

// TestCase is one line of a labeled synonym test file:
// a target word, the expected answer and the candidates to choose from.
type TestCase struct {
	Target     string
	Expected   string
	Candidates []string
}
