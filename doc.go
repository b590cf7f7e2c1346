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

// Package synonyms estimates how related two words are from the sentences
// they share in a text corpus, and measures that estimate against a labeled
// synonym test file.
//
// The pipeline is:
//   - tokenize: corpus files become sentences of lowercased words
//   - descriptor: sentences become per-word co-occurrence counts
//   - similarity: two descriptors become a score
//   - match: scores pick the best candidate and measure accuracy
//
// The functions in this package are shortcuts over those packages; Model
// bundles a descriptor table with a similarity function.
package synonyms
