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

// Package similarity scores how alike two sparse vectors are.
//
// Scorers are plain functions so callers can swap one metric for another
// without touching the code that consumes the score. Every scorer returns
// NoSimilarity when a score cannot be computed, for example when either
// vector is empty, and NoSimilarity never exceeds a valid score.
//
// Available scorers:
//   - Cosine: normalized dot product over co-occurrence counts
//   - Jaccard: shared terms over all terms
//   - Dice: twice the shared terms over the summed term counts
package similarity
