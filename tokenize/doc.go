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

// Package tokenize turns raw corpus text into sentences of lowercased words.
//
// Normalization is intentionally plain:
//   - the whole text is lowercased
//   - '!' and '?' end a sentence just like '.'
//   - ',', '-', "--", ':' and ';' separate words but do not end a sentence
//   - every other character, including quotes and digits, stays part of a word
//
// A Loader reads corpus files, optionally on a worker pool, and always
// returns sentences in input file order.
package tokenize
