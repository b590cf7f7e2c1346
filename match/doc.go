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

// Package match picks the closest candidate for a word and measures how
// often those picks agree with a labeled test file.
//
// MostSimilar compares a target word with each candidate through a
// similarity.Func over a core.DescriptorTable. Words missing from the table
// score similarity.NoSimilarity. The highest score wins and ties go to the
// candidate listed first.
//
// An Evaluator runs MostSimilar over every line of a test file:
//
//	<target> <expected> <candidate_1> [<candidate_2> ...]
//
// Lines with fewer than three tokens are skipped and not counted. Accuracy
// is the percentage of counted lines whose pick equals the expected answer.
package match
