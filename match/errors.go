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

package match

import "errors"

var (
	// ErrNoCandidates is returned when MostSimilar is called without candidates.
	ErrNoCandidates = errors.New("at least one candidate required")

	// ErrSimilarityRequired is returned when a similarity function is not provided.
	ErrSimilarityRequired = errors.New("similarity function required")

	// ErrTableRequired is returned when a descriptor table is not provided.
	ErrTableRequired = errors.New("descriptor table required")

	// ErrRead is returned when a test file cannot be read.
	ErrRead = errors.New("test file read failed")
)
