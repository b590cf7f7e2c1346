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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTestCase indicates a test line could not be parsed into a TestCase.
	ErrInvalidTestCase = errors.New("invalid test case")

	// ErrTooFewTokens indicates a test line has fewer than MinTestCaseTokens tokens.
	ErrTooFewTokens = errors.New("test line needs a target, an answer and at least one candidate")

	// ErrEmptyCandidates indicates a TestCase has no candidates.
	ErrEmptyCandidates = errors.New("candidates cannot be empty")

	// ErrEmptyTarget indicates the TestCase Target field is empty.
	ErrEmptyTarget = errors.New("target word cannot be empty")
)
