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

import (
	"fmt"
	"strings"
)

// MinTestCaseTokens is the smallest number of whitespace separated tokens a
// test line must carry: target, expected answer and one candidate.
const MinTestCaseTokens = 3

// ParseTestCase splits a test line on whitespace and builds a TestCase.
//
// Line format:
//
//	<target> <expected> <candidate_1> [<candidate_2> ...]
//
// Lines with fewer than MinTestCaseTokens tokens return an error wrapping
// both ErrInvalidTestCase and ErrTooFewTokens.
func ParseTestCase(line string) (*TestCase, error) {
	fields := strings.Fields(line)
	if len(fields) < MinTestCaseTokens {
		return nil, fmt.Errorf("%w: %w: got %d", ErrInvalidTestCase, ErrTooFewTokens, len(fields))
	}

	tc := &TestCase{
		Target:     fields[0],
		Expected:   fields[1],
		Candidates: fields[2:],
	}
	return tc, nil
}

// ValidateTestCase validates a TestCase built by hand.
//
// Validation rules:
//   - Target must not be empty
//   - Candidates must not be empty
//
// NOT validated:
//   - Expected (an answer outside Candidates simply never matches)
func ValidateTestCase(tc *TestCase) error {
	if tc == nil {
		return fmt.Errorf("%w: test case is nil", ErrInvalidTestCase)
	}

	if tc.Target == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTestCase, ErrEmptyTarget)
	}

	if len(tc.Candidates) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTestCase, ErrEmptyCandidates)
	}

	return nil
}
