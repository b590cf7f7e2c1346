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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/poiesic/synonyms/core"
	"github.com/poiesic/synonyms/similarity"
)

// Result holds the tallies of one evaluation run.
type Result struct {
	Correct   int // Lines whose pick matched the expected answer
	Attempted int // Lines with at least three tokens
	Skipped   int // Lines with fewer than three tokens
}

// Accuracy returns the percentage of attempted lines answered correctly.
// Returns 0 when nothing was attempted.
func (r *Result) Accuracy() float64 {
	if r.Attempted == 0 {
		return 0.0
	}
	return 100.0 * float64(r.Correct) / float64(r.Attempted)
}

// Evaluator scores MostSimilar against labeled test files.
// An Evaluator only reads its table and may be used from several goroutines
// as long as its Monitor is safe for concurrent use.
type Evaluator struct {
	table   core.DescriptorTable
	fn      similarity.Func
	monitor Monitor
	logger  *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor that observes every run.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(e *Evaluator) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// NewEvaluator creates an evaluator over table using fn to compare descriptors.
func NewEvaluator(table core.DescriptorTable, fn similarity.Func, opts ...Option) (*Evaluator, error) {
	if table == nil {
		return nil, ErrTableRequired
	}
	if fn == nil {
		return nil, ErrSimilarityRequired
	}

	e := &Evaluator{
		table:   table,
		fn:      fn,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Run evaluates the test file at path.
// A file that cannot be opened or read returns an error wrapping ErrRead.
func (e *Evaluator) Run(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		e.logger.Error("error opening test file", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	defer f.Close()

	return e.run(path, f)
}

// RunReader evaluates test lines read from r.
func (e *Evaluator) RunReader(r io.Reader) (*Result, error) {
	return e.run("reader", r)
}

func (e *Evaluator) run(source string, r io.Reader) (*Result, error) {
	e.monitor.Start(source)

	result := &Result{}
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			e.logger.Error("error reading test file", "source", source, "line", lineNo+1, "err", readErr)
			return nil, fmt.Errorf("%w: %s: %w", ErrRead, source, readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNo++

		if err := e.evaluateLine(lineNo, line, result); err != nil {
			return nil, err
		}

		if readErr != nil {
			break
		}
	}

	e.logger.Info("evaluation finished",
		"source", source,
		"correct", result.Correct,
		"attempted", result.Attempted,
		"skipped", result.Skipped,
		"accuracy", result.Accuracy())
	e.monitor.Finish(result)
	return result, nil
}

// evaluateLine scores one test line and updates result.
func (e *Evaluator) evaluateLine(lineNo int, line string, result *Result) error {
	tc, err := core.ParseTestCase(line)
	if err != nil {
		if errors.Is(err, core.ErrTooFewTokens) {
			e.logger.Debug("skipping test line", "line", lineNo, "err", err)
			result.Skipped++
			e.monitor.Skipped(lineNo, line)
			return nil
		}
		return err
	}

	guess, err := MostSimilar(tc.Target, tc.Candidates, e.table, e.fn)
	if err != nil {
		return err
	}

	correct := guess == tc.Expected
	result.Attempted++
	if correct {
		result.Correct++
	}
	e.monitor.Predicted(tc, guess, correct)
	return nil
}

// Evaluate returns the accuracy, as a percentage in [0, 100], of picking
// synonyms with fn over table for the test file at path.
func Evaluate(path string, table core.DescriptorTable, fn similarity.Func) (float64, error) {
	e, err := NewEvaluator(table, fn)
	if err != nil {
		return 0, err
	}
	result, err := e.Run(path)
	if err != nil {
		return 0, err
	}
	return result.Accuracy(), nil
}
