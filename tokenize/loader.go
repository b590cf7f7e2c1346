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

package tokenize

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/synonyms/core"
)

// Loader reads corpus files and tokenizes them into sentences.
// Files may be processed concurrently but results are always merged in input order.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the number of files read and tokenized concurrently.
// Default is 1, which processes files one at a time.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new corpus loader.
func NewLoader(opts ...Option) (*Loader, error) {
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// fileResult holds the outcome of loading a single file.
type fileResult struct {
	sentences []core.Sentence
	err       error
}

// Load reads every file in paths and returns their sentences concatenated in
// path order. The first failing file, in path order, aborts the load with an
// error wrapping ErrRead.
func (l *Loader) Load(paths ...string) ([]core.Sentence, error) {
	results := make([]fileResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			sentences, err := ReadFile(path)
			results[i] = fileResult{sentences: sentences, err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = fileResult{err: fmt.Errorf("submitting %s: %w", path, err)}
		}
	}
	wg.Wait()

	total := 0
	for i, res := range results {
		if res.err != nil {
			l.logger.Error("error loading corpus file", "path", paths[i], "err", res.err)
			return nil, res.err
		}
		l.logger.Debug("tokenized corpus file", "path", paths[i], "sentences", len(res.sentences))
		total += len(res.sentences)
	}

	sentences := make([]core.Sentence, 0, total)
	for _, res := range results {
		sentences = append(sentences, res.sentences...)
	}
	return sentences, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

// ReadFile reads and tokenizes a single corpus file.
func ReadFile(path string) ([]core.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return Sentences(Decode(data)), nil
}
