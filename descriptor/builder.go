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

package descriptor

import (
	"log/slog"

	"github.com/poiesic/synonyms/core"
	"github.com/poiesic/synonyms/tokenize"
)

// Build returns a new DescriptorTable for sentences.
// Every distinct word of every sentence gets an entry, even one that never
// shared a sentence with another word.
func Build(sentences []core.Sentence) core.DescriptorTable {
	table := make(core.DescriptorTable)
	for _, sentence := range sentences {
		addSentence(table, sentence)
	}
	return table
}

// BuildFromFiles tokenizes the corpus files in paths and builds their DescriptorTable.
// Any read failure is returned wrapping tokenize.ErrRead.
func BuildFromFiles(paths []string, opts ...tokenize.Option) (core.DescriptorTable, error) {
	loader, err := tokenize.NewLoader(opts...)
	if err != nil {
		return nil, err
	}
	defer loader.Release()

	sentences, err := loader.Load(paths...)
	if err != nil {
		return nil, err
	}
	return Build(sentences), nil
}

// addSentence adds the co-occurrences of one sentence to table.
func addSentence(table core.DescriptorTable, sentence core.Sentence) {
	// Deduplicate while keeping first-seen order
	seen := make(map[string]struct{}, len(sentence))
	words := make([]string, 0, len(sentence))
	for _, word := range sentence {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	for _, word := range words {
		d, ok := table[word]
		if !ok {
			d = make(core.Descriptor)
			table[word] = d
		}
		for _, other := range words {
			if other != word {
				d[other]++
			}
		}
	}
}

// Builder accumulates sentences into a single DescriptorTable across calls.
// A Builder is not safe for concurrent use.
type Builder struct {
	table      core.DescriptorTable
	sentences  int
	loaderOpts []tokenize.Option
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithLoaderOptions sets the options used to create the tokenize.Loader for AddFiles.
func WithLoaderOptions(opts ...tokenize.Option) Option {
	return func(b *Builder) error {
		b.loaderOpts = append(b.loaderOpts, opts...)
		return nil
	}
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		table:  make(core.DescriptorTable),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Add folds sentences into the table.
// Counts do not depend on the order sentences are added in.
func (b *Builder) Add(sentences ...core.Sentence) {
	for _, sentence := range sentences {
		addSentence(b.table, sentence)
	}
	b.sentences += len(sentences)
}

// AddFiles tokenizes the corpus files in paths and folds their sentences into the table.
// On error nothing is added.
func (b *Builder) AddFiles(paths ...string) error {
	loaderOpts := append([]tokenize.Option{tokenize.WithLogger(b.logger)}, b.loaderOpts...)
	loader, err := tokenize.NewLoader(loaderOpts...)
	if err != nil {
		return err
	}
	defer loader.Release()

	sentences, err := loader.Load(paths...)
	if err != nil {
		return err
	}

	b.Add(sentences...)
	b.logger.Debug("added corpus files", "files", len(paths), "sentences", len(sentences), "words", len(b.table))
	return nil
}

// Sentences returns how many sentences have been added.
func (b *Builder) Sentences() int {
	return b.sentences
}

// Table returns the accumulated table.
// The table is shared with the Builder; callers must not modify it, and
// further calls to Add or AddFiles keep updating it.
func (b *Builder) Table() core.DescriptorTable {
	return b.table
}
