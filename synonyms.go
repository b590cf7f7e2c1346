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

package synonyms

import (
	"log/slog"

	"github.com/poiesic/synonyms/core"
	"github.com/poiesic/synonyms/descriptor"
	"github.com/poiesic/synonyms/match"
	"github.com/poiesic/synonyms/similarity"
	"github.com/poiesic/synonyms/tokenize"
)

// BuildDescriptors returns the co-occurrence descriptors of sentences.
func BuildDescriptors(sentences []core.Sentence) core.DescriptorTable {
	return descriptor.Build(sentences)
}

// BuildDescriptorsFromFiles tokenizes the corpus files in paths, in order,
// and returns their co-occurrence descriptors.
func BuildDescriptorsFromFiles(paths ...string) (core.DescriptorTable, error) {
	return descriptor.BuildFromFiles(paths)
}

// Similarity returns the cosine similarity of two sparse vectors, or
// similarity.NoSimilarity if either has zero magnitude.
func Similarity(a, b core.SparseVector) float64 {
	return similarity.Vector(a, b)
}

// MostSimilar returns the candidate closest to word under fn.
func MostSimilar(word string, candidates []string, table core.DescriptorTable, fn similarity.Func) (string, error) {
	return match.MostSimilar(word, candidates, table, fn)
}

// Evaluate returns the percentage of test cases in the file at path that fn
// answers correctly over table.
func Evaluate(path string, table core.DescriptorTable, fn similarity.Func) (float64, error) {
	return match.Evaluate(path, table, fn)
}

// Model pairs a descriptor table with the similarity function used to compare its entries.
type Model struct {
	table  core.DescriptorTable
	fn     similarity.Func
	logger *slog.Logger
}

// ModelOption configures a Model.
type ModelOption func(*modelOptions)

type modelOptions struct {
	fn         similarity.Func
	loaderOpts []tokenize.Option
	logger     *slog.Logger
}

// WithSimilarity sets the similarity function.
// Default is similarity.Cosine.
func WithSimilarity(fn similarity.Func) ModelOption {
	return func(o *modelOptions) {
		if fn != nil {
			o.fn = fn
		}
	}
}

// WithLoaderOptions sets the options used to read corpus files.
func WithLoaderOptions(opts ...tokenize.Option) ModelOption {
	return func(o *modelOptions) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ModelOption {
	return func(o *modelOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyModelOptions(opts []ModelOption) *modelOptions {
	options := &modelOptions{
		fn:     similarity.Cosine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// NewModel builds a Model from the corpus files in paths.
func NewModel(paths []string, opts ...ModelOption) (*Model, error) {
	options := applyModelOptions(opts)

	builder, err := descriptor.NewBuilder(
		descriptor.WithLogger(options.logger),
		descriptor.WithLoaderOptions(options.loaderOpts...),
	)
	if err != nil {
		return nil, err
	}
	if err := builder.AddFiles(paths...); err != nil {
		return nil, err
	}

	options.logger.Info("built descriptor table", "files", len(paths), "sentences", builder.Sentences(), "words", builder.Table().Words())
	return &Model{table: builder.Table(), fn: options.fn, logger: options.logger}, nil
}

// NewModelFromTable wraps an existing descriptor table.
// A nil table is treated as empty.
func NewModelFromTable(table core.DescriptorTable, opts ...ModelOption) *Model {
	options := applyModelOptions(opts)
	if table == nil {
		table = core.DescriptorTable{}
	}
	return &Model{table: table, fn: options.fn, logger: options.logger}
}

// Table returns the model's descriptor table. Callers must not modify it.
func (m *Model) Table() core.DescriptorTable {
	return m.table
}

// MostSimilar returns the candidate closest to word.
func (m *Model) MostSimilar(word string, candidates []string) (string, error) {
	return match.MostSimilar(word, candidates, m.table, m.fn)
}

// NewEvaluator creates an evaluator over the model.
// The model's logger is used unless opts override it.
func (m *Model) NewEvaluator(opts ...match.Option) (*match.Evaluator, error) {
	return match.NewEvaluator(m.table, m.fn, append([]match.Option{match.WithLogger(m.logger)}, opts...)...)
}

// Evaluate returns the accuracy of the model, as a percentage, on the test file at path.
func (m *Model) Evaluate(path string) (float64, error) {
	e, err := m.NewEvaluator()
	if err != nil {
		return 0, err
	}
	result, err := e.Run(path)
	if err != nil {
		return 0, err
	}
	return result.Accuracy(), nil
}
