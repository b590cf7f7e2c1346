package synonyms

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/synonyms/core"
	"github.com/poiesic/synonyms/match"
	"github.com/poiesic/synonyms/similarity"
	"github.com/poiesic/synonyms/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestBuildDescriptors(t *testing.T) {
	table := BuildDescriptors([]core.Sentence{{"the", "cat", "sat"}, {"the", "dog", "sat"}})

	assert.Equal(t, core.Descriptor{"cat": 1, "dog": 1, "sat": 2}, table["the"])
	assert.Equal(t, core.DescriptorTable{"a": {"b": 1}, "b": {"a": 1}}, BuildDescriptors([]core.Sentence{{"a", "a", "b"}}))
}

func TestSimilarity(t *testing.T) {
	v := core.SparseVector{"x": 2, "y": 1}

	assert.InDelta(t, 1.0, Similarity(v, v), 1e-12)
	assert.Equal(t, 0.0, Similarity(core.SparseVector{}, core.SparseVector{}))
	assert.Equal(t, 0.0, Similarity(v, core.SparseVector{}))
	assert.Equal(t, Similarity(v, core.SparseVector{"x": 1}), Similarity(core.SparseVector{"x": 1}, v))
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "The cat sat.")
	second := writeFile(t, dir, "second.txt", "The DOG sat!")
	tests := writeFile(t, dir, "tests.txt", "cat dog the dog\ncat the dog the\nbad line\n")

	table, err := BuildDescriptorsFromFiles(first, second)
	require.NoError(t, err)

	guess, err := MostSimilar("cat", []string{"the", "dog"}, table, similarity.Cosine)
	require.NoError(t, err)
	assert.Equal(t, "dog", guess)

	accuracy, err := Evaluate(tests, table, similarity.Cosine)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, accuracy, 1e-12)
}

func TestBuildDescriptorsFromFiles_MissingFile(t *testing.T) {
	table, err := BuildDescriptorsFromFiles(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, tokenize.ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, table)
}

func TestNewModel(t *testing.T) {
	dir := t.TempDir()
	corpus := writeFile(t, dir, "corpus.txt", "The cat sat. The dog sat.")
	tests := writeFile(t, dir, "tests.txt", "cat dog the dog\n")

	t.Run("defaults to cosine", func(t *testing.T) {
		model, err := NewModel([]string{corpus})
		require.NoError(t, err)

		guess, err := model.MostSimilar("cat", []string{"the", "dog"})
		require.NoError(t, err)
		assert.Equal(t, "dog", guess)

		accuracy, err := model.Evaluate(tests)
		require.NoError(t, err)
		assert.Equal(t, 100.0, accuracy)
		assert.Equal(t, 4, model.Table().Words())
	})

	t.Run("with options", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		model, err := NewModel([]string{corpus},
			WithSimilarity(similarity.Dice),
			WithLoaderOptions(tokenize.WithPoolSize(2)),
			WithLogger(logger),
		)
		require.NoError(t, err)

		accuracy, err := model.Evaluate(tests)
		require.NoError(t, err)
		assert.Equal(t, 100.0, accuracy)
		assert.Contains(t, logs.String(), "built descriptor table")
		assert.Contains(t, logs.String(), "evaluation finished")
	})

	t.Run("missing corpus file", func(t *testing.T) {
		model, err := NewModel([]string{filepath.Join(dir, "missing.txt")})
		assert.ErrorIs(t, err, tokenize.ErrRead)
		assert.Nil(t, model)
	})

	t.Run("missing test file", func(t *testing.T) {
		model, err := NewModel([]string{corpus})
		require.NoError(t, err)

		_, err = model.Evaluate(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, match.ErrRead)
	})
}

func TestNewModelFromTable(t *testing.T) {
	t.Run("nil table is empty", func(t *testing.T) {
		model := NewModelFromTable(nil)
		require.NotNil(t, model.Table())

		guess, err := model.MostSimilar("a", []string{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, "x", guess)
	})

	t.Run("nil similarity keeps default", func(t *testing.T) {
		table := core.DescriptorTable{"a": {"x": 1}, "b": {"x": 1}, "x": {"a": 1, "b": 1}}
		model := NewModelFromTable(table, WithSimilarity(nil))

		guess, err := model.MostSimilar("x", []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, "a", guess)
	})

	t.Run("evaluator with monitor", func(t *testing.T) {
		var buf bytes.Buffer
		model := NewModelFromTable(core.DescriptorTable{"a": {"b": 1}, "b": {"a": 1}})

		e, err := model.NewEvaluator(match.WithMonitor(match.NewProgressMonitor(&buf, 1)))
		require.NoError(t, err)

		result, err := e.Run(writeFile(t, t.TempDir(), "tests.txt", "a b b\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Correct)
		assert.Contains(t, buf.String(), "1 cases (1 correct, 100.0%)")
	})
}
