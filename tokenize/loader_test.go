package tokenize

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/poiesic/synonyms/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)
		require.NotNil(t, loader)
		defer loader.Release()

		assert.Equal(t, 1, loader.pool.Cap())
		assert.NotNil(t, loader.logger)
	})

	t.Run("with pool size", func(t *testing.T) {
		loader, err := NewLoader(WithPoolSize(4))
		require.NoError(t, err)
		defer loader.Release()

		assert.Equal(t, 4, loader.pool.Cap())
	})

	t.Run("invalid pool size falls back to one", func(t *testing.T) {
		loader, err := NewLoader(WithPoolSize(0))
		require.NoError(t, err)
		defer loader.Release()

		assert.Equal(t, 1, loader.pool.Cap())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		loader, err := NewLoader(WithLogger(nil))
		require.NoError(t, err)
		defer loader.Release()

		assert.Equal(t, slog.Default(), loader.logger)
	})

	t.Run("failing option", func(t *testing.T) {
		boom := errors.New("boom")
		loader, err := NewLoader(func(*Loader) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, loader)
	})
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	first := writeCorpus(t, dir, "first.txt", "The cat sat. The dog sat!")
	second := writeCorpus(t, dir, "second.txt", "Birds fly? Fish swim")

	expected := []core.Sentence{
		{"the", "cat", "sat"},
		{"the", "dog", "sat"},
		{"birds", "fly"},
		{"fish", "swim"},
	}

	for _, size := range []int{1, 2, 8} {
		t.Run("pool size "+strconv.Itoa(size), func(t *testing.T) {
			loader, err := NewLoader(WithPoolSize(size))
			require.NoError(t, err)
			defer loader.Release()

			sentences, err := loader.Load(first, second)
			require.NoError(t, err)
			assert.Equal(t, expected, sentences)
		})
	}
}

func TestLoader_Load_PreservesFileOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var expected []core.Sentence
	for i := 0; i < 20; i++ {
		word := "word" + strconv.Itoa(i)
		paths = append(paths, writeCorpus(t, dir, word+".txt", word+" here."))
		expected = append(expected, core.Sentence{word, "here"})
	}

	loader, err := NewLoader(WithPoolSize(6))
	require.NoError(t, err)
	defer loader.Release()

	sentences, err := loader.Load(paths...)
	require.NoError(t, err)
	assert.Equal(t, expected, sentences)
}

func TestLoader_Load_NoFiles(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	defer loader.Release()

	sentences, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeCorpus(t, dir, "good.txt", "fine text.")
	missing := filepath.Join(dir, "missing.txt")
	alsoMissing := filepath.Join(dir, "also-missing.txt")

	loader, err := NewLoader(WithPoolSize(3))
	require.NoError(t, err)
	defer loader.Release()

	sentences, err := loader.Load(good, missing, alsoMissing)
	require.Error(t, err)
	assert.Nil(t, sentences)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.NotContains(t, err.Error(), "also-missing.txt")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and tokenizes", func(t *testing.T) {
		path := writeCorpus(t, dir, "corpus.txt", "Hello, World. Bye")
		sentences, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []core.Sentence{{"hello", "world"}, {"bye"}}, sentences)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCorpus(t, dir, "empty.txt", "")
		sentences, err := ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, sentences)
	})

	t.Run("directory is not readable as a file", func(t *testing.T) {
		_, err := ReadFile(dir)
		assert.ErrorIs(t, err, ErrRead)
	})
}
