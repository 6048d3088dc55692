package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("CommaWithHeader", func(t *testing.T) {
		input := "x,y\n1.5,2.5\n3,4\n"

		s, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []float64{1.5, 2.5}, s.At(0))
		assert.Equal(t, []float64{3, 4}, s.At(1))
	})

	t.Run("NoHeader", func(t *testing.T) {
		input := "1,2\n3,4\n"

		s, err := Read(strings.NewReader(input), func(o *Options) { o.SkipHeader = 0 })
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("CustomDelimiter", func(t *testing.T) {
		input := "a;b\n1;2\n"

		s, err := Read(strings.NewReader(input), func(o *Options) { o.Comma = ';' })
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, s.At(0))
	})

	t.Run("ScientificNotation", func(t *testing.T) {
		input := "h\n1e-3,2.5E2\n"

		s, err := Read(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []float64{0.001, 250}, s.At(0))
	})

	t.Run("NonNumericField", func(t *testing.T) {
		input := "h\n1,abc\n"

		_, err := Read(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("RaggedRows", func(t *testing.T) {
		input := "h\n1,2\n3\n"

		_, err := Read(strings.NewReader(input))
		assert.Error(t, err)
	})

	t.Run("OnlyHeader", func(t *testing.T) {
		_, err := Read(strings.NewReader("x,y\n"))
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n3,4\n"), 0o644))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
