package parser_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/paddison/lesolver/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ColumnVector(t *testing.T) {
	sys, err := parser.Parse("2 0\n0 2\n4\n4")
	require.NoError(t, err)

	assert.Equal(t, 2, sys.Dimension())
	assert.Equal(t, []float64{2, 0, 0, 2}, sys.Matrix.Data)
	assert.Equal(t, []float64{4, 4}, sys.Vector)
}

func TestParse_RowVector(t *testing.T) {
	sys, err := parser.Parse("1 2 3\n4 5 6\n7 8 10\n1 2 3\n")
	require.NoError(t, err)

	assert.Equal(t, 3, sys.Dimension())
	assert.Equal(t, []float64{7, 8, 10}, sys.Matrix.Row(2))
	assert.Equal(t, []float64{1, 2, 3}, sys.Vector)
}

func TestParse_BlankLinesAndCRLF(t *testing.T) {
	sys, err := parser.Parse("\r\n1 0\r\n\r\n0 1\r\n   \r\n5 6\r\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 1}, sys.Matrix.Data)
	assert.Equal(t, []float64{5, 6}, sys.Vector)
}

func TestParse_RowLengthMismatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		expected int
		actual   int
	}{
		{"Short matrix row", "1 2\n3", 2, 2, 1},
		{"Long matrix row", "1 2\n3 4 5\n6 7", 2, 2, 3},
		{"Right-hand side wider than one but not D", "1 2 3\n4 5 6\n7 8 9\n1 2", 4, 3, 2},
		{"Column then row", "1 0\n0 1\n4\n4 5", 4, 1, 2},
		{"Line numbers count blank lines", "1 0\n\n0", 3, 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sys, err := parser.Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrRowLengthMismatch)
			assert.Zero(t, sys.Dimension(), "no partial system on error")

			var pe *parser.Error
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.expected, pe.Expected)
			assert.Equal(t, tc.actual, pe.Actual)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "  \n\t\n\r\n"} {
		_, err := parser.Parse(input)
		assert.ErrorIs(t, err, parser.ErrEmptyInput, "%q", input)
	}
}

func TestParse_InsufficientData(t *testing.T) {
	_, err := parser.Parse("1 2 3\n4 5 6")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrInsufficientData)

	var pe *parser.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 9, pe.Expected)
	assert.Equal(t, 6, pe.Actual)
}

func TestParse_MalformedNumber(t *testing.T) {
	_, err := parser.Parse("1 0\n0 x\n1 1")
	assert.ErrorIs(t, err, parser.ErrMalformedNumber)
}

func TestParse_Strictness(t *testing.T) {
	trailing := "1 0\n0 1\n3 4\n5 6"
	missing := "1 0\n0 1"

	t.Run("Strict rejects trailing rows", func(t *testing.T) {
		_, err := parser.Parse(trailing)
		assert.ErrorIs(t, err, parser.ErrVectorLengthMismatch)
	})

	t.Run("Strict rejects a missing right-hand side", func(t *testing.T) {
		_, err := parser.New(parser.Strict).Parse(missing)
		var pe *parser.Error
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, parser.ErrVectorLengthMismatch, pe.Kind)
		assert.Equal(t, 2, pe.Expected)
		assert.Equal(t, 0, pe.Actual)
	})

	t.Run("Permissive absorbs trailing rows", func(t *testing.T) {
		sys, err := parser.New(parser.Permissive).Parse(trailing)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 4, 5, 6}, sys.Vector)
	})

	t.Run("Permissive accepts D rows with no right-hand side", func(t *testing.T) {
		sys, err := parser.New(parser.Permissive).Parse(missing)
		require.NoError(t, err)
		assert.Equal(t, 2, sys.Dimension())
		assert.Empty(t, sys.Vector)
	})
}

func TestParse_UniformRowsProperty(t *testing.T) {
	// Any D uniform rows followed by any number of uniform rows parse permissively
	// into a D×D matrix from the first D rows and a vector from the rest.
	p := parser.New(parser.Permissive)
	for d := 1; d <= 4; d++ {
		for extra := 0; extra <= 3; extra++ {
			var text string
			next := 1.0
			for r := 0; r < d+extra; r++ {
				for c := 0; c < d; c++ {
					if c > 0 {
						text += " "
					}
					text += strconv.FormatFloat(next, 'f', -1, 64)
					next++
				}
				text += "\n"
			}

			sys, err := p.Parse(text)
			require.NoError(t, err)
			assert.Equal(t, d, sys.Dimension())
			assert.Len(t, sys.Matrix.Data, d*d)
			assert.Len(t, sys.Vector, d*extra)
			assert.Equal(t, 1.0, sys.Matrix.At(0, 0))
		}
	}
}

func TestInferDimension(t *testing.T) {
	d, err := parser.InferDimension([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = parser.InferDimension(nil)
	assert.ErrorIs(t, err, parser.ErrEmptyInput)
}
