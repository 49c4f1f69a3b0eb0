package parser_test

import (
	"errors"
	"testing"

	"github.com/paddison/lesolver/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("Whitespace separated values", func(t *testing.T) {
		values, err := parser.Tokenize("  1 -2.5\t3e2  +4 ", 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, -2.5, 300, 4}, values)
	})

	t.Run("Blank line yields nothing", func(t *testing.T) {
		values, err := parser.Tokenize(" \t ", 3)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("Malformed token names token and line", func(t *testing.T) {
		_, err := parser.Tokenize("1 two 3", 7)
		require.Error(t, err)
		assert.ErrorIs(t, err, parser.ErrMalformedNumber)

		var pe *parser.Error
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 7, pe.Line)
		assert.Equal(t, "two", pe.Token)
		assert.Contains(t, err.Error(), `"two"`)
	})

	t.Run("Non-finite values are rejected", func(t *testing.T) {
		for _, tok := range []string{"NaN", "inf", "-Inf", "1e400"} {
			_, err := parser.Tokenize("1 "+tok, 1)
			assert.ErrorIs(t, err, parser.ErrMalformedNumber, tok)
		}
	})
}
