package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNonFinite = errors.New("value is not finite")

// Tokenize splits one line on whitespace and parses every token as a float64.
// A blank line yields an empty slice; callers skip it rather than treat it as a row.
// lineNo is only used for error reporting.
func Tokenize(line string, lineNo int) ([]float64, error) {
	fields := strings.Fields(line)
	values := make([]float64, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errNonFinite
		}
		if err != nil {
			return nil, &Error{Kind: ErrMalformedNumber, Line: lineNo, Token: tok, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
