package parser

import (
	"strings"

	"github.com/paddison/lesolver/pkg/domain"
)

// Strictness controls how the right-hand side length is validated.
type Strictness int

const (
	// Strict rejects a right-hand side whose length differs from the dimension.
	Strict Strictness = iota
	// Permissive absorbs every value after the matrix into the right-hand side.
	Permissive
)

func (s Strictness) String() string {
	if s == Permissive {
		return "permissive"
	}
	return "strict"
}

// Parser converts text into a linear system.
// The zero value parses with the Strict policy.
type Parser struct {
	Strictness Strictness
}

// New creates a parser with the given policy.
func New(s Strictness) *Parser {
	return &Parser{Strictness: s}
}

// Parse parses text with the default Strict policy.
func Parse(text string) (domain.LinearSystem, error) {
	return (&Parser{}).Parse(text)
}

// InferDimension returns the dimension fixed by the first content row.
func InferDimension(firstRow []float64) (int, error) {
	if len(firstRow) == 0 {
		return 0, &Error{Kind: ErrEmptyInput}
	}
	return len(firstRow), nil
}

// Parse reads the whole text and returns the coefficient matrix and right-hand side.
// On error no partial system is returned.
func (p *Parser) Parse(text string) (domain.LinearSystem, error) {
	var (
		raw      []float64
		dim      int
		rows     int // content rows consumed so far
		rhsWidth int // width of right-hand side lines, fixed by the first one
	)

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		values, err := Tokenize(strings.TrimSuffix(line, "\r"), lineNo)
		if err != nil {
			return domain.LinearSystem{}, err
		}
		if len(values) == 0 {
			continue
		}

		switch {
		case rows == 0:
			if dim, err = InferDimension(values); err != nil {
				return domain.LinearSystem{}, err
			}
		case rows < dim:
			if len(values) != dim {
				return domain.LinearSystem{}, mismatch(lineNo, dim, len(values))
			}
		case rhsWidth == 0:
			if len(values) != dim && len(values) != 1 {
				return domain.LinearSystem{}, mismatch(lineNo, dim, len(values))
			}
			rhsWidth = len(values)
		default:
			if len(values) != rhsWidth {
				return domain.LinearSystem{}, mismatch(lineNo, rhsWidth, len(values))
			}
		}

		raw = append(raw, values...)
		rows++
	}

	if rows == 0 {
		return domain.LinearSystem{}, &Error{Kind: ErrEmptyInput}
	}

	size := dim * dim
	if len(raw) < size {
		return domain.LinearSystem{}, &Error{Kind: ErrInsufficientData, Expected: size, Actual: len(raw)}
	}

	vector := raw[size:]
	if p.Strictness == Strict && len(vector) != dim {
		return domain.LinearSystem{}, &Error{Kind: ErrVectorLengthMismatch, Expected: dim, Actual: len(vector)}
	}

	return domain.LinearSystem{
		Matrix: domain.NewMatrix(dim, raw[:size:size]),
		Vector: vector,
	}, nil
}

func mismatch(line, expected, actual int) *Error {
	return &Error{Kind: ErrRowLengthMismatch, Line: line, Expected: expected, Actual: actual}
}
