// Package solver provides a Gaussian elimination implementation of ports.Solver.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/paddison/lesolver/pkg/domain"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxCondition is the condition number above which a matrix is treated as singular.
// The condition number is invariant under scaling of A, so tiny or huge coefficients
// alone never make a system unsolvable.
const DefaultMaxCondition = 1e12

// Gauss solves linear systems by LU factorization with partial pivoting.
// The zero value uses DefaultMaxCondition.
type Gauss struct {
	MaxCondition float64
}

// New creates a Gauss solver with the default condition limit.
func New() *Gauss {
	return &Gauss{MaxCondition: DefaultMaxCondition}
}

// Solve returns x with A·x = b, or domain.NoSolution() if A is singular or too
// ill-conditioned to trust. Inputs are copied and never modified.
func (g *Gauss) Solve(ctx context.Context, m domain.Matrix, b []float64) (domain.Solution, error) {
	if !m.Square() {
		return domain.Solution{}, fmt.Errorf("%w: %d values for a %dx%d matrix", domain.ErrMalformedSystem, len(m.Data), m.N, m.N)
	}
	if len(b) != m.N {
		return domain.Solution{}, fmt.Errorf("%w: vector has %d values, matrix is %dx%d", domain.ErrMalformedSystem, len(b), m.N, m.N)
	}
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, err
	}

	limit := g.MaxCondition
	if limit <= 0 {
		limit = DefaultMaxCondition
	}

	n := m.N
	a := mat.NewDense(n, n, append([]float64(nil), m.Data...))
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); math.IsNaN(cond) || cond > limit {
		return domain.NoSolution(), nil
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		var c mat.Condition
		if errors.As(err, &c) {
			return domain.NoSolution(), nil
		}
		return domain.Solution{}, fmt.Errorf("lu solve: %w", err)
	}

	values := make([]float64, n)
	for i := range values {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.NoSolution(), nil
		}
		values[i] = v
	}
	return domain.Solved(values), nil
}
