package ports

import (
	"context"

	"github.com/paddison/lesolver/pkg/domain"
)

// Solver computes x in A·x = b.
// Implementations must be pure and deterministic. A system without a determinate
// solution is reported as domain.NoSolution(), not as an error; errors are reserved
// for malformed input (domain.ErrMalformedSystem) and cancellation.
type Solver interface {
	Solve(ctx context.Context, matrix domain.Matrix, vector []float64) (domain.Solution, error)
}
