package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paddison/lesolver/internal/presentation/tui"
	lambdaAdapter "github.com/paddison/lesolver/pkg/adapters/lambda"
	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/paddison/lesolver/pkg/solver"
	"golang.org/x/term"
)

// ErrInteractiveInput is returned when solve would block reading a terminal.
var ErrInteractiveInput = errors.New("refusing to read a linear system from an interactive terminal; pass a file or pipe input")

// RunLambda hands rt to the Lambda runtime. It does not return.
func RunLambda(rt *Runtime) {
	lambdaAdapter.Start(lambdaAdapter.NewHandler(rt.Service, rt.Logger))
}

// Handle runs one invocation for key and prints its outcome.
// A failure outcome is returned as error so the process exits non-zero.
func Handle(ctx context.Context, rt *Runtime, key string, r *tui.Renderer) (domain.Outcome, error) {
	outcome := rt.Service.Handle(ctx, domain.StorageEvent{Key: key, Bucket: rt.Config.ReadBucket})
	r.Outcome(outcome)
	return outcome, outcome.AsError()
}

// Solve parses and solves the system read from in, printing the solution.
func Solve(ctx context.Context, in io.Reader, strictness parser.Strictness, r *tui.Renderer) (domain.Solution, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return domain.Solution{}, fmt.Errorf("failed to read input: %w", err)
	}
	sys, err := parser.New(strictness).Parse(string(data))
	if err != nil {
		return domain.Solution{}, err
	}
	sol, err := solver.New().Solve(ctx, sys.Matrix, sys.Vector)
	if err != nil {
		return domain.Solution{}, err
	}
	r.Solution(sol)
	return sol, nil
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
