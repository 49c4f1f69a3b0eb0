package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/paddison/lesolver/pkg/domain"
)

// Renderer prints outcomes and solutions for humans, colored when the terminal supports it.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Outcome prints the status line of an invocation followed by its message.
func (r *Renderer) Outcome(o domain.Outcome) {
	p := r.out.ColorProfile()
	if o.Succeeded() {
		fmt.Fprintf(r.out, "%s %s\n", r.out.String("✔ success").Foreground(p.Color("#22c55e")).Bold(), o.Message)
		return
	}
	label := fmt.Sprintf("✘ failed while %s", o.Stage)
	fmt.Fprintf(r.out, "%s %s\n", r.out.String(label).Foreground(p.Color("#ef4444")).Bold(), o.Message)
	if o.InvocationID != "" {
		fmt.Fprintln(r.out, r.out.String("  invocation "+o.InvocationID).Faint())
	}
}

// Solution prints a solution vector, or the no-solution text.
func (r *Renderer) Solution(s domain.Solution) {
	p := r.out.ColorProfile()
	if !s.Determinate {
		fmt.Fprintln(r.out, r.out.String(s.String()).Foreground(p.Color("#f59e0b")))
		return
	}
	fmt.Fprintln(r.out, s.String())
}

// Error prints an error line.
func (r *Renderer) Error(err error) {
	p := r.out.ColorProfile()
	fmt.Fprintf(r.out, "%s %v\n", r.out.String("error:").Foreground(p.Color("#ef4444")).Bold(), err)
}
