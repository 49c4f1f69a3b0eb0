package domain

import (
	"math"
	"strconv"
	"strings"
)

// Matrix is a square N×N matrix stored row-major in a flat slice.
type Matrix struct {
	N    int
	Data []float64
}

// NewMatrix wraps row-major data as an n×n matrix. The slice is not copied.
func NewMatrix(n int, data []float64) Matrix {
	return Matrix{N: n, Data: data}
}

// At returns the value at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.Data[r*m.N+c]
}

// Row returns row r as a sub-slice of the backing data.
func (m Matrix) Row(r int) []float64 {
	return m.Data[r*m.N : (r+1)*m.N]
}

// Square reports whether the backing data holds exactly N×N values.
func (m Matrix) Square() bool {
	return m.N > 0 && len(m.Data) == m.N*m.N
}

// LinearSystem is the pair (A, b) of A·x = b.
type LinearSystem struct {
	Matrix Matrix
	Vector []float64
}

// Dimension returns the size of the coefficient matrix.
func (s LinearSystem) Dimension() int {
	return s.Matrix.N
}

// Solution is the result of solving a LinearSystem.
// A zero Solution is the "no solution" marker.
type Solution struct {
	Values      []float64
	Determinate bool
}

// NoSolution returns the explicit "no solution" marker.
func NoSolution() Solution {
	return Solution{}
}

// Solved returns a determinate solution.
func Solved(values []float64) Solution {
	return Solution{Values: values, Determinate: true}
}

// String renders the solution as stored in the write-side bucket:
// "[x1, x2, ...]" or NoSolutionText.
func (s Solution) String() string {
	if !s.Determinate {
		return NoSolutionText
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatFloat(v))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatFloat renders v in its shortest round-trip form, always with a decimal
// point or exponent so integral values read as floats ("2.0", not "2").
// Magnitudes below 1e-4 or from 1e16 up use a bare exponent: "1e20", "1.5e-7".
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		neg := strings.HasPrefix(exp, "-")
		exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
		if neg {
			exp = "-" + exp
		}
		return mantissa + "e" + exp
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
