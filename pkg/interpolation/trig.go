// Package interpolation implements trigonometric interpolation of sampled
// data: given nodes x_k and values y_k, it computes the discrete Fourier
// coefficients
//
//	d_j = (1/N) * sum_k y_k * exp(-i*j*x_k)
//
// and evaluates the interpolating trigonometric polynomial
//
//	T(x) = sum_j d_j * exp(i*j*x)
//
// which satisfies T(x_k) = y_k on equispaced nodes x_k = 2*pi*k/N.
package interpolation

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrLengthMismatch is returned when the node and value slices differ in
// length.
var ErrLengthMismatch = errors.New("interpolation: node and value slices differ in length")

// Coefficients computes the discrete Fourier coefficients of the data
// (nodes[k], values[k]). Both slices must have the same length N; the
// result has length N.
func Coefficients(nodes []float64, values []complex128) ([]complex128, error) {
	if len(nodes) != len(values) {
		return nil, ErrLengthMismatch
	}

	n := len(nodes)
	coeffs := make([]complex128, n)
	for j := 0; j < n; j++ {
		var sum complex128
		for k := 0; k < n; k++ {
			sum += values[k] * cmplx.Exp(complex(0, -float64(j)*nodes[k]))
		}
		coeffs[j] = sum / complex(float64(n), 0)
	}
	return coeffs, nil
}

// Trig is a trigonometric interpolant, a coefficient-weighted sum of the
// basic oscillations exp(i*j*x).
type Trig struct {
	coeffs []complex128
}

// Fit constructs the interpolant through the data points
// (nodes[k], values[k]).
func Fit(nodes []float64, values []complex128) (*Trig, error) {
	coeffs, err := Coefficients(nodes, values)
	if err != nil {
		return nil, err
	}
	return &Trig{coeffs: coeffs}, nil
}

// Coefficients returns a copy of the interpolant's coefficients d_j.
func (t *Trig) Coefficients() []complex128 {
	return append([]complex128(nil), t.coeffs...)
}

// Evaluate computes T(x).
func (t *Trig) Evaluate(x float64) complex128 {
	var sum complex128
	for j, d := range t.coeffs {
		sum += d * cmplx.Exp(complex(0, float64(j)*x))
	}
	return sum
}

// EquispacedNodes returns the standard interpolation nodes
// x_k = 2*pi*k/n for k in [0, n).
func EquispacedNodes(n int) []float64 {
	nodes := make([]float64, n)
	for k := range nodes {
		nodes[k] = 2 * math.Pi * float64(k) / float64(n)
	}
	return nodes
}
