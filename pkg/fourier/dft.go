// Package fourier implements the Discrete Fourier Transform and a recursive
// radix-2 Fast Fourier Transform, together with two small applications:
// one-sided magnitude spectra of sampled signals and exact polynomial
// multiplication via the convolution theorem.
//
// The DFT follows the common engineering convention
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N)
//
// with the 1/N factor on the inverse. All kernels are pure functions: inputs
// are never mutated and every call allocates its result.
package fourier

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// DFT computes the Discrete Fourier Transform of x by multiplying with the
// explicitly constructed N-by-N transform matrix M, where
// M[k][n] = exp(-2*pi*i*k*n/N).
//
// This is the O(N^2) reference implementation used as a correctness oracle
// for FFT; it accepts any input length, not just powers of two.
func DFT(x []complex128) []complex128 {
	return applyTransformMatrix(x, -1, 1)
}

// IDFT computes the inverse Discrete Fourier Transform of x:
//
//	x[n] = (1/N) * sum_k X[k] * exp(+2*pi*i*k*n/N)
//
// It is the exact inverse of DFT up to floating-point rounding, so
// IDFT(DFT(x)) recovers x.
func IDFT(x []complex128) []complex128 {
	return applyTransformMatrix(x, +1, 1/float64(len(x)))
}

// applyTransformMatrix builds the dense transform matrix with exponent sign
// `sign` and overall scale `scale`, and returns it applied to x as a
// matrix-vector product.
func applyTransformMatrix(x []complex128, sign float64, scale float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	// Entry (k, j) of the transform matrix is scale * exp(sign*2*pi*i*k*j/n).
	data := make([]complex128, n*n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(j) / float64(n)
			data[k*n+j] = complex(scale, 0) * cmplx.Exp(complex(0, angle))
		}
	}
	m := mat.NewCDense(n, n, data)

	// Apply the matrix with the complex BLAS: result = M * x.
	in := cblas128.Vector{N: n, Inc: 1, Data: append([]complex128(nil), x...)}
	out := cblas128.Vector{N: n, Inc: 1, Data: make([]complex128, n)}
	cblas128.Gemv(blas.NoTrans, 1, m.RawCMatrix(), in, 0, out)
	return out.Data
}
