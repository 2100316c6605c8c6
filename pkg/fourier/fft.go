package fourier

import (
	"math"
	"math/cmplx"
)

// FFT computes the Discrete Fourier Transform of x with the recursive
// radix-2 Cooley-Tukey algorithm (decimation in frequency). The result
// equals DFT(x) within floating-point rounding, at O(N log N) cost.
//
// The input length must be an exact power of two; other lengths return
// ErrNotPowerOfTwo. The input is never mutated.
func FFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	return fftRecursive(x), nil
}

// InverseFFT is not implemented and always returns ErrNotImplemented.
// The O(N^2) IDFT serves as the inverse transform instead.
func InverseFFT(x []complex128) ([]complex128, error) {
	return nil, ErrNotImplemented
}

// fftRecursive performs one decimation-in-frequency step and recurses.
// The length of x is a power of two; the caller has already checked.
//
// Splitting X[2j] and X[2j+1] of the length-n DFT gives two length-n/2
// DFTs: one of the pairwise sums x[k]+x[k+n/2], one of the twiddled
// pairwise differences exp(-2*pi*i*k/n)*(x[k]-x[k+n/2]). Interleaving
// their results reassembles X.
func fftRecursive(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return append([]complex128(nil), x...)
	}

	m := n / 2
	even := make([]complex128, m)
	odd := make([]complex128, m)
	for k := 0; k < m; k++ {
		even[k] = x[k] + x[k+m]
		diff := x[k] - x[k+m]
		twiddle := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		odd[k] = twiddle * diff
	}

	a := fftRecursive(even)
	b := fftRecursive(odd)

	result := make([]complex128, n)
	for j := 0; j < m; j++ {
		result[2*j] = a[j]
		result[2*j+1] = b[j]
	}
	return result
}
