package fourier

import (
	"math"

	"gonum.org/v1/gonum/cmplxs"
)

// MulPolynomials multiplies two integer-coefficient polynomials using the
// convolution theorem: pad, FFT both, multiply pointwise, transform back,
// round. Coefficient i of the inputs and the result is the coefficient
// of x^i.
//
// Both inputs are zero-padded to the next power of two that can hold the
// full product (len(a)+len(b)-1 coefficients), so no circular-convolution
// wraparound occurs. The rounding step recovers exact integers as long as
// the coefficients stay well inside float64 precision.
func MulPolynomials(a, b []int64) ([]int64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	productLen := len(a) + len(b) - 1
	padded := nextPowerOfTwo(productLen)

	af, err := FFT(complexify(a, padded))
	if err != nil {
		return nil, err
	}
	bf, err := FFT(complexify(b, padded))
	if err != nil {
		return nil, err
	}

	// Pointwise product in the frequency domain is convolution in the
	// coefficient domain.
	cmplxs.Mul(af, bf)
	c := IDFT(af)

	result := make([]int64, productLen)
	for i := range result {
		result[i] = int64(math.Round(real(c[i])))
	}
	return result, nil
}

// MulDigits multiplies two non-negative integers given as little-endian
// decimal digit sequences (digits[i] is the coefficient of 10^i) and
// returns the numeric product. Digit sequences are polynomials evaluated
// at 10, so polynomial multiplication plus carrying does the job; here the
// carries are folded in by evaluating the product polynomial directly.
func MulDigits(a, b []int64) (int64, error) {
	coeffs, err := MulPolynomials(a, b)
	if err != nil {
		return 0, err
	}
	value := int64(0)
	power := int64(1)
	for _, c := range coeffs {
		value += c * power
		power *= 10
	}
	return value, nil
}

// complexify copies v into a zero-padded complex slice of length n.
func complexify(v []int64, n int) []complex128 {
	out := make([]complex128, n)
	for i, x := range v {
		out[i] = complex(float64(x), 0)
	}
	return out
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
