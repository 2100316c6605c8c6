package fourier

import "errors"

// Sentinel errors returned by the transform kernels.
var (
	// ErrNotPowerOfTwo is returned when the input length of a radix-2
	// transform is not an exact power of two.
	ErrNotPowerOfTwo = errors.New("fourier: input length is not a power of two")

	// ErrNotImplemented is returned by InverseFFT. The inverse radix-2
	// transform is a known gap; use IDFT instead.
	ErrNotImplemented = errors.New("fourier: inverse FFT not implemented")

	// ErrEmptyInput is returned when a transform is called on an empty
	// or nil sequence.
	ErrEmptyInput = errors.New("fourier: empty input sequence")
)
