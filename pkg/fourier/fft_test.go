package fourier

import (
	"errors"
	"math/cmplx"
	"math/rand"
	"testing"

	dsp "gonum.org/v1/gonum/dsp/fourier"
)

// maxDeviation returns the largest elementwise distance between two
// complex sequences of equal length.
func maxDeviation(a, b []complex128) float64 {
	max := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}

// randomSequence produces a reproducible complex test sequence.
func randomSequence(n int, rng *rand.Rand) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64(), rng.Float64())
	}
	return x
}

// TestDFTKnownSequence verifies the interpolation example from the course:
// the data [1,0,1,0] has Fourier coefficients [2,0,2,0].
func TestDFTKnownSequence(t *testing.T) {
	got := DFT([]complex128{1, 0, 1, 0})
	want := []complex128{2, 0, 2, 0}

	if d := maxDeviation(got, want); d > 1e-12 {
		t.Errorf("DFT([1,0,1,0]) = %v, want [2,0,2,0] (max deviation %g)", got, d)
	}
}

// TestIDFTKnownSequence verifies the inverse direction of the same example:
// IDFT([2,0,2,0]) = [1,0,1,0].
func TestIDFTKnownSequence(t *testing.T) {
	got := IDFT([]complex128{2, 0, 2, 0})
	want := []complex128{1, 0, 1, 0}

	if d := maxDeviation(got, want); d > 1e-12 {
		t.Errorf("IDFT([2,0,2,0]) = %v, want [1,0,1,0] (max deviation %g)", got, d)
	}
}

// TestRoundTrip checks the inverse law IDFT(DFT(x)) == x on random input.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 8, 17, 32} {
		x := randomSequence(n, rng)
		back := IDFT(DFT(x))
		if d := maxDeviation(back, x); d > 1e-10 {
			t.Errorf("n=%d: IDFT(DFT(x)) deviates from x by %g", n, d)
		}
	}
}

// TestFFTMatchesDFT verifies that the radix-2 FFT reproduces the O(N^2)
// reference transform on power-of-two lengths.
func TestFFTMatchesDFT(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 1; n <= 128; n *= 2 {
		x := randomSequence(n, rng)
		fast, err := FFT(x)
		if err != nil {
			t.Fatalf("n=%d: unexpected FFT error: %v", n, err)
		}
		slow := DFT(x)
		if d := maxDeviation(fast, slow); d > 1e-9 {
			t.Errorf("n=%d: FFT deviates from DFT by %g", n, d)
		}
	}
}

// TestFFTMatchesGonum compares against Gonum's FFT as an independent
// library reference.
func TestFFTMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 64
	x := randomSequence(n, rng)

	fast, err := FFT(x)
	if err != nil {
		t.Fatalf("unexpected FFT error: %v", err)
	}

	oracle := dsp.NewCmplxFFT(n)
	want := oracle.Coefficients(nil, x)

	if d := maxDeviation(fast, want); d > 1e-9 {
		t.Errorf("FFT deviates from gonum reference by %g", d)
	}
}

// TestDFTMatchesGonumAnyLength checks the matrix-vector product behind DFT
// and IDFT against Gonum's transform on lengths the radix-2 path rejects.
func TestDFTMatchesGonumAnyLength(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{3, 6, 12} {
		x := randomSequence(n, rng)

		oracle := dsp.NewCmplxFFT(n)
		want := oracle.Coefficients(nil, x)
		if d := maxDeviation(DFT(x), want); d > 1e-9 {
			t.Errorf("n=%d: DFT deviates from gonum reference by %g", n, d)
		}

		back := oracle.Sequence(nil, want)
		for i := range back {
			back[i] /= complex(float64(n), 0)
		}
		if d := maxDeviation(IDFT(want), back); d > 1e-9 {
			t.Errorf("n=%d: IDFT deviates from gonum reference by %g", n, d)
		}
	}
}

// TestFFTInputUntouched ensures the transform never mutates its input.
func TestFFTInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x := randomSequence(16, rng)
	original := append([]complex128(nil), x...)

	if _, err := FFT(x); err != nil {
		t.Fatalf("unexpected FFT error: %v", err)
	}
	for i := range x {
		if x[i] != original[i] {
			t.Fatalf("FFT mutated its input at index %d", i)
		}
	}
}

// TestFFTRejectsNonPowerOfTwo verifies the precondition check: a length-6
// input must fail, not be truncated or padded.
func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	_, err := FFT(make([]complex128, 6))
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("FFT on length 6 returned %v, want ErrNotPowerOfTwo", err)
	}

	_, err = FFT(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("FFT on empty input returned %v, want ErrEmptyInput", err)
	}
}

// TestInverseFFTUnimplemented pins down the documented gap: the inverse
// radix-2 transform must fail loudly on every call.
func TestInverseFFTUnimplemented(t *testing.T) {
	_, err := InverseFFT([]complex128{1, 2, 3, 4})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("InverseFFT returned %v, want ErrNotImplemented", err)
	}
}
