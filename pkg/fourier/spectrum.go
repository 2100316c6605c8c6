package fourier

import (
	"fmt"
	"math/cmplx"
)

// Spectrum computes the one-sided magnitude spectrum of a real sampled
// signal. The signal length must be a power of two; spacing is the sample
// spacing T in seconds.
//
// It returns the frequency axis freqs[k] = k/(N*T) and the magnitudes
// 2/N * |FFT(signal)[k]| for the first N/2 bins. A pure sine of frequency f
// and amplitude A sampled over a whole number of periods shows up as a
// magnitude-A peak at the bin nearest f.
func Spectrum(signal []float64, spacing float64) (freqs, mags []float64, err error) {
	n := len(signal)
	if spacing <= 0 {
		return nil, nil, fmt.Errorf("fourier: sample spacing must be positive, got %g", spacing)
	}

	data := make([]complex128, n)
	for i, v := range signal {
		data[i] = complex(v, 0)
	}
	coeffs, err := FFT(data)
	if err != nil {
		return nil, nil, err
	}

	half := n / 2
	freqs = make([]float64, half)
	mags = make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) / (float64(n) * spacing)
		mags[k] = 2.0 / float64(n) * cmplx.Abs(coeffs[k])
	}
	return freqs, mags, nil
}

// DominantFrequency returns the frequency of the largest bin in the
// one-sided spectrum, skipping the DC bin.
func DominantFrequency(signal []float64, spacing float64) (float64, error) {
	freqs, mags, err := Spectrum(signal, spacing)
	if err != nil {
		return 0, err
	}
	if len(mags) < 2 {
		return 0, fmt.Errorf("fourier: signal of length %d has no resolvable frequencies", len(signal))
	}
	best := 1
	for k := 2; k < len(mags); k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}
	return freqs[best], nil
}
