package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooFewSamples = errors.New("analysis: need at least two samples spanning a positive time")

// Spectrum is the one-sided amplitude spectrum of a diagnostic.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// PowerSpectrum transforms values sampled at times. The mean is removed
// and the series zero-padded to the next power of two. The sample spacing
// is the mean step between times.
func PowerSpectrum(times, values []float64) (Spectrum, error) {
	n := min(len(times), len(values))
	if n < 2 || times[n-1] <= times[0] {
		return Spectrum{}, ErrTooFewSamples
	}
	dt := (times[n-1] - times[0]) / float64(n-1)

	mean := 0.0
	for _, v := range values[:n] {
		mean += v
	}
	mean /= float64(n)

	size := 1
	for size < n {
		size *= 2
	}
	padded := make([]float64, size)
	for i, v := range values[:n] {
		padded[i] = v - mean
	}

	out := fft.FFTReal(padded)
	s := Spectrum{
		Freqs: make([]float64, size/2),
		Power: make([]float64, size/2),
	}
	for k := range s.Power {
		s.Freqs[k] = float64(k) / (float64(size) * dt)
		s.Power[k] = cmplx.Abs(out[k])
	}
	return s, nil
}

// Dominant returns the frequency with the largest power, ignoring the
// zero-frequency bin. It returns 0 when the spectrum is flat or empty.
func (s Spectrum) Dominant() float64 {
	if len(s.Freqs) == 0 {
		return 0
	}
	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(s.Power); i++ {
		if s.Power[i] > maxPower {
			maxPower = s.Power[i]
			maxIdx = i
		}
	}
	return s.Freqs[maxIdx]
}
