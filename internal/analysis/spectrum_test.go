package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerSpectrum_Sine(t *testing.T) {
	const n = 64
	times := make([]float64, n)
	values := make([]float64, n)
	for i := range n {
		times[i] = float64(i) * 0.1
		values[i] = 3 + math.Sin(2*math.Pi*1.25*times[i])
	}

	s, err := PowerSpectrum(times, values)
	require.NoError(t, err)
	assert.Len(t, s.Power, n/2)
	assert.InDelta(t, 1.25, s.Dominant(), 1e-6)
	assert.InDelta(t, 0, s.Power[0], 1e-9, "mean removed")
}

func TestPowerSpectrum_Pads(t *testing.T) {
	s, err := PowerSpectrum([]float64{0, 1, 2}, []float64{1, -1, 1})
	require.NoError(t, err)
	assert.Len(t, s.Freqs, 2)
	assert.InDelta(t, 0.25, s.Freqs[1], 1e-12)
}

func TestPowerSpectrum_TooFew(t *testing.T) {
	_, err := PowerSpectrum([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewSamples)

	_, err = PowerSpectrum([]float64{1, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrTooFewSamples)
}

func TestDominant_Flat(t *testing.T) {
	s, err := PowerSpectrum([]float64{0, 1, 2, 3}, []float64{5, 5, 5, 5})
	require.NoError(t, err)
	assert.Zero(t, s.Dominant())

	assert.Zero(t, Spectrum{}.Dominant())
}
