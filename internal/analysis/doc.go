// Package analysis provides spectral tools for time series diagnostics.
//
//   - [PowerSpectrum]: one-sided amplitude spectrum of a sampled diagnostic
//
// A diagnostic such as urms oscillating with period P shows a peak at 1/P:
//
//	s, err := analysis.PowerSpectrum(times, urms)
//	if err == nil {
//	    period := 1 / s.Dominant()
//	}
package analysis
