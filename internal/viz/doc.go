// Package viz renders simulation parameters and diagnostics in the terminal.
//
//   - [RenderParams]: styled listing of flat and nested parameters
//   - [PlotSeries]: ASCII plots of time-series diagnostics
//   - [Browser]: interactive parameter browser
package viz
