package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pencil/internal/analysis"
	"github.com/san-kum/pencil/internal/storage"
)

// DefaultDiagnostic is plotted when no diagnostic is named.
const DefaultDiagnostic = "dt"

// PlotSeries plots each named diagnostic of ts against output step.
func PlotSeries(ts *storage.TimeSeries, names []string, width, height int) (string, error) {
	if len(ts.Rows) == 0 {
		return "", fmt.Errorf("no data to plot")
	}
	if len(names) == 0 {
		names = []string{DefaultDiagnostic}
	}

	times, _ := ts.Column("t")

	var b strings.Builder
	for _, name := range names {
		data, err := ts.Column(name)
		if err != nil {
			return "", err
		}

		caption := name + " vs step"
		if len(times) > 0 {
			caption = fmt.Sprintf("%s vs t (%.4g to %.4g)", name, times[0], times[len(times)-1])
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// SummarizeSeries lists each diagnostic with its last value and a sparkline.
func SummarizeSeries(ts *storage.TimeSeries, width int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%d diagnostics, %d rows", len(ts.Names), len(ts.Rows))))
	b.WriteString("\n")
	for _, name := range ts.Names {
		data, _ := ts.Column(name)
		last := "-"
		if len(data) > 0 {
			last = fmt.Sprintf("%.6g", data[len(data)-1])
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			KeyStyle.Render(fmt.Sprintf("%-10s", name)),
			ValueStyle.Render(fmt.Sprintf("%14s", last)),
			SparklineChart(data, width))
	}
	return b.String()
}

// PlotSpectrum plots the low quarter of a diagnostic's spectrum and reports
// its dominant frequency.
func PlotSpectrum(ts *storage.TimeSeries, name string, width, height int) (string, error) {
	times, err := ts.Column("t")
	if err != nil {
		return "", err
	}
	data, err := ts.Column(name)
	if err != nil {
		return "", err
	}

	s, err := analysis.PowerSpectrum(times, data)
	if err != nil {
		return "", err
	}

	plotData := s.Power
	if len(plotData) >= 8 {
		plotData = plotData[:len(plotData)/4]
	}

	var b strings.Builder
	b.WriteString(asciigraph.Plot(plotData,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", name)),
	))
	b.WriteString("\n\n")

	freq := s.Dominant()
	fmt.Fprintf(&b, "dominant frequency: %.4g\n", freq)
	if freq > 0 {
		fmt.Fprintf(&b, "period: %.4g\n", 1/freq)
	}
	return b.String(), nil
}
