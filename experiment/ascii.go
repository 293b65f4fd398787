package experiment

import (
	"github.com/guptarohit/asciigraph"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Cyan,
}

// ASCII renders s for a terminal. Points are spaced evenly along the x axis
// in sweep order. Returns "" if s has no points.
func ASCII(s Sweep, m Metric) string {
	var data [][]float64
	for i := range s.Series {
		if len(s.Series[i].Points) == 0 {
			continue
		}
		y := make([]float64, len(s.Series[i].Points))
		for j, pt := range s.Series[i].Points {
			y[j] = m.value(pt)
		}
		data = append(data, y)
	}
	if len(data) == 0 {
		return ""
	}

	colors := seriesColors
	if len(data) < len(colors) {
		colors = colors[:len(data)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(10),
		asciigraph.Precision(3),
		asciigraph.Caption(s.Title(m)),
		asciigraph.SeriesColors(colors...),
	)
}
