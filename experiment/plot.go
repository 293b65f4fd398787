package experiment

import (
	"fmt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"path/filepath"
)

// Metric selects the y value of a plot.
type Metric int

const (
	InformationContent Metric = iota
	Time
)

// Metrics lists every Metric, in plotting order.
var Metrics = []Metric{InformationContent, Time}

func (m Metric) label() string {
	switch m {
	case Time:
		return "Execution Time (Seconds)"
	default:
		return "Information Content"
	}
}

func (m Metric) name() string {
	switch m {
	case Time:
		return "Program Time"
	default:
		return "Information Content"
	}
}

func (m Metric) slug() string {
	switch m {
	case Time:
		return "time"
	default:
		return "ic"
	}
}

func (m Metric) value(p Point) float64 {
	switch m {
	case Time:
		return p.Seconds
	default:
		return p.IC
	}
}

// Title is the heading used for s when plotting m,
// e.g. "Beam Search: Information Content vs. K, L=8".
func (s Sweep) Title(m Metric) string {
	t := fmt.Sprintf("%s: %s vs. %s", s.Algorithm, m.name(), s.XLabel)
	if s.Note != "" {
		t += ", " + s.Note
	}
	return t
}

// Plot draws one scatter series per Series in s. A legend is added when there
// is more than one series.
func Plot(s Sweep, m Metric) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title(m)
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = m.label()

	for i := range s.Series {
		if len(s.Series[i].Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Series[i].Points))
		for j, pt := range s.Series[i].Points {
			xys[j].X = pt.X
			xys[j].Y = m.value(pt)
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("plotting %s: %w", s.Series[i].Name, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(sc)
		if len(s.Series) > 1 {
			p.Legend.Add(s.Series[i].Name, sc)
		}
	}
	return p, nil
}

// Save writes the plot of s and m to dir as <sweep>_<metric>.<format>,
// where format is any extension gonum/plot can write (png, pdf, svg, ...).
// Returns the file written.
func Save(s Sweep, m Metric, dir, format string) (string, error) {
	p, err := Plot(s, m)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", s.Name, m.slug(), format))
	err = p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
	if err != nil {
		return "", err
	}
	return filename, nil
}
