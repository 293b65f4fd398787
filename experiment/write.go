package experiment

import (
	"fmt"
	"io"
)

// WriteTsv writes one line per point of every sweep, after a header line.
func WriteTsv(out io.Writer, sweeps []Sweep) error {
	_, err := fmt.Fprintln(out, "Sweep\tSeries\tX\tIC\tICStdev\tSeconds")
	if err != nil {
		return err
	}
	for _, s := range sweeps {
		for _, series := range s.Series {
			for _, p := range series.Points {
				_, err = fmt.Fprintf(out, "%s\t%s\t%g\t%.6f\t%.6f\t%.6f\n", s.Name, series.Name, p.X, p.IC, p.ICStdev, p.Seconds)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
