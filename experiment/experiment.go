// Package experiment runs the motif searches over grids of parameters and
// records the information content and run time of each, for plotting.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"github.com/dasnellings/motifTools/search"
	"github.com/dasnellings/motifTools/seqio"
	"github.com/vertgenlab/gonomics/dna"
	"gonum.org/v1/gonum/stat"
	"log"
)

// Point is the outcome of one parameter value. With more than one replicate
// IC and Seconds are means and ICStdev is the sample standard deviation.
type Point struct {
	X       float64
	IC      float64
	ICStdev float64
	Seconds float64
}

// Series is a run of points sharing every parameter but X.
type Series struct {
	Name   string
	Points []Point
}

// Sweep is one experiment: one algorithm, one varied parameter.
type Sweep struct {
	Name      string // short identifier used in file names
	Algorithm string // e.g. "Beam Search"
	XLabel    string // the varied parameter
	Note      string // fixed parameters, e.g. "K=10"
	Series    []Series
}

// Config holds the parameter grids. Fixed values are used for the parameters
// not being varied by a given sweep.
type Config struct {
	Lengths []int // L values
	Widths  []int // K values
	Samples []int // T values

	Length       int
	Width        int
	FixedSamples int

	Replicates int // Gibbs runs per point, each with its own seed
	Workers    int
	Seed       uint64 // first Gibbs seed; 0 seeds from the clock
	Verbose    int
}

// DefaultConfig reproduces the grids used to characterize the three searches.
func DefaultConfig() Config {
	return Config{
		Lengths:      []int{6, 8, 14, 26, 33},
		Widths:       []int{5, 10, 15, 20, 25},
		Samples:      []int{10, 50, 100, 500, 1000},
		Length:       search.DefaultLength,
		Width:        search.DefaultWidth,
		FixedSamples: search.DefaultSamples,
		Replicates:   1,
		Workers:      1,
	}
}

type runner func(context.Context, [][]dna.Base, search.Options) (search.Result, error)

// Run performs every sweep:
//
//	Greedy: IC and time vs L
//	Beam:   vs L at fixed K, and vs K at fixed L
//	Gibbs:  vs L at fixed T, and vs T at fixed L for random and greedy starts
//
// Lengths longer than the shortest sequence are skipped. A Gibbs replicate
// that stops on a zero likelihood vector is logged and left out of its point.
func Run(ctx context.Context, seqs [][]dna.Base, cfg Config) ([]Sweep, error) {
	if cfg.Replicates < 1 {
		cfg.Replicates = 1
	}
	lengths := usableLengths(cfg.Lengths, seqio.MinLength(seqs))

	base := search.DefaultOptions()
	base.Length = cfg.Length
	base.Width = cfg.Width
	base.Samples = cfg.FixedSamples
	base.Workers = cfg.Workers

	var ans []Sweep
	var s Series
	var err error

	s, err = vary(ctx, seqs, cfg, "greedy", search.Greedy, base, lengths, setLength, 1)
	if err != nil {
		return nil, err
	}
	ans = append(ans, Sweep{Name: "greedy_length", Algorithm: "Greedy Search", XLabel: "Motif Length", Series: []Series{s}})

	s, err = vary(ctx, seqs, cfg, "beam", search.Beam, base, lengths, setLength, 1)
	if err != nil {
		return nil, err
	}
	ans = append(ans, Sweep{Name: "beam_length", Algorithm: "Beam Search", XLabel: "Motif Length", Note: fmt.Sprintf("K=%d", cfg.Width), Series: []Series{s}})

	s, err = vary(ctx, seqs, cfg, "beam", search.Beam, base, cfg.Widths, setWidth, 1)
	if err != nil {
		return nil, err
	}
	ans = append(ans, Sweep{Name: "beam_width", Algorithm: "Beam Search", XLabel: "K", Note: fmt.Sprintf("L=%d", cfg.Length), Series: []Series{s}})

	s, err = vary(ctx, seqs, cfg, "gibbs", search.Gibbs, base, lengths, setLength, cfg.Replicates)
	if err != nil {
		return nil, err
	}
	ans = append(ans, Sweep{Name: "gibbs_length", Algorithm: "Gibbs Sampling", XLabel: "Motif Length", Note: fmt.Sprintf("T=%d", cfg.FixedSamples), Series: []Series{s}})

	samples := Sweep{Name: "gibbs_samples", Algorithm: "Gibbs Sampling", XLabel: "T", Note: fmt.Sprintf("L=%d", cfg.Length)}
	for _, mode := range []search.Init{search.InitRandom, search.InitGreedy} {
		o := base
		o.Init = mode
		s, err = vary(ctx, seqs, cfg, mode.String(), search.Gibbs, o, cfg.Samples, setSamples, cfg.Replicates)
		if err != nil {
			return nil, err
		}
		samples.Series = append(samples.Series, s)
	}
	ans = append(ans, samples)

	return ans, nil
}

func setLength(o *search.Options, v int)  { o.Length = v }
func setWidth(o *search.Options, v int)   { o.Width = v }
func setSamples(o *search.Options, v int) { o.Samples = v }

// vary runs fn replicates times per value in values, with set applying the
// value to a copy of base.
func vary(ctx context.Context, seqs [][]dna.Base, cfg Config, name string, fn runner, base search.Options, values []int, set func(*search.Options, int), replicates int) (Series, error) {
	ans := Series{Name: name}

	var ics, seconds []float64
	for _, v := range values {
		o := base
		set(&o, v)
		ics, seconds = ics[:0], seconds[:0]
		for r := 0; r < replicates; r++ {
			if cfg.Seed != 0 {
				o.Seed = cfg.Seed + uint64(r)
			}
			res, err := fn(ctx, seqs, o)
			if errors.Is(err, search.ErrZeroLikelihood) {
				log.Printf("WARNING: %s at %d, replicate %d: %v\n", name, v, r, err)
				continue
			}
			if err != nil {
				return ans, fmt.Errorf("%s at %d: %w", name, v, err)
			}
			ics = append(ics, res.IC)
			seconds = append(seconds, res.Elapsed.Seconds())
		}
		if len(ics) == 0 {
			continue
		}

		p := Point{X: float64(v), IC: stat.Mean(ics, nil), Seconds: stat.Mean(seconds, nil)}
		if len(ics) > 1 {
			p.ICStdev = stat.StdDev(ics, nil)
		}
		ans.Points = append(ans.Points, p)
		if cfg.Verbose > 0 {
			log.Printf("%s\t%d\tIC=%.4f\t%.3fs\n", name, v, p.IC, p.Seconds)
		}
	}
	return ans, nil
}

func usableLengths(lengths []int, max int) []int {
	var ans []int
	for _, l := range lengths {
		if l > max {
			log.Printf("WARNING: skipping motif length %d, longer than shortest sequence (%d)\n", l, max)
			continue
		}
		ans = append(ans, l)
	}
	return ans
}
