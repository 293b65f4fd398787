package search

import (
	"context"
	"fmt"
	"github.com/dasnellings/motifTools/motif"
	"github.com/vertgenlab/gonomics/dna"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"time"
)

// Gibbs starts from one motif per sequence (chosen per opts.Init) and runs
// opts.Samples iterations. Each iteration picks a sequence z at random,
// builds a position-weight matrix from the motifs of every other sequence,
// and resamples z's motif start in proportion to the likelihood of each
// candidate motif under that matrix. The highest scoring set seen at any
// point, including the starting set, is returned.
//
// Randomness comes from opts.Source, or a source seeded with opts.Seed.
func Gibbs(ctx context.Context, seqs [][]dna.Base, opts Options) (Result, error) {
	began := time.Now()
	if err := validate(seqs, opts.Length); err != nil {
		return Result{}, err
	}
	if opts.Samples < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadSamples, opts.Samples)
	}
	s, err := newScorer(seqs, opts.Length)
	if err != nil {
		return Result{}, err
	}
	rng := opts.rng()

	var starts []int
	switch opts.Init {
	case InitRandom:
		starts = make([]int, len(seqs))
		for i := range starts {
			starts[i] = rng.Intn(s.positions(i))
		}
	case InitGreedy:
		starts, err = greedyStarts(ctx, s, opts.Workers)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("gibbs: %w: %v", ErrBadInit, opts.Init)
	}

	best := slices.Clone(starts)
	bestIC, err := s.score(best)
	if err != nil {
		return Result{}, err
	}

	var z int
	var ic float64
	var probs []float64
	others := make([][]dna.Base, 0, len(seqs)-1)
	for t := 0; t < opts.Samples; t++ {
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("gibbs iteration %d: %w", t, err)
		}

		z = rng.Intn(len(seqs))
		others = others[:0]
		for i := range starts {
			if i != z {
				others = append(others, seqs[i][starts[i]:starts[i]+opts.Length])
			}
		}

		probs, err = s.positionProbabilities(z, others)
		if err != nil {
			return Result{}, fmt.Errorf("gibbs iteration %d: %w", t, err)
		}
		starts[z] = Sample(probs, rng.Float64())

		ic, err = s.score(starts)
		if err != nil {
			return Result{}, err
		}
		if ic > bestIC {
			bestIC = ic
			copy(best, starts)
		}
	}

	return s.result(best, began)
}

// positionProbabilities is the normalized likelihood of each motif start in
// sequence z under the position-weight matrix of others.
func (s *scorer) positionProbabilities(z int, others [][]dna.Base) ([]float64, error) {
	_, pwm, err := motif.Matrices(others, s.length)
	if err != nil {
		return nil, err
	}

	seq := s.seqs[z]
	probs := make([]float64, s.positions(z))
	for x := range probs {
		probs[x] = motif.Likelihood(seq[x:x+s.length], pwm)
	}

	total := floats.Sum(probs)
	if total == 0 {
		return nil, fmt.Errorf("sequence %d: %w", z, ErrZeroLikelihood)
	}
	floats.Scale(1/total, probs)
	return probs, nil
}

// Sample walks the cumulative sum of probs and returns the first index at
// which the running sum exceeds u, where u is a uniform draw in [0, 1).
// Rounding can leave the full sum just under u, in which case the last index
// with a non-zero probability is returned. Returns -1 if probs is empty or
// every probability is 0.
func Sample(probs []float64, u float64) int {
	var sum float64
	for i := range probs {
		sum += probs[i]
		if u < sum {
			return i
		}
	}
	for i := len(probs) - 1; i >= 0; i-- {
		if probs[i] > 0 {
			return i
		}
	}
	return -1
}
