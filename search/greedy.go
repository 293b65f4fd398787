package search

import (
	"context"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"math"
	"time"
)

// Greedy scores every pair of motifs from the first two sequences and keeps
// the best pair, then for each following sequence appends the single motif
// that gives the highest scoring set. Only opts.Length and opts.Workers are
// used. The first candidate seen wins ties.
func Greedy(ctx context.Context, seqs [][]dna.Base, opts Options) (Result, error) {
	began := time.Now()
	if err := validate(seqs, opts.Length); err != nil {
		return Result{}, err
	}
	s, err := newScorer(seqs, opts.Length)
	if err != nil {
		return Result{}, err
	}

	starts, err := greedyStarts(ctx, s, opts.Workers)
	if err != nil {
		return Result{}, err
	}
	return s.result(starts, began)
}

func greedyStarts(ctx context.Context, s *scorer, workers int) ([]int, error) {
	n0, n1 := s.positions(0), s.positions(1)
	scores, err := scoreAll(ctx, n0*n1, workers, func(idx int) (float64, error) {
		return s.score([]int{idx / n1, idx % n1})
	})
	if err != nil {
		return nil, fmt.Errorf("greedy seed: %w", err)
	}
	bestIdx := argmax(scores)
	best := []int{bestIdx / n1, bestIdx % n1}

	for k := 2; k < len(s.seqs); k++ {
		curr := best
		scores, err = scoreAll(ctx, s.positions(k), workers, func(p int) (float64, error) {
			return s.extend(curr, p)
		})
		if err != nil {
			return nil, fmt.Errorf("greedy step %d: %w", k, err)
		}
		best = appendStart(best, argmax(scores))
	}
	return best, nil
}

// argmax returns the index of the first strictly highest score.
func argmax(scores []float64) int {
	var ans int
	highest := math.Inf(-1)
	for i := range scores {
		if scores[i] > highest {
			highest = scores[i]
			ans = i
		}
	}
	return ans
}
