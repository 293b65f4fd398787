package search

import (
	"context"
	"fmt"
	"github.com/dasnellings/motifTools/frontier"
	"github.com/vertgenlab/gonomics/dna"
	"time"
)

// Beam generalizes Greedy by keeping the opts.Width best candidate sets after
// the seed step and after each extension. At each extension every motif of
// the next sequence is appended to every surviving set and the results are
// ranked in a fresh frontier. With a width of 1 the result is identical to
// Greedy.
func Beam(ctx context.Context, seqs [][]dna.Base, opts Options) (Result, error) {
	began := time.Now()
	if err := validate(seqs, opts.Length); err != nil {
		return Result{}, err
	}
	if opts.Width <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadWidth, opts.Width)
	}
	s, err := newScorer(seqs, opts.Length)
	if err != nil {
		return Result{}, err
	}

	front, err := beamSeed(ctx, s, opts.Width, opts.Workers)
	if err != nil {
		return Result{}, err
	}
	for k := 2; k < len(seqs); k++ {
		front, err = beamExtend(ctx, s, front, k, opts.Width, opts.Workers)
		if err != nil {
			return Result{}, err
		}
	}

	best, ok := front.Best()
	if !ok {
		// unreachable after validate: the seed step always scores a pair
		return Result{}, fmt.Errorf("beam search: no candidates retained")
	}
	return s.result(best.Value, began)
}

func beamSeed(ctx context.Context, s *scorer, width, workers int) (*frontier.Frontier[[]int], error) {
	front, err := frontier.New[[]int](width)
	if err != nil {
		return nil, err
	}
	n0, n1 := s.positions(0), s.positions(1)
	scores, err := scoreAll(ctx, n0*n1, workers, func(idx int) (float64, error) {
		return s.score([]int{idx / n1, idx % n1})
	})
	if err != nil {
		return nil, fmt.Errorf("beam seed: %w", err)
	}
	for idx := range scores {
		if scores[idx] > front.Worst() {
			front.Add(scores[idx], []int{idx / n1, idx % n1})
		}
	}
	return front, nil
}

// beamExtend appends each motif start of sequence k to every set in prev.
// Candidates are visited position-major, then by rank in prev.
func beamExtend(ctx context.Context, s *scorer, prev *frontier.Frontier[[]int], k, width, workers int) (*frontier.Frontier[[]int], error) {
	sets := prev.Values()
	front, err := frontier.New[[]int](width)
	if err != nil {
		return nil, err
	}
	m := len(sets)
	scores, err := scoreAll(ctx, s.positions(k)*m, workers, func(idx int) (float64, error) {
		return s.extend(sets[idx%m], idx/m)
	})
	if err != nil {
		return nil, fmt.Errorf("beam step %d: %w", k, err)
	}
	for idx := range scores {
		if scores[idx] > front.Worst() {
			front.Add(scores[idx], appendStart(sets[idx%m], idx/m))
		}
	}
	return front, nil
}
