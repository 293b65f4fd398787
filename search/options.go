package search

import (
	"fmt"
	"golang.org/x/exp/rand"
	"time"
)

// Defaults used by the motiftools command line.
const (
	DefaultLength  int = 8
	DefaultWidth   int = 10
	DefaultSamples int = 500
)

// Init selects how Gibbs chooses its starting motif set.
type Init int

const (
	InitRandom Init = iota // independent uniform start in every sequence
	InitGreedy             // start from the Greedy result
)

func (i Init) String() string {
	switch i {
	case InitRandom:
		return "random"
	case InitGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// ParseInit converts "random" or "greedy" to an Init.
func ParseInit(s string) (Init, error) {
	switch s {
	case "random", "":
		return InitRandom, nil
	case "greedy":
		return InitGreedy, nil
	default:
		return InitRandom, fmt.Errorf("%w: %q (must be random or greedy)", ErrBadInit, s)
	}
}

// Options configures a single search. Fields that do not apply to an
// algorithm are ignored by it.
type Options struct {
	Length  int  // motif length L
	Width   int  // frontier width K (Beam)
	Samples int  // number of iterations T (Gibbs)
	Init    Init // starting motif set (Gibbs)

	// Workers is the number of goroutines used to score the candidates of a
	// seed or extension step. Values < 2 score serially. Results do not
	// depend on Workers.
	Workers int

	// Source drives Gibbs. When nil, a source seeded with Seed is used, and
	// when Seed is also 0 the current time seeds it.
	Source rand.Source
	Seed   uint64
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		Length:  DefaultLength,
		Width:   DefaultWidth,
		Samples: DefaultSamples,
		Init:    InitRandom,
		Workers: 1,
	}
}

func (o Options) rng() *rand.Rand {
	if o.Source != nil {
		return rand.New(o.Source)
	}
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
