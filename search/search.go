// Package search finds a motif shared by a set of DNA sequences by maximizing
// the information content of one motif drawn from each sequence. Three
// strategies are provided: Greedy, Beam, and Gibbs.
//
// A candidate motif set is stored as the start position of the motif within
// each sequence, so element i of a candidate indexes seqs[i]. Greedy and Beam
// grow candidates one sequence at a time in input order.
package search

import (
	"errors"
	"fmt"
	"github.com/dasnellings/motifTools/motif"
	"github.com/vertgenlab/gonomics/dna"
	"gonum.org/v1/gonum/mat"
	"strings"
	"time"
)

var (
	ErrTooFewSequences = errors.New("at least 2 sequences are required")
	ErrBadLength       = errors.New("invalid motif length")
	ErrBadWidth        = errors.New("beam width must be > 0")
	ErrBadSamples      = errors.New("number of samples must be >= 0")
	ErrBadInit         = errors.New("unknown initialization")
	ErrZeroLikelihood  = errors.New("every motif position has zero likelihood")
)

// Result is the outcome of a search.
type Result struct {
	Consensus string
	IC        float64
	Elapsed   time.Duration

	Motifs  [][]dna.Base // motif chosen from each sequence
	Starts  []int        // start of each motif within its sequence
	Profile *mat.Dense   // base counts of Motifs
	Weights *mat.Dense   // Profile normalized by len(Motifs)
}

// String summarizes r as printed at the end of a run.
func (r Result) String() string {
	return fmt.Sprintf("Motif Found: %s\nInformation Content: %g\nElapsed Time: %v", r.Consensus, r.IC, r.Elapsed)
}

// Verbose returns every motif with its start followed by the profile and
// position-weight matrices.
func (r Result) Verbose() string {
	s := new(strings.Builder)
	for i := range r.Motifs {
		fmt.Fprintf(s, "%d\t%d\t%s\n", i, r.Starts[i], dna.BasesToString(r.Motifs[i]))
	}
	s.WriteString("Profile Matrix:\n")
	s.WriteString(motif.Format(r.Profile))
	s.WriteString("Position Weight Matrix:\n")
	s.WriteString(motif.Format(r.Weights))
	return s.String()
}

// validate checks the inputs shared by all searches.
func validate(seqs [][]dna.Base, length int) error {
	if len(seqs) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSequences, len(seqs))
	}
	if length <= 0 {
		return fmt.Errorf("%w: %d must be > 0", ErrBadLength, length)
	}
	for i := range seqs {
		if len(seqs[i]) < length {
			return fmt.Errorf("%w: %d is longer than sequence %d (length %d)", ErrBadLength, length, i, len(seqs[i]))
		}
	}
	return nil
}

// scorer evaluates candidates against a fixed set of sequences.
type scorer struct {
	seqs   [][]dna.Base
	length int
	bg     motif.Background
}

func newScorer(seqs [][]dna.Base, length int) (*scorer, error) {
	bg, err := motif.BaseProbabilities(seqs)
	if err != nil {
		return nil, err
	}
	return &scorer{seqs: seqs, length: length, bg: bg}, nil
}

// positions is the number of motif starts in sequence i.
func (s *scorer) positions(i int) int {
	return len(s.seqs[i]) - s.length + 1
}

func (s *scorer) motifs(starts []int) [][]dna.Base {
	ans := make([][]dna.Base, len(starts))
	for i, p := range starts {
		ans[i] = s.seqs[i][p : p+s.length]
	}
	return ans
}

// score is the information content of the motifs at starts, normalized by
// len(starts).
func (s *scorer) score(starts []int) (float64, error) {
	return motif.Score(s.motifs(starts), s.bg, s.length)
}

// extend scores starts with p appended as the motif of the next sequence.
func (s *scorer) extend(starts []int, p int) (float64, error) {
	motifs := make([][]dna.Base, len(starts)+1)
	for i, q := range starts {
		motifs[i] = s.seqs[i][q : q+s.length]
	}
	n := len(starts)
	motifs[n] = s.seqs[n][p : p+s.length]
	return motif.Score(motifs, s.bg, s.length)
}

func (s *scorer) result(starts []int, began time.Time) (Result, error) {
	var err error
	ans := Result{Starts: starts, Motifs: s.motifs(starts)}
	ans.Profile, ans.Weights, err = motif.Matrices(ans.Motifs, s.length)
	if err != nil {
		return Result{}, err
	}
	ans.IC = motif.InformationContent(ans.Weights, s.bg)
	ans.Consensus = motif.Consensus(ans.Profile)
	ans.Elapsed = time.Since(began)
	return ans, nil
}

// appendStart copies starts with p added to the end.
func appendStart(starts []int, p int) []int {
	ans := make([]int, len(starts)+1)
	copy(ans, starts)
	ans[len(starts)] = p
	return ans
}
