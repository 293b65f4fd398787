// Package motif scores candidate motif sets. It builds profile matrices (base
// counts per position), position-weight matrices (counts normalized into
// probabilities), and the information content of a position-weight matrix
// relative to the background base frequencies of the input sequences.
//
// Matrices have one row per base in A, C, G, T order and one column per motif
// position.
package motif

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"gonum.org/v1/gonum/mat"
	"math"
)

// NumBases is the number of rows in a profile or position-weight matrix.
const NumBases = 4

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrZeroNormalization = errors.New("normalization count must be > 0")
	ErrLengthMismatch    = errors.New("motif length mismatch")
)

// bases maps a matrix row to the base it counts.
var bases = [NumBases]dna.Base{dna.A, dna.C, dna.G, dna.T}

// Background holds the frequency of A, C, G, and T across a sequence collection.
type Background [NumBases]float64

// row returns the matrix row for b. Anything that is not A, C, or G is counted as T.
func row(b dna.Base) int {
	switch b {
	case dna.A:
		return 0
	case dna.C:
		return 1
	case dna.G:
		return 2
	default:
		return 3
	}
}

// BaseProbabilities counts every base of every sequence and returns the
// frequency of each base.
func BaseProbabilities(seqs [][]dna.Base) (Background, error) {
	var counts [NumBases]int
	var total int
	for i := range seqs {
		for j := range seqs[i] {
			counts[row(seqs[i][j])]++
			total++
		}
	}

	var ans Background
	if total == 0 {
		return ans, fmt.Errorf("base probabilities: %w", ErrEmptyInput)
	}
	for b := range counts {
		ans[b] = float64(counts[b]) / float64(total)
	}
	return ans, nil
}

// ProfileMatrix counts the bases observed at each position of motifs. Every
// motif must have exactly length bases.
func ProfileMatrix(motifs [][]dna.Base, length int) (*mat.Dense, error) {
	if length <= 0 {
		return nil, fmt.Errorf("profile matrix: %w: length %d", ErrLengthMismatch, length)
	}
	if len(motifs) == 0 {
		return nil, fmt.Errorf("profile matrix: %w: no motifs", ErrEmptyInput)
	}

	pm := mat.NewDense(NumBases, length, nil)
	raw := pm.RawMatrix()
	for i := range motifs {
		if len(motifs[i]) != length {
			return nil, fmt.Errorf("profile matrix: %w: motif %d has length %d, expected %d", ErrLengthMismatch, i, len(motifs[i]), length)
		}
		for k := range motifs[i] {
			raw.Data[row(motifs[i][k])*raw.Stride+k]++
		}
	}
	return pm, nil
}

// PositionWeightMatrix divides each count in pm by n. Callers pass the number
// of motifs used to build pm so that each column sums to 1.
func PositionWeightMatrix(pm mat.Matrix, n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("position weight matrix: %w: got %d", ErrZeroNormalization, n)
	}
	total := float64(n)
	var pwm mat.Dense
	pwm.Apply(func(_, _ int, v float64) float64 {
		return v / total
	}, pm)
	return &pwm, nil
}

// InformationContent sums w*log2(w/q) over every position and base of pwm,
// where q is the background frequency of the base. Entries of 0 contribute 0.
func InformationContent(pwm mat.Matrix, bg Background) float64 {
	var ic, w float64
	r, c := pwm.Dims()
	for k := 0; k < c; k++ {
		for b := 0; b < r && b < NumBases; b++ {
			w = pwm.At(b, k)
			if w == 0 {
				continue
			}
			ic += w * math.Log2(w/bg[b])
		}
	}
	return ic
}

// Consensus returns the most frequent base at each column of pm. Bases are
// scanned in A, C, G, T order and a later base must have a strictly higher
// count to win, so ties go to the earlier base and an empty column gives A.
func Consensus(pm mat.Matrix) string {
	_, c := pm.Dims()
	ans := make([]dna.Base, c)
	var best int
	var highest float64
	for k := 0; k < c; k++ {
		best = 0
		highest = pm.At(0, k)
		for b := 1; b < NumBases; b++ {
			if pm.At(b, k) > highest {
				highest = pm.At(b, k)
				best = b
			}
		}
		ans[k] = bases[best]
	}
	return dna.BasesToString(ans)
}

// Likelihood is the product of the pwm entries for each base of m.
func Likelihood(m []dna.Base, pwm mat.Matrix) float64 {
	prob := 1.0
	for k := range m {
		prob *= pwm.At(row(m[k]), k)
	}
	return prob
}

// Matrices builds the profile matrix of motifs and the position-weight matrix
// normalized by the number of motifs.
func Matrices(motifs [][]dna.Base, length int) (pm, pwm *mat.Dense, err error) {
	pm, err = ProfileMatrix(motifs, length)
	if err != nil {
		return nil, nil, err
	}
	pwm, err = PositionWeightMatrix(pm, len(motifs))
	if err != nil {
		return nil, nil, err
	}
	return pm, pwm, nil
}

// Score is the information content of motifs against bg.
func Score(motifs [][]dna.Base, bg Background, length int) (float64, error) {
	_, pwm, err := Matrices(motifs, length)
	if err != nil {
		return 0, err
	}
	return InformationContent(pwm, bg), nil
}
