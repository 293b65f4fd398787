// Package seqio loads the sequences searched for a shared motif.
package seqio

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"os"
	"strings"
)

var (
	ErrNoSequences = errors.New("no sequences in input")
	ErrInvalidBase = errors.New("sequence contains a base other than A, C, G, or T")
)

// Read parses a fasta file and returns each record's sequence in file order,
// converted to upper case. Multi-line records are joined. Records with any
// base other than A, C, G, or T (including N) are rejected.
func Read(filename string) ([][]dna.Base, error) {
	// fasta.Read panics on a missing file
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}
	seqs, err := FromRecords(fasta.Read(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return seqs, nil
}

// FromRecords validates and upper cases the sequences of records. The
// records are modified in place.
func FromRecords(records []fasta.Fasta) ([][]dna.Base, error) {
	if len(records) == 0 {
		return nil, ErrNoSequences
	}
	ans := make([][]dna.Base, len(records))
	for i := range records {
		dna.AllToUpper(records[i].Seq)
		if idx := firstUndefined(records[i].Seq); idx != -1 {
			return nil, fmt.Errorf("%w: record '%s' position %d", ErrInvalidBase, records[i].Name, idx)
		}
		ans[i] = records[i].Seq
	}
	return ans, nil
}

// FromStrings converts literal sequences, e.g. "ACGT", to bases. Lower case is accepted.
func FromStrings(s ...string) ([][]dna.Base, error) {
	if len(s) == 0 {
		return nil, ErrNoSequences
	}
	ans := make([][]dna.Base, len(s))
	var upper string
	for i := range s {
		upper = strings.ToUpper(s[i])
		if idx := strings.IndexFunc(upper, notACGT); idx != -1 {
			return nil, fmt.Errorf("%w: sequence %d position %d", ErrInvalidBase, i, idx)
		}
		ans[i] = dna.StringToBases(upper)
	}
	return ans, nil
}

// MinLength is the length of the shortest sequence in seqs.
func MinLength(seqs [][]dna.Base) int {
	if len(seqs) == 0 {
		return 0
	}
	ans := len(seqs[0])
	for i := range seqs {
		if len(seqs[i]) < ans {
			ans = len(seqs[i])
		}
	}
	return ans
}

func firstUndefined(seq []dna.Base) int {
	for i := range seq {
		if !dna.DefineBase(seq[i]) {
			return i
		}
	}
	return -1
}

func notACGT(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'T':
		return false
	default:
		return true
	}
}
