package seqio

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"testing"
)

func TestRead(t *testing.T) {
	seqs, err := Read("testdata/motifs.fasta")
	require.NoError(t, err)
	require.Len(t, seqs, 4)

	assert.Equal(t, "TTAGATTACACGTC", dna.BasesToString(seqs[0]))
	assert.Equal(t, "GATTACAGGCTAACCGT", dna.BasesToString(seqs[1]))
	assert.Equal(t, "CCGTTCAAGATTACA", dna.BasesToString(seqs[2]))
	assert.Equal(t, 12, MinLength(seqs))
}

func TestReadErrors(t *testing.T) {
	_, err := Read("testdata/missing.fasta")
	assert.Error(t, err)

	_, err = Read("testdata/invalid.fasta")
	assert.True(t, errors.Is(err, ErrInvalidBase))
	assert.Contains(t, err.Error(), "bad")

	_, err = FromRecords(nil)
	assert.True(t, errors.Is(err, ErrNoSequences))
}

func TestFromRecords(t *testing.T) {
	records := []fasta.Fasta{
		{Name: "a", Seq: dna.StringToBases("acgt")},
		{Name: "b", Seq: dna.StringToBases("GGcc")},
	}
	seqs, err := FromRecords(records)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", dna.BasesToString(seqs[0]))
	assert.Equal(t, "GGCC", dna.BasesToString(seqs[1]))
}

func TestFromStrings(t *testing.T) {
	seqs, err := FromStrings("acgt", "TTGA")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", dna.BasesToString(seqs[0]))
	assert.Equal(t, 4, MinLength(seqs))

	_, err = FromStrings("ACGT", "ACXT")
	assert.True(t, errors.Is(err, ErrInvalidBase))

	_, err = FromStrings()
	assert.True(t, errors.Is(err, ErrNoSequences))
	assert.Equal(t, 0, MinLength(nil))
}
