package main

import (
	"github.com/dasnellings/motifTools/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestWriteMatches(t *testing.T) {
	seqs, err := seqio.FromStrings("ACGTACGT", "TTTT", "GACGTC")
	require.NoError(t, err)
	out := new(strings.Builder)
	writeMatches(out, seqs, "ACGT")
	assert.Equal(t, "Exact Consensus Matches:\n0\t[0 4]\n1\t[]\n2\t[1]\n", out.String())
}
