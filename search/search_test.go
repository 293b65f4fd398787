package search

import (
	"context"
	"errors"
	"github.com/dasnellings/motifTools/motif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/dna"
	"golang.org/x/exp/rand"
	"math"
	"testing"
)

func toBases(s ...string) [][]dna.Base {
	ans := make([][]dna.Base, len(s))
	for i := range s {
		ans[i] = dna.StringToBases(s[i])
	}
	return ans
}

var alphabet = []dna.Base{dna.A, dna.C, dna.G, dna.T}

// randomSeqs returns n sequences of length l drawn uniformly from ACGT.
func randomSeqs(rng *rand.Rand, n, l int) [][]dna.Base {
	ans := make([][]dna.Base, n)
	for i := range ans {
		ans[i] = make([]dna.Base, l)
		for j := range ans[i] {
			ans[i][j] = alphabet[rng.Intn(len(alphabet))]
		}
	}
	return ans
}

// plant copies m into each sequence at a random position.
func plant(rng *rand.Rand, seqs [][]dna.Base, m string) {
	b := dna.StringToBases(m)
	for i := range seqs {
		copy(seqs[i][rng.Intn(len(seqs[i])-len(b)+1):], b)
	}
}

func opts(length int) Options {
	o := DefaultOptions()
	o.Length = length
	return o
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	seqs := toBases("ACGTACGT", "TACG")

	_, err := Greedy(ctx, seqs[:1], opts(4))
	assert.True(t, errors.Is(err, ErrTooFewSequences))
	_, err = Greedy(ctx, nil, opts(4))
	assert.True(t, errors.Is(err, ErrTooFewSequences))
	_, err = Greedy(ctx, seqs, opts(0))
	assert.True(t, errors.Is(err, ErrBadLength))
	_, err = Beam(ctx, seqs, opts(5))
	assert.True(t, errors.Is(err, ErrBadLength))
	_, err = Gibbs(ctx, seqs, opts(-1))
	assert.True(t, errors.Is(err, ErrBadLength))

	o := opts(4)
	o.Width = 0
	_, err = Beam(ctx, seqs, o)
	assert.True(t, errors.Is(err, ErrBadWidth))

	o = opts(4)
	o.Samples = -1
	_, err = Gibbs(ctx, seqs, o)
	assert.True(t, errors.Is(err, ErrBadSamples))

	o = opts(4)
	o.Init = Init(9)
	_, err = Gibbs(ctx, seqs, o)
	assert.True(t, errors.Is(err, ErrBadInit))
}

func TestGreedyEndToEnd(t *testing.T) {
	seqs := toBases("ACGTACGT", "TACGTACG")
	res, err := Greedy(context.Background(), seqs, opts(4))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, res.Starts)
	assert.Equal(t, "ACGT", res.Consensus)
	assert.InDelta(t, 8, res.IC, 1e-12)
	assert.Equal(t, "ACGT", dna.BasesToString(res.Motifs[0]))
	assert.Equal(t, "ACGT", dna.BasesToString(res.Motifs[1]))
	assert.Contains(t, res.String(), "Motif Found: ACGT")
	assert.Contains(t, res.Verbose(), "Position Weight Matrix")
}

func TestGreedyMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 10; trial++ {
		seqs := randomSeqs(rng, 2, 12)
		const l = 4
		bg, err := motif.BaseProbabilities(seqs)
		require.NoError(t, err)

		highest := math.Inf(-1)
		for i := 0; i+l <= len(seqs[0]); i++ {
			for j := 0; j+l <= len(seqs[1]); j++ {
				ic, err := motif.Score([][]dna.Base{seqs[0][i : i+l], seqs[1][j : j+l]}, bg, l)
				require.NoError(t, err)
				highest = math.Max(highest, ic)
			}
		}

		res, err := Greedy(context.Background(), seqs, opts(l))
		require.NoError(t, err)
		assert.InDelta(t, highest, res.IC, 1e-12, "trial %d", trial)
	}
}

func TestGreedyExtension(t *testing.T) {
	seqs := toBases("TTGATTACATT", "GATTACACCCC", "CCCCGATTACA", "AGATTACAAAA")
	res, err := Greedy(context.Background(), seqs, opts(7))
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", res.Consensus)
	assert.Equal(t, []int{2, 0, 4, 1}, res.Starts)
	assert.Len(t, res.Motifs, len(seqs))
}

func TestBeamWidthOneIsGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		seqs := randomSeqs(rng, 5, 20)
		o := opts(5)
		o.Width = 1

		g, err := Greedy(context.Background(), seqs, o)
		require.NoError(t, err)
		b, err := Beam(context.Background(), seqs, o)
		require.NoError(t, err)

		assert.Equal(t, g.Starts, b.Starts, "trial %d", trial)
		assert.Equal(t, g.Consensus, b.Consensus)
		assert.Equal(t, g.IC, b.IC)
	}
}

func TestBeamFindsPlantedMotif(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seqs := randomSeqs(rng, 6, 40)
	plant(rng, seqs, "TGACGTCA")

	o := opts(8)
	o.Width = 10
	res, err := Beam(context.Background(), seqs, o)
	require.NoError(t, err)
	assert.Len(t, res.Starts, len(seqs))

	assert.Len(t, res.Consensus, 8)
	assert.Greater(t, res.IC, 0.0)
}

func TestParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	seqs := randomSeqs(rng, 5, 30)
	serial := opts(5)
	serial.Width = 3
	parallel := serial
	parallel.Workers = 4

	for _, fn := range []func(context.Context, [][]dna.Base, Options) (Result, error){Greedy, Beam} {
		a, err := fn(context.Background(), seqs, serial)
		require.NoError(t, err)
		b, err := fn(context.Background(), seqs, parallel)
		require.NoError(t, err)
		assert.Equal(t, a.Starts, b.Starts)
		assert.Equal(t, a.IC, b.IC)
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seqs := toBases("ACGTACGT", "TACGTACG", "GGGACGTT")

	_, err := Greedy(ctx, seqs, opts(4))
	assert.True(t, errors.Is(err, context.Canceled))
	_, err = Beam(ctx, seqs, opts(4))
	assert.True(t, errors.Is(err, context.Canceled))

	o := opts(4)
	o.Seed = 1
	_, err = Gibbs(ctx, seqs, o)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGibbsNoSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	seqs := randomSeqs(rng, 4, 25)

	o := opts(6)
	o.Samples = 0
	o.Source = rand.NewSource(99)
	res, err := Gibbs(context.Background(), seqs, o)
	require.NoError(t, err)

	// replay the initial draws
	draws := rand.New(rand.NewSource(99))
	for i := range seqs {
		assert.Equal(t, draws.Intn(len(seqs[i])-6+1), res.Starts[i])
	}

	o.Init = InitGreedy
	res, err = Gibbs(context.Background(), seqs, o)
	require.NoError(t, err)
	g, err := Greedy(context.Background(), seqs, o)
	require.NoError(t, err)
	assert.Equal(t, g.Starts, res.Starts)
	assert.Equal(t, g.IC, res.IC)
}

func TestGibbsKeepsBest(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	// enough sequences that every column of the leave-one-out matrix sees most bases
	seqs := randomSeqs(rng, 12, 30)
	plant(rng, seqs, "CACGTG")

	o := opts(6)
	o.Seed = 42
	o.Samples = 0
	initial, err := Gibbs(context.Background(), seqs, o)
	require.NoError(t, err)

	o.Samples = 300
	res, err := Gibbs(context.Background(), seqs, o)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.IC, initial.IC)

	// same seed, same answer
	again, err := Gibbs(context.Background(), seqs, o)
	require.NoError(t, err)
	assert.Equal(t, res.Starts, again.Starts)
}

func TestGibbsZeroLikelihood(t *testing.T) {
	seqs := toBases("AAAA", "CCCC")
	o := opts(4)
	o.Samples = 1
	o.Seed = 7
	_, err := Gibbs(context.Background(), seqs, o)
	assert.True(t, errors.Is(err, ErrZeroLikelihood))
}

func TestSample(t *testing.T) {
	probs := []float64{0.2, 0.3, 0.5}
	assert.Equal(t, 0, Sample(probs, 0))
	assert.Equal(t, 0, Sample(probs, 0.19))
	assert.Equal(t, 1, Sample(probs, 0.25))
	assert.Equal(t, 2, Sample(probs, 0.999))

	// zero probability positions are never chosen
	assert.Equal(t, 1, Sample([]float64{0, 1}, 0))

	// the running sum undershoots the draw
	assert.Equal(t, 2, Sample([]float64{0.3, 0.3, 0.3999999}, 0.99999999))
	assert.Equal(t, 1, Sample([]float64{0.4, 0.4, 0}, 0.9))

	assert.Equal(t, -1, Sample(nil, 0.5))
	assert.Equal(t, -1, Sample([]float64{0, 0}, 0.5))
}

func TestParseInit(t *testing.T) {
	i, err := ParseInit("greedy")
	require.NoError(t, err)
	assert.Equal(t, InitGreedy, i)
	assert.Equal(t, "greedy", i.String())

	i, err = ParseInit("random")
	require.NoError(t, err)
	assert.Equal(t, InitRandom, i)

	_, err = ParseInit("annealing")
	assert.True(t, errors.Is(err, ErrBadInit))
}
