package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/motifTools/search"
	"github.com/vertgenlab/gonomics/exception"
)

func gibbsUsage(gibbsFlags *flag.FlagSet) {
	fmt.Print(
		"gibbs - find a shared motif by gibbs sampling\n" +
			"\tRepeatedly resamples the motif of one random sequence given the motifs of all others and reports the best set seen.\n\n" +
			"Usage:\n" +
			"  motiftools gibbs [options] -i input.fasta > motif.txt\n\n" +
			"Options:\n")
	gibbsFlags.PrintDefaults()
}

func runGibbs(args []string) {
	var err error
	gibbsFlags := flag.NewFlagSet("gibbs", flag.ExitOnError)
	f := addSearchFlags(gibbsFlags)
	samples := gibbsFlags.Int("t", search.DefaultSamples, "Number of sampling iterations.")
	initMode := gibbsFlags.String("init", "random", "Starting motifs. 'random' picks a random motif in each sequence, 'greedy' starts from the greedy search result.")
	seed := gibbsFlags.Uint64("seed", 0, "Seed for the random number generator. 0 seeds from the clock.")

	err = gibbsFlags.Parse(args)
	exception.PanicOnErr(err)
	gibbsFlags.Usage = func() { gibbsUsage(gibbsFlags) }
	f.check(gibbsFlags)

	if *samples < 0 {
		gibbsFlags.Usage()
		errExit("\nERROR: -t must be >= 0")
	}

	opts := f.options()
	opts.Samples = *samples
	opts.Seed = *seed
	opts.Init, err = search.ParseInit(*initMode)
	if err != nil {
		gibbsFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	runSearch("Gibbs Sampling", search.Gibbs, f, opts,
		fmt.Sprintf("Number of Samples: %d", *samples),
		fmt.Sprintf("Initialization: %s", opts.Init))
}
