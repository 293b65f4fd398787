package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/motifTools/search"
	"github.com/vertgenlab/gonomics/exception"
)

func beamUsage(beamFlags *flag.FlagSet) {
	fmt.Print(
		"beam - find a shared motif by beam search\n" +
			"\tLike greedy, but keeps the K best partial alignments after each sequence is added instead of only the best.\n\n" +
			"Usage:\n" +
			"  motiftools beam [options] -i input.fasta > motif.txt\n\n" +
			"Options:\n")
	beamFlags.PrintDefaults()
}

func runBeam(args []string) {
	var err error
	beamFlags := flag.NewFlagSet("beam", flag.ExitOnError)
	f := addSearchFlags(beamFlags)
	width := beamFlags.Int("k", search.DefaultWidth, "Number of partial alignments kept at each step.")

	err = beamFlags.Parse(args)
	exception.PanicOnErr(err)
	beamFlags.Usage = func() { beamUsage(beamFlags) }
	f.check(beamFlags)

	if *width < 1 {
		beamFlags.Usage()
		errExit("\nERROR: -k must be >= 1")
	}

	opts := f.options()
	opts.Width = *width
	runSearch("Beam Search", search.Beam, f, opts, fmt.Sprintf("K: %d", *width))
}
