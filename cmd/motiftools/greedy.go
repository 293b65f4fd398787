package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/motifTools/search"
	"github.com/vertgenlab/gonomics/exception"
)

func greedyUsage(greedyFlags *flag.FlagSet) {
	fmt.Print(
		"greedy - find a shared motif by greedy extension\n" +
			"\tScores every pair of motifs from the first two sequences, then adds the best motif from each following sequence.\n\n" +
			"Usage:\n" +
			"  motiftools greedy [options] -i input.fasta > motif.txt\n\n" +
			"Options:\n")
	greedyFlags.PrintDefaults()
}

func runGreedy(args []string) {
	var err error
	greedyFlags := flag.NewFlagSet("greedy", flag.ExitOnError)
	f := addSearchFlags(greedyFlags)

	err = greedyFlags.Parse(args)
	exception.PanicOnErr(err)
	greedyFlags.Usage = func() { greedyUsage(greedyFlags) }
	f.check(greedyFlags)

	runSearch("Greedy Search", search.Greedy, f, f.options())
}
