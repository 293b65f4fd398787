package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/dasnellings/motifTools/motif"
	"github.com/dasnellings/motifTools/search"
	"github.com/dasnellings/motifTools/seqio"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

// searchFlags are the options shared by greedy, beam, and gibbs.
type searchFlags struct {
	input      *string
	output     *string
	length     *int
	threads    *int
	timeout    *time.Duration
	verbose    *int
	cpuprofile *string
}

func addSearchFlags(fs *flag.FlagSet) *searchFlags {
	return &searchFlags{
		input:      fs.String("i", "", "Input fasta file of sequences to search. Sequences must only contain A, C, G, and T (any case)."),
		output:     fs.String("o", "stdout", "Output file for the motif found."),
		length:     fs.Int("l", search.DefaultLength, "Motif length. Must be <= the length of the shortest input sequence."),
		threads:    fs.Int("threads", 1, "Number of threads used to score candidate motifs. Results do not depend on the number of threads."),
		timeout:    fs.Duration("timeout", 0, "Abort the search after this long (e.g. 10m). 0 for no limit."),
		verbose:    fs.Int("v", 0, "Verbose output by setting to >0. Prints the motif from each sequence and the profile and position weight matrices."),
		cpuprofile: fs.String("cpuprofile", "", "write cpu profile"),
	}
}

// check exits with usage if a required value is missing or invalid.
func (f *searchFlags) check(fs *flag.FlagSet) {
	if *f.input == "" {
		fs.Usage()
		errExit("\nERROR: must have input fasta file for -i")
	}
	if *f.length <= 0 {
		fs.Usage()
		errExit("\nERROR: -l must be > 0")
	}
	if *f.threads < 1 {
		fs.Usage()
		errExit("\nERROR: threads must be >= 1")
	}
}

func (f *searchFlags) options() search.Options {
	opts := search.DefaultOptions()
	opts.Length = *f.length
	opts.Workers = *f.threads
	return opts
}

type searchFunc func(context.Context, [][]dna.Base, search.Options) (search.Result, error)

// runSearch loads the input, runs fn, and writes the result. banner lines
// describing algorithm specific parameters are logged before the search starts.
func runSearch(name string, fn searchFunc, f *searchFlags, opts search.Options, banner ...string) {
	if *f.cpuprofile != "" {
		prof, err := os.Create(*f.cpuprofile)
		if err != nil {
			errExit(err.Error())
		}
		defer prof.Close()
		if err = pprof.StartCPUProfile(prof); err != nil {
			errExit(err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	log.Println("Loading DNA sequences.")
	seqs, err := seqio.Read(*f.input)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	log.Printf("Beginning %s Algorithm for Motif Finding\n", name)
	log.Printf("    Motif Length: %d\n", opts.Length)
	log.Printf("    Number of Sequences: %d\n", len(seqs))
	for i := range banner {
		log.Println("    " + banner[i])
	}

	ctx := context.Background()
	if *f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *f.timeout)
		defer cancel()
	}

	res, err := fn(ctx, seqs, opts)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %s failed: %s", name, err))
	}
	log.Printf("%s Complete.\n", name)

	out := fileio.EasyCreate(*f.output)
	fmt.Fprintln(out, res)
	if *f.verbose > 0 {
		fmt.Fprint(out, res.Verbose())
		writeMatches(out, seqs, res.Consensus)
	}
	err = out.Close()
	exception.PanicOnErr(err)
}

// writeMatches lists where the consensus occurs exactly in each sequence.
func writeMatches(out io.Writer, seqs [][]dna.Base, consensus string) {
	pattern := dna.StringToBases(consensus)
	fmt.Fprintln(out, "Exact Consensus Matches:")
	for i := range seqs {
		fmt.Fprintf(out, "%d\t%v\n", i, motif.Find(seqs[i], pattern))
	}
}
