package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/dasnellings/motifTools/experiment"
	"github.com/dasnellings/motifTools/search"
	"github.com/dasnellings/motifTools/seqio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"os"
	"strconv"
	"strings"
)

func sweepUsage(sweepFlags *flag.FlagSet) {
	fmt.Print(
		"sweep - characterize the motif searches over a grid of parameters\n" +
			"\tRuns greedy vs L, beam vs L and K, and gibbs vs L and T (random and greedy starts).\n" +
			"\tRecords information content and run time for each run.\n\n" +
			"Usage:\n" +
			"  motiftools sweep [options] -i input.fasta -plots plotDir > sweep.tsv\n\n" +
			"Options:\n")
	sweepFlags.PrintDefaults()
}

// intList is a comma separated list of integers that gets filled by flag.Parse()
type intList []int

// String to satisfy flag.Value interface
func (l *intList) String() string {
	s := make([]string, len(*l))
	for i := range *l {
		s[i] = strconv.Itoa((*l)[i])
	}
	return strings.Join(s, ",")
}

// Set to satisfy flag.Value interface
func (l *intList) Set(value string) error {
	var ans intList
	for _, word := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(word))
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("values must be >= 0, got %d", v)
		}
		ans = append(ans, v)
	}
	*l = ans
	return nil
}

func runSweep(args []string) {
	var err error
	sweepFlags := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfg := experiment.DefaultConfig()

	lengths, widths, samples := intList(cfg.Lengths), intList(cfg.Widths), intList(cfg.Samples)
	input := sweepFlags.String("i", "", "Input fasta file of sequences to search.")
	output := sweepFlags.String("o", "stdout", "Output TSV file with one line per sweep point.")
	plotDir := sweepFlags.String("plots", "", "Directory to write plots to. No plots are written if empty.")
	format := sweepFlags.String("format", "png", "Plot file format: png, pdf, svg, eps, jpg, or tif.")
	ascii := sweepFlags.Bool("ascii", false, "Draw each sweep to stderr as a terminal chart.")
	sweepFlags.Var(&lengths, "l", "Comma separated motif lengths to sweep.")
	sweepFlags.Var(&widths, "k", "Comma separated beam widths to sweep.")
	sweepFlags.Var(&samples, "t", "Comma separated gibbs sample counts to sweep.")
	fixedLength := sweepFlags.Int("fixedL", cfg.Length, "Motif length used when sweeping K or T.")
	fixedWidth := sweepFlags.Int("fixedK", cfg.Width, "Beam width used when sweeping L.")
	fixedSamples := sweepFlags.Int("fixedT", cfg.FixedSamples, "Gibbs sample count used when sweeping L.")
	replicates := sweepFlags.Int("replicates", cfg.Replicates, "Number of gibbs runs averaged for each point.")
	seed := sweepFlags.Uint64("seed", 0, "Seed of the first gibbs replicate. Replicate r uses seed+r. 0 seeds from the clock.")
	threads := sweepFlags.Int("threads", 1, "Number of threads used to score candidate motifs.")
	verbose := sweepFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = sweepFlags.Parse(args)
	exception.PanicOnErr(err)
	sweepFlags.Usage = func() { sweepUsage(sweepFlags) }

	if *input == "" {
		sweepFlags.Usage()
		errExit("\nERROR: must have input fasta file for -i")
	}
	if *fixedLength < 1 || *fixedWidth < 1 || *fixedSamples < 0 || *replicates < 1 || *threads < 1 {
		sweepFlags.Usage()
		errExit("\nERROR: -fixedL, -fixedK, -replicates, and -threads must be >= 1 and -fixedT must be >= 0")
	}
	if *plotDir != "" {
		err = os.MkdirAll(*plotDir, 0755)
		exception.PanicOnErr(err)
	}

	cfg.Lengths, cfg.Widths, cfg.Samples = lengths, widths, samples
	cfg.Length, cfg.Width, cfg.FixedSamples = *fixedLength, *fixedWidth, *fixedSamples
	cfg.Replicates, cfg.Seed, cfg.Workers, cfg.Verbose = *replicates, *seed, *threads, *verbose

	sweep(*input, *output, *plotDir, *format, *ascii, cfg)
}

func sweep(input, output, plotDir, format string, ascii bool, cfg experiment.Config) {
	log.Println("Loading DNA sequences.")
	seqs, err := seqio.Read(input)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if cfg.Length > seqio.MinLength(seqs) {
		errExit(fmt.Sprintf("ERROR: %s: -fixedL %d is longer than the shortest sequence (%d)", search.ErrBadLength, cfg.Length, seqio.MinLength(seqs)))
	}
	log.Printf("Sweeping %d sequences\n", len(seqs))

	sweeps, err := experiment.Run(context.Background(), seqs, cfg)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	out := fileio.EasyCreate(output)
	err = experiment.WriteTsv(out, sweeps)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)

	var filename string
	for _, s := range sweeps {
		for _, m := range experiment.Metrics {
			if ascii {
				fmt.Fprintln(os.Stderr, experiment.ASCII(s, m))
				fmt.Fprintln(os.Stderr)
			}
			if plotDir == "" {
				continue
			}
			filename, err = experiment.Save(s, m, plotDir, format)
			exception.PanicOnErr(err)
			if cfg.Verbose > 0 {
				log.Println("wrote", filename)
			}
		}
	}
}
