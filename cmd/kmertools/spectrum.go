package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/kmer"
	"github.com/dasnellings/kmerTools/spectrum"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"os"
)

func spectrumUsage(spectrumFlags *flag.FlagSet) {
	fmt.Print(
		"spectrum - summarize how often canonical k-mers recur in a genome\n\n" +
			"Usage:\n" +
			"  kmertools spectrum [options] -g genome.txt -k 4 -plot spectrum.png > summary.tsv\n\n" +
			"Options:\n")
	spectrumFlags.PrintDefaults()
}

func runSpectrum(args []string) {
	var err error
	spectrumFlags := flag.NewFlagSet("spectrum", flag.ExitOnError)

	genomeFile := spectrumFlags.String("g", "", "Genome file, plain text or single-record FASTA. May be gzipped.")
	k := spectrumFlags.Int("k", 0, "Length of k-mers. Must be between 1 and the genome length.")
	output := spectrumFlags.String("o", "stdout", "Output summary file.")
	plotFile := spectrumFlags.String("plot", "", "Save a bar chart of the spectrum. Format is taken from the extension (png, pdf, svg).")
	ascii := spectrumFlags.Bool("ascii", false, "Draw the spectrum in the terminal (written to stderr).")
	absent := spectrumFlags.String("absent", "", fmt.Sprintf("Output the canonical k-mers never observed to this file. Only for k <= %d.", spectrum.MaxAbsentK))
	verbose := spectrumFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = spectrumFlags.Parse(args)
	exception.PanicOnErr(err)
	spectrumFlags.Usage = func() { spectrumUsage(spectrumFlags) }

	if *genomeFile == "" || *k == 0 {
		spectrumFlags.Usage()
		errExit("\nERROR: must have inputs for -g and -k")
	}
	if *absent != "" && *k > spectrum.MaxAbsentK {
		errExit(fmt.Sprintf("ERROR: -absent requires k <= %d", spectrum.MaxAbsentK))
	}

	g := readGenome(*genomeFile, *verbose)
	if *k < 1 || *k > g.Len() {
		errExit(fmt.Sprintf("ERROR: %s: k=%d, must be between 1 and %d", kmer.ErrKOutOfRange, *k, g.Len()))
	}

	tbl := kmer.Tally(g.Seq, *k)
	s := spectrum.New(tbl)

	out := fileio.EasyCreate(*output)
	defer cleanup(out)
	_, err = fmt.Fprint(out, s)
	exception.PanicOnErr(err)

	if *ascii {
		_, err = fmt.Fprintln(os.Stderr, s.Ascii(10))
		exception.PanicOnErr(err)
	}

	if *plotFile != "" {
		err = spectrum.SavePlot(s, *plotFile)
		exception.PanicOnErr(err)
		if *verbose > 0 {
			log.Println("saved spectrum plot to", *plotFile)
		}
	}

	if *absent != "" {
		absentOut := fileio.EasyCreate(*absent)
		for _, a := range spectrum.AbsentKmers(tbl) {
			_, err = fmt.Fprintln(absentOut, a)
			exception.PanicOnErr(err)
		}
		cleanup(absentOut)
	}
}
