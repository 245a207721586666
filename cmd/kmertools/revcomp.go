package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/pattern"
	"github.com/dasnellings/kmerTools/revcomp"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
)

func revcompUsage(revcompFlags *flag.FlagSet) {
	fmt.Print(
		"revcomp - print the reverse complement of each input pattern\n\n" +
			"Usage:\n" +
			"  kmertools revcomp [options] -p GATTACA\n" +
			"  kmertools revcomp [options] -i patterns.txt > output.txt\n\n" +
			"Options:\n")
	revcompFlags.PrintDefaults()
}

func runRevcomp(args []string) {
	var err error
	revcompFlags := flag.NewFlagSet("revcomp", flag.ExitOnError)

	single := revcompFlags.String("p", "", "Pattern to reverse complement. Case and whitespace are ignored.")
	input := revcompFlags.String("i", "", "File with one pattern per line. May be gzipped.")
	output := revcompFlags.String("o", "stdout", "Output file.")

	err = revcompFlags.Parse(args)
	exception.PanicOnErr(err)
	revcompFlags.Usage = func() { revcompUsage(revcompFlags) }

	if (*single == "") == (*input == "") {
		revcompFlags.Usage()
		errExit("\nERROR: must have exactly one of -p or -i")
	}

	patterns := patternSource(*single, *input)
	out := fileio.EasyCreate(*output)
	err = revcompPatterns(patterns, out)
	cleanup(out)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}

// revcompPatterns writes the reverse complement of each pattern to out, stopping
// at the first invalid pattern.
func revcompPatterns(patterns <-chan string, out io.Writer) error {
	var err error
	for p := range patterns {
		if err = alphabet.CheckNonEmpty(p); err != nil {
			drain(patterns)
			return fmt.Errorf("invalid pattern %s: %w", p, err)
		}
		_, err = fmt.Fprintln(out, revcomp.ReverseComplement(p))
		exception.PanicOnErr(err)
	}
	return nil
}

// patternSource returns a channel carrying either the single pattern given
// on the command line or the patterns listed in file.
func patternSource(single, file string) <-chan string {
	if file != "" {
		return pattern.GoReadToChan(file)
	}
	c := make(chan string, 1)
	c <- alphabet.Normalize(single)
	close(c)
	return c
}

// drain empties c so the goroutine feeding it can finish.
func drain(c <-chan string) {
	for range c {
	}
}
