package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/genome"
	"github.com/dasnellings/kmerTools/pattern"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
)

func countUsage(countFlags *flag.FlagSet) {
	fmt.Print(
		"count - count overlapping occurrences of a pattern or its reverse complement in a genome\n\n" +
			"Usage:\n" +
			"  kmertools count [options] -g genome.txt -p GATTACA\n" +
			"  kmertools count [options] -g genome.fa -i patterns.txt -bed matches.bed > counts.tsv\n\n" +
			"Options:\n")
	countFlags.PrintDefaults()
}

func runCount(args []string) {
	var err error
	countFlags := flag.NewFlagSet("count", flag.ExitOnError)

	genomeFile := countFlags.String("g", "", "Genome file, plain text or single-record FASTA. May be gzipped.")
	single := countFlags.String("p", "", "Pattern to count. Case and whitespace are ignored.")
	input := countFlags.String("i", "", "File with one pattern per line. May be gzipped.")
	output := countFlags.String("o", "stdout", "Output file of pattern<tab>count lines.")
	bedFile := countFlags.String("bed", "", "Output a bed file with the position and strand of every match.")
	verbose := countFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = countFlags.Parse(args)
	exception.PanicOnErr(err)
	countFlags.Usage = func() { countUsage(countFlags) }

	if *genomeFile == "" || (*single == "") == (*input == "") {
		countFlags.Usage()
		errExit("\nERROR: must have an input for -g and exactly one of -p or -i")
	}

	g := readGenome(*genomeFile, *verbose)
	patterns := patternSource(*single, *input)

	out := fileio.EasyCreate(*output)
	var bedOut *fileio.EasyWriter
	var bedW io.Writer
	if *bedFile != "" {
		bedOut = fileio.EasyCreate(*bedFile)
		bedW = bedOut
	}

	err = countPatterns(g, patterns, out, bedW, *verbose)
	cleanup(out)
	if bedOut != nil {
		cleanup(bedOut)
	}
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}

// countPatterns writes a pattern<tab>count line to out for each pattern, and the
// matches to bedOut when it is not nil. It stops at the first invalid pattern,
// leaving the lines already written for earlier patterns in out.
func countPatterns(g genome.Genome, patterns <-chan string, out io.Writer, bedOut io.Writer, verbose int) error {
	var err error
	var n int
	var matches []pattern.Match
	for p := range patterns {
		if err = alphabet.CheckNonEmpty(p); err != nil {
			drain(patterns)
			return fmt.Errorf("invalid pattern %s: %w", p, err)
		}
		if len(p) > g.Len() && verbose > 0 {
			log.Printf("pattern %s is longer than the genome (%d > %d)\n", p, len(p), g.Len())
		}

		if bedOut != nil {
			matches = pattern.Find(g.Seq, p)
			pattern.WriteBed(bedOut, g.Name, p, matches)
			n = len(matches)
		} else {
			n = pattern.Count(g.Seq, p)
		}

		_, err = fmt.Fprintf(out, "%s\t%d\n", p, n)
		exception.PanicOnErr(err)
	}
	return nil
}
