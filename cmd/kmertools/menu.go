package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/menu"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func menuUsage(menuFlags *flag.FlagSet) {
	fmt.Print(
		"menu - interactive menu for reverse complements, pattern counts, and most frequent k-mers\n" +
			"\tIf -g is not given, the genome file name is asked for on stdin.\n\n" +
			"Usage:\n" +
			"  kmertools menu [-g genome.txt]\n\n" +
			"Options:\n")
	menuFlags.PrintDefaults()
}

func runMenu(args []string) {
	var err error
	menuFlags := flag.NewFlagSet("menu", flag.ExitOnError)

	genomeFile := menuFlags.String("g", "", "Genome file, plain text or single-record FASTA. May be gzipped.")
	verbose := menuFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = menuFlags.Parse(args)
	exception.PanicOnErr(err)
	menuFlags.Usage = func() { menuUsage(menuFlags) }

	if *genomeFile == "" {
		menu.Start(os.Stdin, os.Stdout)
		return
	}

	menu.Run(readGenome(*genomeFile, *verbose), os.Stdin, os.Stdout)
}
