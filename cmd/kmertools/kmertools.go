package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/genome"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to kmertools by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"revcomp", runRevcomp, "reverse complement of one or more patterns"},
	{"count", runCount, "count a pattern and its reverse complement in a genome"},
	{"frequent", runFrequent, "find the most frequent canonical k-mers in a genome"},
	{"spectrum", runSpectrum, "summarize and plot the canonical k-mer spectrum"},
	{"menu", runMenu, "interactive menu over a genome file"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: kmertools (pattern counting and k-mer frequency for DNA sequences)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tkmertools <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// readGenome reads and validates the genome for a subcommand, exiting on failure.
func readGenome(file string, verbose int) genome.Genome {
	g, err := genome.Read(file)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if verbose > 0 {
		log.Printf("read %d bases from %s (%s)\n", g.Len(), file, g.Name)
	}
	return g
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
