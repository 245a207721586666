package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/kmerTools/kmer"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

func frequentUsage(frequentFlags *flag.FlagSet) {
	fmt.Print(
		"frequent - find the most frequent k-mers, counting each k-mer together with its reverse complement\n" +
			"\tEach k-mer is reported in canonical form, the alphabetically smaller of the k-mer and its reverse complement.\n" +
			"\tTies are reported in the order they first occur in the genome.\n\n" +
			"Usage:\n" +
			"  kmertools frequent [options] -g genome.txt -k 4 > mostFrequent.txt\n\n" +
			"Options:\n")
	frequentFlags.PrintDefaults()
}

func runFrequent(args []string) {
	var err error
	frequentFlags := flag.NewFlagSet("frequent", flag.ExitOnError)

	genomeFile := frequentFlags.String("g", "", "Genome file, plain text or single-record FASTA. May be gzipped.")
	k := frequentFlags.Int("k", 0, "Length of k-mers. Must be between 1 and the genome length.")
	output := frequentFlags.String("o", "stdout", "Output file with one k-mer per line.")
	top := frequentFlags.Int("top", 0, "Instead of the most frequent k-mers, output the top N k-mers with counts (kmer<tab>count).")
	table := frequentFlags.String("table", "", "Output the count of every canonical k-mer (kmer<tab>count) to this file.")
	fastaOut := frequentFlags.String("fasta", "", "Also output the most frequent k-mers as FASTA records.")
	verbose := frequentFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = frequentFlags.Parse(args)
	exception.PanicOnErr(err)
	frequentFlags.Usage = func() { frequentUsage(frequentFlags) }

	if *genomeFile == "" || *k == 0 {
		frequentFlags.Usage()
		errExit("\nERROR: must have inputs for -g and -k")
	}

	g := readGenome(*genomeFile, *verbose)
	if *k < 1 || *k > g.Len() {
		errExit(fmt.Sprintf("ERROR: %s: k=%d, must be between 1 and %d", kmer.ErrKOutOfRange, *k, g.Len()))
	}

	tbl := kmer.Tally(g.Seq, *k)
	if *verbose > 0 {
		log.Printf("counted %d windows, %d distinct canonical %d-mers, max count %d\n", tbl.Windows(), tbl.Len(), *k, tbl.Max())
	}

	out := fileio.EasyCreate(*output)
	defer cleanup(out)

	mostFrequent := tbl.MostFrequent()
	if *top > 0 {
		for _, c := range tbl.Top(*top) {
			_, err = fmt.Fprintln(out, c)
			exception.PanicOnErr(err)
		}
	} else {
		for i := range mostFrequent {
			_, err = fmt.Fprintln(out, mostFrequent[i])
			exception.PanicOnErr(err)
		}
	}

	if *table != "" {
		tableOut := fileio.EasyCreate(*table)
		tbl.WriteTsv(tableOut)
		cleanup(tableOut)
	}

	if *fastaOut != "" {
		fasta.Write(*fastaOut, kmersToFasta(g.Name, mostFrequent, tbl))
	}
}

// kmersToFasta names each record <genome>_<kmer number>_count<count>.
func kmersToFasta(genomeName string, kmers []string, tbl *kmer.Table) []fasta.Fasta {
	ans := make([]fasta.Fasta, len(kmers))
	for i := range kmers {
		ans[i] = fasta.Fasta{
			Name: fmt.Sprintf("%s_%d_count%d", genomeName, i+1, tbl.Get(kmers[i])),
			Seq:  dna.StringToBases(kmers[i]),
		}
	}
	return ans
}
