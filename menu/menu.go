// Package menu runs the interactive reverse complement / count / most frequent
// k-mer menu over a genome, reading choices from an io.Reader.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/dasnellings/kmerTools/genome"
	"github.com/dasnellings/kmerTools/kmer"
	"github.com/dasnellings/kmerTools/pattern"
	"github.com/dasnellings/kmerTools/revcomp"
	"io"
	"strconv"
	"strings"
)

const menuText = "\nMenu:\n" +
	"1. Compute a reverse complement of a k-mer pattern\n" +
	"2. Count a k-mer pattern\n" +
	"3. Find most frequent k-mer patterns\n" +
	"4. Exit\n"

// Start asks for the genome file name on in, reads it, and runs the menu.
// Missing, unreadable or invalid genomes are reported on out and end the
// session. A file with no bases ends it without a message.
func Start(in io.Reader, out io.Writer) {
	sc := newScanner(in)
	fmt.Fprint(out, "Enter the filename containing the genome string: ")
	filename, ok := nextLine(sc)
	if !ok {
		fmt.Fprintln(out)
		return
	}

	g, err := genome.Read(strings.TrimSpace(filename))
	switch {
	case errors.Is(err, genome.ErrNotFound):
		fmt.Fprintln(out, "File not found.")
		return
	case errors.Is(err, genome.ErrUnreadable):
		fmt.Fprintln(out, "Unable to read the file.")
		return
	case errors.Is(err, alphabet.ErrEmpty):
		return
	case err != nil:
		fmt.Fprintln(out, "Invalid genome sequence in the file.")
		return
	}
	run(g, sc, out)
}

// Run shows the menu for g until the user exits or in is exhausted.
func Run(g genome.Genome, in io.Reader, out io.Writer) {
	run(g, newScanner(in), out)
}

func run(g genome.Genome, sc *bufio.Scanner, out io.Writer) {
	var choice string
	var ok bool
	for {
		fmt.Fprint(out, menuText)
		fmt.Fprint(out, "Enter your choice (1-4): ")
		if choice, ok = nextLine(sc); !ok {
			fmt.Fprintln(out, "\nExiting the program.")
			return
		}

		switch choice {
		case "1":
			p, valid := readPattern(sc, out)
			if !valid {
				continue
			}
			fmt.Fprintln(out, "Reverse complement:", revcomp.ReverseComplement(p))

		case "2":
			p, valid := readPattern(sc, out)
			if !valid {
				continue
			}
			fmt.Fprintln(out, "Count:", pattern.Count(g.Seq, p))

		case "3":
			fmt.Fprint(out, "Enter the value of k: ")
			line, _ := nextLine(sc)
			if !isDigits(line) {
				fmt.Fprintln(out, "Invalid input.")
				continue
			}
			k, err := strconv.Atoi(line)
			if err != nil || k <= 0 || k > g.Len() {
				fmt.Fprintln(out, "Invalid k value.")
				continue
			}
			fmt.Fprintln(out, "Most frequent k-mers:")
			for _, s := range kmer.MostFrequent(g.Seq, k) {
				fmt.Fprintln(out, s)
			}

		case "4":
			fmt.Fprintln(out, "Exiting the program.")
			return

		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}

// readPattern prompts for a pattern, uppercases it, and reports whether it is a
// non-empty A, C, G, T string. Surrounding whitespace is not removed.
func readPattern(sc *bufio.Scanner, out io.Writer) (string, bool) {
	fmt.Fprint(out, "Enter the k-mer pattern: ")
	line, _ := nextLine(sc)
	p := strings.ToUpper(line)
	if p == "" || !alphabet.IsValid(p) {
		fmt.Fprintln(out, "Invalid pattern input.")
		return "", false
	}
	return p, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func newScanner(in io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	return sc
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(sc.Text(), "\r"), true
}
