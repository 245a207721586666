package pattern

import (
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// GoReadToChan streams the patterns listed in file, one per line. Each line is
// normalized (whitespace removed, uppercased) and blank lines are skipped.
// Patterns are not validated here.
func GoReadToChan(file string) <-chan string {
	ans := make(chan string, 1000)
	go readToChan(file, ans)
	return ans
}

func readToChan(file string, c chan<- string) {
	input := fileio.EasyOpen(file)
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(input); !done; line, done = fileio.EasyNextRealLine(input) {
		line = alphabet.Normalize(line)
		if line == "" {
			continue
		}
		c <- line
	}
	err := input.Close()
	exception.PanicOnErr(err)
	close(c)
}
