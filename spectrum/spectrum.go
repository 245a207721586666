// Package spectrum summarizes a canonical k-mer table as a multiplicity
// histogram (how many distinct k-mers occur once, twice, ...) with summary
// statistics and plots.
package spectrum

import (
	"errors"
	"fmt"
	"github.com/dasnellings/kmerTools/kmer"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/numbers"
	"gonum.org/v1/gonum/stat"
	"math"
	"strings"
)

// MaxAbsentK is the largest k for which absent k-mers are enumerated.
const MaxAbsentK = 10

// AsciiWidth is the most columns Ascii spends on the plot itself. Longer
// histograms are resampled to fit.
const AsciiWidth = 80

// ErrEmptySpectrum is returned when plotting a spectrum with no observed k-mers.
var ErrEmptySpectrum = errors.New("spectrum has no observed k-mers")

// Spectrum is the multiplicity histogram of a kmer.Table.
type Spectrum struct {
	K          int
	Windows    int
	Distinct   int
	Singletons int
	Histogram  []int // Histogram[c] is the number of distinct canonical k-mers seen exactly c times; Histogram[0] is unused
	Mean       float64
	StdDev     float64
	Entropy    float64 // Shannon entropy of the canonical k-mer distribution, in bits
	Absent     int     // possible canonical k-mers never seen, -1 if K > MaxAbsentK
}

// New builds the spectrum of t.
func New(t *kmer.Table) Spectrum {
	ans := Spectrum{
		K:        t.K(),
		Windows:  t.Windows(),
		Distinct: t.Len(),
		Absent:   -1,
	}
	ans.Histogram = make([]int, t.Max()+1)

	counts := t.Counts()
	x := make([]float64, len(counts))
	p := make([]float64, len(counts))
	for i, c := range counts {
		ans.Histogram[c]++
		x[i] = float64(c)
		p[i] = float64(c) / float64(ans.Windows)
	}
	if len(ans.Histogram) > 1 {
		ans.Singletons = ans.Histogram[1]
	}

	if len(x) > 0 {
		ans.Mean = stat.Mean(x, nil)
		ans.Entropy = stat.Entropy(p) / math.Ln2
	}
	if len(x) > 1 {
		ans.StdDev = stat.StdDev(x, nil)
	}

	if ans.K >= 1 && ans.K <= MaxAbsentK {
		ans.Absent = len(AbsentKmers(t))
	}
	return ans
}

// AbsentKmers lists, in lexicographic order, the canonical k-mers that could occur
// but were never seen in t. Returns nil if t.K() > MaxAbsentK.
func AbsentKmers(t *kmer.Table) []string {
	if t.K() > MaxAbsentK {
		return nil
	}
	var ans []string
	for _, c := range kmer.AllCanonical(t.K()) {
		if t.Get(c) == 0 {
			ans = append(ans, c)
		}
	}
	return ans
}

// String method for Spectrum enables easy writing with the fmt package.
// The summary is followed by one "count\tdistinct" row per nonzero histogram bin.
func (s Spectrum) String() string {
	answer := new(strings.Builder)
	fmt.Fprintf(answer, "k\t%d\n", s.K)
	fmt.Fprintf(answer, "windows\t%d\n", s.Windows)
	fmt.Fprintf(answer, "distinct\t%d\n", s.Distinct)
	fmt.Fprintf(answer, "singletons\t%d\n", s.Singletons)
	fmt.Fprintf(answer, "mean\t%.4g\n", s.Mean)
	fmt.Fprintf(answer, "stdev\t%.4g\n", s.StdDev)
	fmt.Fprintf(answer, "entropyBits\t%.4g\n", s.Entropy)
	if s.Absent >= 0 {
		fmt.Fprintf(answer, "absent\t%d\n", s.Absent)
	}
	answer.WriteString("#count\tdistinct\n")
	for c := 1; c < len(s.Histogram); c++ {
		if s.Histogram[c] == 0 {
			continue
		}
		fmt.Fprintf(answer, "%d\t%d\n", c, s.Histogram[c])
	}
	return answer.String()
}

// Ascii draws the histogram for terminal output. Returns an empty string if
// nothing was observed.
func (s Spectrum) Ascii(height int) string {
	if len(s.Histogram) < 2 {
		return ""
	}
	data := make([]float64, len(s.Histogram)-1)
	for i := range data {
		data[i] = float64(s.Histogram[i+1])
	}
	opts := []asciigraph.Option{
		asciigraph.Height(numbers.Max(height, 1)),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("distinct canonical %d-mers (y) by occurrences (x)", s.K)),
	}
	if len(data) > AsciiWidth {
		opts = append(opts, asciigraph.Width(AsciiWidth))
	}
	return asciigraph.Plot(data, opts...)
}
