package kmer

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"io"
	"sort"
)

// Table holds the count of each canonical k-mer observed in a sequence.
// Keys are kept in the order they were first seen.
type Table struct {
	k       int
	windows int
	counts  map[string]int
	order   []string
}

// Count pairs a canonical k-mer with its number of occurrences.
type Count struct {
	Kmer  string
	Count int
}

// String method for Count enables easy writing with the fmt package.
func (c Count) String() string {
	return fmt.Sprintf("%s\t%d", c.Kmer, c.Count)
}

// Tally counts the canonical form of every length-k window of genome
// (len(genome)-k+1 overlapping windows). An empty table is returned if there are
// no windows.
func Tally(genome string, k int) *Table {
	ans := &Table{
		k:      k,
		counts: make(map[string]int),
	}
	if k < 1 || k > len(genome) {
		return ans
	}

	var key string
	var found bool
	for i := 0; i+k <= len(genome); i++ {
		key = Canonical(genome[i : i+k])
		if _, found = ans.counts[key]; !found {
			ans.order = append(ans.order, key)
		}
		ans.counts[key]++
		ans.windows++
	}
	return ans
}

// K returns the k-mer length of the table.
func (t *Table) K() int {
	return t.k
}

// Len returns the number of distinct canonical k-mers.
func (t *Table) Len() int {
	return len(t.order)
}

// Windows returns the number of windows tallied. It equals the sum of all counts.
func (t *Table) Windows() int {
	return t.windows
}

// Get returns the count for kmer. kmer is canonicalized first, so a k-mer and its
// reverse complement give the same answer.
func (t *Table) Get(kmer string) int {
	return t.counts[Canonical(kmer)]
}

// Max returns the largest count in the table, or 0 for an empty table.
func (t *Table) Max() int {
	var ans int
	for _, v := range t.counts {
		if v > ans {
			ans = v
		}
	}
	return ans
}

// Keys returns the canonical k-mers in first-occurrence order.
func (t *Table) Keys() []string {
	return slices.Clone(t.order)
}

// Counts returns the count of each key, in the same order as Keys.
func (t *Table) Counts() []int {
	ans := make([]int, len(t.order))
	for i := range t.order {
		ans[i] = t.counts[t.order[i]]
	}
	return ans
}

// Map returns a copy of the underlying counts.
func (t *Table) Map() map[string]int {
	return maps.Clone(t.counts)
}

// MostFrequent returns the keys whose count equals Max, in first-occurrence order.
func (t *Table) MostFrequent() []string {
	maxCount := t.Max()
	if maxCount == 0 {
		return nil
	}
	var ans []string
	for _, key := range t.order {
		if t.counts[key] == maxCount {
			ans = append(ans, key)
		}
	}
	return ans
}

// Top returns the n most frequent k-mers, by count descending. Equal counts keep
// first-occurrence order. n <= 0 or n > Len returns every k-mer.
func (t *Table) Top(n int) []Count {
	ans := make([]Count, len(t.order))
	for i, key := range t.order {
		ans[i] = Count{Kmer: key, Count: t.counts[key]}
	}
	sort.SliceStable(ans, func(i, j int) bool {
		return ans[i].Count > ans[j].Count
	})
	if n > 0 && n < len(ans) {
		ans = ans[:n]
	}
	return ans
}

// WriteTsv writes one "kmer\tcount" line per key in first-occurrence order.
func (t *Table) WriteTsv(out io.Writer) {
	var err error
	for _, key := range t.order {
		_, err = fmt.Fprintf(out, "%s\t%d\n", key, t.counts[key])
		exception.PanicOnErr(err)
	}
}
