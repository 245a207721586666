package pattern

import (
	"fmt"
	"github.com/vertgenlab/gonomics/bed"
	"io"
)

// WriteBed writes each match as a BED4 record on chrom. The name field is the
// query pattern followed by the matching strand, e.g. ACG(-).
func WriteBed(out io.Writer, chrom, pattern string, matches []Match) {
	var curr bed.Bed
	curr.FieldsInitialized = 4
	curr.Chrom = chrom
	for i := range matches {
		curr.ChromStart = matches[i].Pos
		curr.ChromEnd = matches[i].Pos + len(pattern)
		curr.Name = fmt.Sprintf("%s(%c)", pattern, matches[i].Strand)
		bed.WriteBed(out, curr)
	}
}
