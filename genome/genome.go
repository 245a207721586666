// Package genome reads a genome sequence from a plain text or single-record
// FASTA file and prepares it for the query packages: whitespace is removed, bases
// are uppercased and the result is checked against the A, C, G, T alphabet.
package genome

import (
	"errors"
	"fmt"
	"github.com/dasnellings/kmerTools/alphabet"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned by Read when the input file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrMultipleRecords is returned for FASTA input holding more than one record.
	ErrMultipleRecords = errors.New("fasta file has more than one record")
	// ErrUnreadable is returned when the input exists but cannot be read as a file.
	ErrUnreadable = errors.New("file cannot be read")
)

// Genome is a validated sequence and the name it was read under.
type Genome struct {
	Name string
	Seq  string
}

// Len returns the number of bases in g.
func (g Genome) Len() int {
	return len(g.Seq)
}

// String method for Genome enables easy writing with the fmt package.
func (g Genome) String() string {
	return fmt.Sprintf("%s\t%d", g.Name, len(g.Seq))
}

// Read reads filename, which may be gzipped. Plain text input is named after the
// file; FASTA input is named after its header line.
func Read(filename string) (Genome, error) {
	info, err := os.Stat(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Genome{}, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	if err != nil {
		return Genome{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, filename, err)
	}
	if info.IsDir() {
		return Genome{}, fmt.Errorf("%w: %s is a directory", ErrUnreadable, filename)
	}
	if err = checkOpen(filename); err != nil {
		return Genome{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	file := fileio.EasyOpen(filename)
	p := newParser(baseName(filename))
	var line string
	var done bool
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		if err = p.addLine(line); err != nil {
			break
		}
	}
	exception.PanicOnErr(file.Close())
	if err != nil {
		return Genome{}, fmt.Errorf("%s: %w", filename, err)
	}

	ans, err := p.finish()
	if err != nil {
		return Genome{}, fmt.Errorf("%s: %w", filename, err)
	}
	return ans, nil
}

// checkOpen reports whether filename can be opened for reading. fileio.EasyOpen
// panics on failure, so permissions are checked first.
func checkOpen(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	return f.Close()
}

// FromString applies the same parsing and validation as Read to raw.
func FromString(name, raw string) (Genome, error) {
	p := newParser(name)
	for _, line := range strings.Split(raw, "\n") {
		if err := p.addLine(line); err != nil {
			return Genome{}, err
		}
	}
	return p.finish()
}

// parser accumulates normalized sequence lines. The first non-blank line decides
// whether the input is FASTA.
type parser struct {
	name    string
	started bool
	fasta   bool
	seq     *strings.Builder
}

func newParser(name string) *parser {
	return &parser{name: name, seq: new(strings.Builder)}
}

func (p *parser) addLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if !p.started {
		if trimmed == "" {
			return nil
		}
		p.started = true
		if strings.HasPrefix(trimmed, ">") {
			p.fasta = true
			if header := strings.TrimSpace(trimmed[1:]); header != "" {
				p.name = strings.Fields(header)[0]
			}
			return nil
		}
	}
	if p.fasta && strings.HasPrefix(trimmed, ">") {
		return ErrMultipleRecords
	}
	p.seq.WriteString(alphabet.Normalize(line))
	return nil
}

func (p *parser) finish() (Genome, error) {
	seq := p.seq.String()
	if err := alphabet.CheckNonEmpty(seq); err != nil {
		return Genome{}, err
	}
	return Genome{Name: p.name, Seq: seq}, nil
}

// baseName strips the directory, a trailing .gz, and one more extension.
func baseName(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), ".gz")
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
