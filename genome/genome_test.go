package genome

import (
	"errors"
	"github.com/dasnellings/kmerTools/alphabet"
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		file string
		name string
		seq  string
	}{
		{"testdata/plain.txt", "plain", "GATTACAACGTACGTTT"},
		{"testdata/record.fa", "chrTest", "ACGTACGTACGT"},
		{"testdata/zipped.txt.gz", "zipped", "AAAACCCCGGGGTTTTAAAA"},
	}
	for _, test := range tests {
		g, err := Read(test.file)
		if err != nil {
			t.Errorf("Read(%s) returned error: %v", test.file, err)
			continue
		}
		if g.Name != test.name || g.Seq != test.seq {
			t.Errorf("Read(%s) = {%s %s}, want {%s %s}", test.file, g.Name, g.Seq, test.name, test.seq)
		}
		if g.Len() != len(test.seq) {
			t.Errorf("Len = %d, want %d", g.Len(), len(test.seq))
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"testdata/does_not_exist.txt", ErrNotFound},
		{"testdata/invalid.txt", alphabet.ErrInvalidAlphabet},
		{"testdata/two.fa", ErrMultipleRecords},
		{"testdata/blank.txt", alphabet.ErrEmpty},
		{"testdata/header_only.fa", alphabet.ErrEmpty},
		{"testdata", ErrUnreadable},
	}
	for _, test := range tests {
		if _, err := Read(test.file); !errors.Is(err, test.want) {
			t.Errorf("Read(%s) error = %v, want %v", test.file, err, test.want)
		}
	}
}

func TestFromString(t *testing.T) {
	g, err := FromString("mem", "  acg t\nTT\r\n")
	if err != nil || g.Seq != "ACGTTT" || g.Name != "mem" {
		t.Errorf("FromString = %v, %v", g, err)
	}
	g, err = FromString("mem", "\n>seq1 desc\nAC\nGT\n")
	if err != nil || g.Seq != "ACGT" || g.Name != "seq1" {
		t.Errorf("FromString fasta = %v, %v", g, err)
	}
	if _, err = FromString("mem", "ACGU"); !errors.Is(err, alphabet.ErrInvalidAlphabet) {
		t.Errorf("expected ErrInvalidAlphabet, got %v", err)
	}
	if _, err = FromString("mem", ""); !errors.Is(err, alphabet.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"genome.txt":         "genome",
		"/data/hg38.fa.gz":   "hg38",
		"reads":              "reads",
		"dir/my.genome.fa":   "my.genome",
		"testdata/plain.txt": "plain",
	}
	for in, want := range tests {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReadPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	file := filepath.Join(t.TempDir(), "locked.txt")
	if err := os.WriteFile(file, []byte("ACGT\n"), 0o000); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(file); !errors.Is(err, ErrUnreadable) {
		t.Errorf("Read(%s) error = %v, want %v", file, err, ErrUnreadable)
	}
}
