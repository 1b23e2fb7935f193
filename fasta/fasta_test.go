package fasta

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/TuftsBCB/seq"
)

var flagFastaFile = ""

func init() {
	flag.StringVar(&flagFastaFile, "fasta", flagFastaFile,
		"The fasta file to use for benchmarks.")

	log.SetFlags(0)
}

var testFastaInput = []byte(`>A|protein|msa_a.a3m
MADQLTEEQI
AEFKEAFSLF

>B|rna
acgu
>L|smiles
CC(=O)Oc1ccccc1C(=O)O
`)

func TestReadAll(t *testing.T) {
	r := NewReader(bytes.NewReader(testFastaInput))
	r.TrustSequences = true
	all, err := r.ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 sequences but got %d.", len(all))
	}

	answers := []struct{ name, residues string }{
		{"A|protein|msa_a.a3m", "MADQLTEEQIAEFKEAFSLF"},
		{"B|rna", "acgu"},
		{"L|smiles", "CC(=O)Oc1ccccc1C(=O)O"},
	}
	for i, answer := range answers {
		if all[i].Name != answer.name {
			t.Fatalf("Sequence %d should have name '%s' but has '%s'.",
				i, answer.name, all[i].Name)
		}
		if ours := string(all[i].Residues); ours != answer.residues {
			t.Fatalf("Sequence %d should be\n%s\nbut we got\n%s",
				i, answer.residues, ours)
		}
	}
}

func TestReadTranslates(t *testing.T) {
	input := ">s1 some description\nacgT-*\n"
	s, err := NewReader(strings.NewReader(input)).Read()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s.Name != "s1 some description" {
		t.Fatalf("Unexpected header '%s'.", s.Name)
	}
	if string(s.Residues) != "ACGT-*" {
		t.Fatalf("Expected 'ACGT-*' but got '%s'.", string(s.Residues))
	}
}

func TestReadInvalidCharacter(t *testing.T) {
	r := NewReader(bytes.NewReader(testFastaInput))
	_, err := r.ReadAll()
	if err == nil {
		t.Fatalf("Expected an error for the SMILES sequence.")
	}
	if !strings.Contains(err.Error(), "Invalid character '('") {
		t.Fatalf("Unexpected error: %s", err)
	}
}

func TestReadMissingHeader(t *testing.T) {
	_, err := NewReader(strings.NewReader("MADQ\n>A|protein\nMADQ\n")).Read()
	if !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("Expected ErrMissingHeader but got %v.", err)
	}
}

func TestReadEmptyHeader(t *testing.T) {
	for _, input := range []string{">\n>A|protein\nMKV\n", "> \n", ">"} {
		r := NewReader(strings.NewReader(input))
		r.TrustSequences = true
		s, err := r.Read()
		if err != nil {
			t.Fatalf("Input %q: %s", input, err)
		}
		if len(s.Name) != 0 || len(s.Residues) != 0 {
			t.Fatalf("Input %q: expected an empty record but got %#v.",
				input, s)
		}
	}
}

func TestReadHeaderOnly(t *testing.T) {
	r := NewReader(strings.NewReader(">A|ccd\n>B|ccd\nATP"))
	r.TrustSequences = true
	all, err := r.ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 sequences but got %d.", len(all))
	}
	if len(all[0].Residues) != 0 || string(all[1].Residues) != "ATP" {
		t.Fatalf("Unexpected residues: '%s' and '%s'.",
			string(all[0].Residues), string(all[1].Residues))
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := NewReader(strings.NewReader("\n\n")).Read()
	if err != io.EOF {
		t.Fatalf("Expected io.EOF but got %v.", err)
	}
}

func TestReadWrite(t *testing.T) {
	r := NewReader(bytes.NewReader(testFastaInput))
	r.TrustSequences = true
	seqs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}

	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.Columns = 10
	if err := w.WriteAll(seqs); err != nil {
		t.Fatalf("%s", err)
	}

	answer := ">A|protein|msa_a.a3m\nMADQLTEEQI\nAEFKEAFSLF\n" +
		">B|rna\nacgu\n" +
		">L|smiles\nCC(=O)Oc1c\ncccc1C(=O)\nO\n"
	if buf.String() != answer {
		t.Fatalf("Written FASTA should be\n%s\nbut we got\n%s",
			answer, buf.String())
	}

	r = NewReader(bytes.NewReader(buf.Bytes()))
	r.TrustSequences = true
	again, err := r.ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}
	for i := range seqs {
		testSequenceEqual(t, seqs[i], again[i])
	}
}

func testSequenceEqual(t *testing.T, s1, s2 seq.Sequence) {
	if s1.Name != s2.Name {
		t.Fatalf("Names not equal: %s != %s", s1.Name, s2.Name)
	}
	if string(s1.Residues) != string(s2.Residues) {
		t.Fatalf("Residues not equal: %s != %s",
			string(s1.Residues), string(s2.Residues))
	}
}

func BenchmarkReadTrusted(b *testing.B) {
	if len(flagFastaFile) == 0 {
		b.Skip("Please set the '--fasta path/to/file.fasta' flag.")
	}

	f, err := os.Open(flagFastaFile)
	if err != nil {
		log.Fatalf("%s", err)
	}
	defer f.Close()

	for i := 0; i < b.N; i++ {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			log.Fatalf("%s", err)
		}

		r := NewReader(f)
		r.TrustSequences = true
		if _, err := r.ReadAll(); err != nil {
			log.Fatalf("%s", err)
		}
	}
}
