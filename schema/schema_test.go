package schema

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/TuftsBCB/foldio/fasta"
)

const testInput = `>A|protein|msa_a.a3m
MADQLTEEQI
AEFKEAFSLF
>B|RNA
acgu
>C|Dna  the description is ignored
ATGC

>L|ccd
ATP
>M|SMILES
CC(=O)Oc1ccccc1C(=O)O
>N|protein|
MKV
`

func TestNormalize(t *testing.T) {
	sch, err := NormalizeString(testInput)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if sch.Version != Version {
		t.Fatalf("Expected version %d but got %d.", Version, sch.Version)
	}
	if sch.Bonds == nil || len(sch.Bonds) != 0 {
		t.Fatalf("Expected an empty bond list but got %v.", sch.Bonds)
	}

	answers := []Entity{
		{Type: EntityProtein, ID: "A", Sequence: "MADQLTEEQIAEFKEAFSLF",
			Modifications: []Modification{}, MSA: "msa_a.a3m"},
		{Type: EntityRNA, ID: "B", Sequence: "acgu",
			Modifications: []Modification{}},
		{Type: EntityDNA, ID: "C", Sequence: "ATGC",
			Modifications: []Modification{}},
		{Type: EntityLigand, ID: "L", CCD: "ATP"},
		{Type: EntityLigand, ID: "M", SMILES: "CC(=O)Oc1ccccc1C(=O)O"},
		{Type: EntityProtein, ID: "N", Sequence: "MKV",
			Modifications: []Modification{}},
	}
	if len(sch.Sequences) != len(answers) {
		t.Fatalf("Expected %d entities but got %d.",
			len(answers), len(sch.Sequences))
	}
	for i, answer := range answers {
		if !reflect.DeepEqual(sch.Sequences[i], answer) {
			t.Fatalf("Entity %d should be\n%#v\nbut we got\n%#v",
				i, answer, sch.Sequences[i])
		}
		if err := sch.Sequences[i].Validate(); err != nil {
			t.Fatalf("Entity %d does not validate: %s", i, err)
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{">A\nMADQ\n", ErrMalformedHeader},
		{">A|protein|x|y\nMADQ\n", ErrMalformedHeader},
		{">A|PEPTIDE\nMADQ\n", ErrUnknownEntityType},
		{">A|proteins\nMADQ\n", ErrUnknownEntityType},
		{">|protein\nMADQ\n", ErrEmptyChainID},
		{">A|\nMADQ\n", ErrEmptyEntityType},
		{">A|rna|msa.a3m\nACGU\n", ErrMsaNotAllowed},
		{">A|dna|msa.a3m\nACGT\n", ErrMsaNotAllowed},
		{">L|ccd|msa.a3m\nATP\n", ErrMsaNotAllowed},
		{">L|smiles|msa.a3m\nCCO\n", ErrMsaNotAllowed},
		{">A|protein\nMADQ\n>B|bogus\nACGU\n", ErrUnknownEntityType},
		{"\n\n", ErrNoRecords},
		{">\n>A|protein\nMKV\n", ErrMalformedHeader},
		{"> \n>A|protein\nMKV\n", ErrMalformedHeader},
		{">A|protein\nMKV\n>\n", ErrMalformedHeader},
		{"junk\n>A|protein\nMKV\n", ErrMalformedHeader},
	}
	for _, test := range tests {
		sch, err := NormalizeString(test.input)
		if !errors.Is(err, test.err) {
			t.Fatalf("Input %q should fail with '%v' but got '%v'.",
				test.input, test.err, err)
		}
		if sch != nil {
			t.Fatalf("Input %q produced output despite an error.", test.input)
		}
	}
}

func TestNormalizeNotFasta(t *testing.T) {
	_, err := NormalizeString("MADQ\n")
	if !errors.Is(err, ErrMalformedHeader) || !errors.Is(err, fasta.ErrMissingHeader) {
		t.Fatalf("Expected a missing header error but got %v.", err)
	}
}

func TestNormalizeDuplicateChains(t *testing.T) {
	sch, err := NormalizeString(">A|protein\nMADQ\n>A|protein\nMKV\n")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(sch.Sequences) != 2 {
		t.Fatalf("Expected duplicate chain ids to be kept, got %d entities.",
			len(sch.Sequences))
	}
}

func TestParseKind(t *testing.T) {
	for _, tag := range []string{"protein", "PROTEIN", "Protein", "pRoTeIn"} {
		kind, err := ParseKind(tag)
		if err != nil {
			t.Fatalf("%s", err)
		}
		if kind != Protein {
			t.Fatalf("Tag '%s' should be protein but is %s.", tag, kind)
		}
	}
	for i, name := range []string{"protein", "rna", "dna", "ccd", "smiles"} {
		kind, err := ParseKind(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("%s", err)
		}
		if kind != Kind(i) || kind.String() != name {
			t.Fatalf("Tag '%s' parsed as %s.", name, kind)
		}
	}
}

func TestValidate(t *testing.T) {
	bad := []Entity{
		{Type: EntityProtein},
		{Type: EntityProtein, ID: "A|B", Sequence: "MKV"},
		{Type: EntityRNA, ID: "A", Sequence: "ACGU", MSA: "x.a3m"},
		{Type: EntityDNA, ID: "A", Sequence: "ACGT", CCD: "ATP"},
		{Type: EntityLigand, ID: "L"},
		{Type: EntityLigand, ID: "L", CCD: "ATP", SMILES: "CCO"},
		{Type: EntityLigand, ID: "L", CCD: "ATP", Sequence: "MKV"},
	}
	for i, e := range bad {
		if err := e.Validate(); err == nil {
			t.Fatalf("Entity %d (%#v) should not validate.", i, e)
		}
	}
}

type yamlDoc struct {
	Sequences []map[string]map[string]interface{} `yaml:"sequences"`
	Bonds     []interface{}                       `yaml:"bonds"`
	Version   int                                 `yaml:"version"`
}

func TestYAML(t *testing.T) {
	sch, err := NormalizeString(testInput)
	if err != nil {
		t.Fatalf("%s", err)
	}
	bs, err := sch.YAML()
	if err != nil {
		t.Fatalf("%s", err)
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		t.Fatalf("Could not read back YAML:\n%s\n%s", bs, err)
	}
	if doc.Version != 1 || len(doc.Bonds) != 0 {
		t.Fatalf("Unexpected version/bonds in:\n%s", bs)
	}
	if len(doc.Sequences) != 6 {
		t.Fatalf("Expected 6 sequences in:\n%s", bs)
	}

	protein := doc.Sequences[0]["protein"]
	if protein == nil {
		t.Fatalf("First entity should be a protein:\n%s", bs)
	}
	if protein["id"] != "A" || protein["sequence"] != "MADQLTEEQIAEFKEAFSLF" ||
		protein["msa"] != "msa_a.a3m" {
		t.Fatalf("Unexpected protein fields %v in:\n%s", protein, bs)
	}
	if mods, ok := protein["modifications"].([]interface{}); !ok || len(mods) != 0 {
		t.Fatalf("Expected an empty modification list in:\n%s", bs)
	}

	if rna := doc.Sequences[1]["rna"]; rna == nil || rna["sequence"] != "acgu" {
		t.Fatalf("Second entity should be RNA 'acgu':\n%s", bs)
	} else if _, ok := rna["msa"]; ok {
		t.Fatalf("RNA entities must not have an msa key:\n%s", bs)
	}
	if lig := doc.Sequences[3]["ligand"]; lig == nil || lig["ccd"] != "ATP" {
		t.Fatalf("Fourth entity should be the ATP ligand:\n%s", bs)
	}
	if lig := doc.Sequences[4]["ligand"]; lig == nil ||
		lig["smiles"] != "CC(=O)Oc1ccccc1C(=O)O" {
		t.Fatalf("Fifth entity should be the SMILES ligand:\n%s", bs)
	}
	if msa, ok := doc.Sequences[5]["protein"]["msa"]; !ok || msa != nil {
		t.Fatalf("A protein without MSA should have a null msa:\n%s", bs)
	}
}

func TestWriteFastaRoundTrip(t *testing.T) {
	sch, err := NormalizeString(testInput)
	if err != nil {
		t.Fatalf("%s", err)
	}

	buf := new(bytes.Buffer)
	if err := WriteFasta(buf, sch.Sequences); err != nil {
		t.Fatalf("%s", err)
	}
	again, err := Normalize(buf)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !reflect.DeepEqual(sch, again) {
		t.Fatalf("Round trip changed the schema:\n%#v\n%#v", sch, again)
	}
}

func TestWriteFastaInvalid(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteFasta(buf, []Entity{
		{Type: EntityProtein, ID: "A", Sequence: "MKV"},
		{Type: EntityRNA, ID: "B", Sequence: "ACGU", MSA: "x.a3m"},
	})
	if !errors.Is(err, ErrMsaNotAllowed) {
		t.Fatalf("Expected ErrMsaNotAllowed but got %v.", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Nothing should be written on error, got:\n%s", buf.String())
	}
}

func ExampleNormalize() {
	sch, err := NormalizeString(">A|protein|a.a3m\nMADQ\n>L|ccd\nATP\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range sch.Sequences {
		fmt.Printf("%s %s %s%s%s\n", e.Type, e.ID, e.Sequence, e.CCD, e.SMILES)
	}

	// Output:
	// protein A MADQ
	// ligand L ATP
}
