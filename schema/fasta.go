package schema

import (
	"io"

	"github.com/TuftsBCB/seq"

	"github.com/TuftsBCB/foldio/fasta"
)

// WriteFasta writes entities in the record format read by Normalize, so that
// normalizing the output gives back the same entities. Every entity is
// validated first; nothing is written if one of them is invalid.
func WriteFasta(w io.Writer, entities []Entity) error {
	seqs := make([]seq.Sequence, len(entities))
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			return err
		}
		seqs[i] = seq.Sequence{
			Name:     header(e),
			Residues: []seq.Residue(body(e)),
		}
	}
	return fasta.NewWriter(w).WriteAll(seqs)
}

func header(e Entity) string {
	switch e.Type {
	case EntityProtein:
		if len(e.MSA) > 0 {
			return e.ID + "|" + Protein.String() + "|" + e.MSA
		}
		return e.ID + "|" + Protein.String()
	case EntityRNA:
		return e.ID + "|" + RNA.String()
	case EntityDNA:
		return e.ID + "|" + DNA.String()
	}
	if len(e.SMILES) > 0 {
		return e.ID + "|" + SMILES.String()
	}
	return e.ID + "|" + CCD.String()
}

func body(e Entity) string {
	switch {
	case e.Type.Polymer():
		return e.Sequence
	case len(e.SMILES) > 0:
		return e.SMILES
	}
	return e.CCD
}
