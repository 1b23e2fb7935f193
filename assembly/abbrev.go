package assembly

import (
	"github.com/TuftsBCB/seq"
)

var aminoMap = map[string]seq.Residue{
	"UNK": 'X',
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',

	// Common modified residues, mapped to their parent.
	"MSE": 'M', "CSO": 'C', "SEP": 'S', "TPO": 'T', "PTR": 'Y',
}

var deoxyMap = map[string]seq.Residue{
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DI": 'I', "DU": 'U',
	"DN": 'N',
}

var riboMap = map[string]seq.Residue{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "I": 'I',
	"N": 'N',
}

// oneLetter returns the single letter abbreviation of a residue of a chain
// with the given type. Unknown amino acids become 'X' and unknown nucleotides
// become 'N'.
func oneLetter(typ MolType, name string) seq.Residue {
	switch typ {
	case Protein:
		if r, ok := aminoMap[name]; ok {
			return r
		}
		return 'X'
	case DNA:
		if r, ok := deoxyMap[name]; ok {
			return r
		}
	case RNA:
		if r, ok := riboMap[name]; ok {
			return r
		}
	}
	return 'N'
}

// Sequence returns the one letter sequence of the polymer chain at the
// given position in Chains. The name of the sequence is the chain's name.
//
// Ligand chains have no sequence and result in an error.
func (s *Structure) Sequence(chain int) (seq.Sequence, error) {
	if chain < 0 || chain >= len(s.Chains) {
		return seq.Sequence{}, ef("There is no chain at position %d "+
			"(there are %d chains).", chain, len(s.Chains))
	}
	c := s.Chains[chain]
	if !c.MolType.Polymer() {
		return seq.Sequence{}, ef("Chain %s is not a polymer.", c.Name)
	}
	residues := s.ChainResidues(c)
	rs := make([]seq.Residue, len(residues))
	for i, r := range residues {
		rs[i] = oneLetter(c.MolType, r.Name)
	}
	return seq.Sequence{Name: c.Name, Residues: rs}, nil
}
