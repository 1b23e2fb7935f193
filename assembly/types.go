package assembly

import (
	"errors"
	"fmt"

	"github.com/TuftsBCB/structure"
)

var (
	ef = fmt.Errorf
)

// ErrInvalidStructure is wrapped by every error that reports a broken
// invariant of a Structure.
var ErrInvalidStructure = errors.New("invalid structure")

// MolType classifies a chain. The values are the chain type ids used by the
// resolver.
type MolType int

const (
	Protein MolType = iota
	DNA
	RNA
	NonPolymer
)

func (typ MolType) String() string {
	switch typ {
	case Protein:
		return "PROTEIN"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case NonPolymer:
		return "NONPOLYMER"
	}
	return fmt.Sprintf("MolType(%d)", int(typ))
}

// Polymer returns true for every type except NonPolymer.
func (typ MolType) Polymer() bool {
	return typ != NonPolymer
}

type Chain struct {
	// The index of this chain in the assembly. It is informational only;
	// chains are always ordered by their position in Structure.Chains.
	AsymID int

	// The chain tag written to output files.
	Name    string
	MolType MolType

	// The residues of this chain are Residues[ResIdx:ResIdx+ResNum].
	ResIdx, ResNum int
}

type Residue struct {
	// The index of this residue in its chain (starting at 0).
	ResIdx int

	// The component name, e.g., "ALA", "DG" or a ligand code.
	Name string

	// The atoms of this residue are Atoms[AtomIdx:AtomIdx+AtomNum].
	AtomIdx, AtomNum int
}

type Atom struct {
	Name AtomName

	// Atomic number.
	Element int
	structure.Coords

	// Present is false for atoms that are part of the residue's definition
	// but have no coordinates.
	Present bool
}

// Bond connects two atoms, given as indices into Structure.Atoms.
type Bond struct {
	Atom1, Atom2 int
}

// Structure is a molecular assembly. Bonds are the bonds inside entities
// while Connections are the bonds between them.
type Structure struct {
	Chains      []Chain
	Residues    []Residue
	Atoms       []Atom
	Bonds       []Bond
	Connections []Bond
}

// ChainResidues returns the residues of the chain given.
func (s *Structure) ChainResidues(c Chain) []Residue {
	return s.Residues[c.ResIdx : c.ResIdx+c.ResNum]
}

// ResidueAtoms returns the atoms of the residue given.
func (s *Structure) ResidueAtoms(r Residue) []Atom {
	return s.Atoms[r.AtomIdx : r.AtomIdx+r.AtomNum]
}

// ChainAtoms returns all atoms of the chain given. This relies on the atoms
// of consecutive residues being contiguous, which Validate checks.
func (s *Structure) ChainAtoms(c Chain) []Atom {
	if c.ResNum == 0 {
		return nil
	}
	residues := s.ChainResidues(c)
	first, last := residues[0], residues[len(residues)-1]
	return s.Atoms[first.AtomIdx : last.AtomIdx+last.AtomNum]
}

// NumPresent returns the number of atoms with coordinates.
func (s *Structure) NumPresent() int {
	n := 0
	for _, atom := range s.Atoms {
		if atom.Present {
			n++
		}
	}
	return n
}
