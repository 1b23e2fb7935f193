package assembly

import (
	"github.com/TuftsBCB/structure"
)

// Builder assembles a Structure one chain, residue and atom at a time while
// maintaining the index ranges. Atoms always belong to the residue added
// last, and residues to the chain added last.
//
// A Builder is meant for resolvers and tests; errors (such as an atom name
// that cannot be encoded) are remembered and reported by Structure.
type Builder struct {
	s   Structure
	err error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Chain starts a new chain.
func (b *Builder) Chain(name string, typ MolType) *Builder {
	b.s.Chains = append(b.s.Chains, Chain{
		AsymID:  len(b.s.Chains),
		Name:    name,
		MolType: typ,
		ResIdx:  len(b.s.Residues),
	})
	return b
}

// Residue starts a new residue in the current chain.
func (b *Builder) Residue(name string) *Builder {
	if len(b.s.Chains) == 0 {
		b.fail(ef("Residue '%s' added before any chain.", name))
		return b
	}
	c := &b.s.Chains[len(b.s.Chains)-1]
	b.s.Residues = append(b.s.Residues, Residue{
		ResIdx:  c.ResNum,
		Name:    name,
		AtomIdx: len(b.s.Atoms),
	})
	c.ResNum++
	return b
}

// Atom adds a present atom to the current residue.
func (b *Builder) Atom(name string, element int, x, y, z float64) *Builder {
	return b.atom(name, element, structure.Coords{X: x, Y: y, Z: z}, true)
}

// MissingAtom adds an atom without coordinates to the current residue.
func (b *Builder) MissingAtom(name string, element int) *Builder {
	return b.atom(name, element, structure.Coords{}, false)
}

func (b *Builder) atom(name string, element int, coords structure.Coords,
	present bool) *Builder {

	if len(b.s.Residues) == 0 {
		b.fail(ef("Atom '%s' added before any residue.", name))
		return b
	}
	an, err := EncodeAtomName(name)
	if err != nil {
		b.fail(err)
		return b
	}
	b.s.Residues[len(b.s.Residues)-1].AtomNum++
	b.s.Atoms = append(b.s.Atoms, Atom{
		Name:    an,
		Element: element,
		Coords:  coords,
		Present: present,
	})
	return b
}

// Bond adds a bond between two atoms given by their index in the order they
// were added.
func (b *Builder) Bond(atom1, atom2 int) *Builder {
	b.s.Bonds = append(b.s.Bonds, Bond{atom1, atom2})
	return b
}

// Connection adds a bond between two entities.
func (b *Builder) Connection(atom1, atom2 int) *Builder {
	b.s.Connections = append(b.s.Connections, Bond{atom1, atom2})
	return b
}

// Structure returns the structure built so far after validating it. The
// builder should not be used afterwards.
func (b *Builder) Structure() (*Structure, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := b.s
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
