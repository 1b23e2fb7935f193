package assembly

// Validate checks the invariants every Structure handed to this module must
// satisfy:
//
// Chain residue ranges lie inside Residues and do not overlap. The atom
// ranges of the residues of a chain lie inside Atoms and are contiguous, so
// that together they exactly partition the atoms of the chain, and the atoms
// of a chain start after those of the previous chain. Residue names are
// non-empty printable ASCII. Every atom name decodes to a non-empty printable
// string. Every bond endpoint is an index into Atoms.
//
// The first violation found is returned, wrapping ErrInvalidStructure.
func (s *Structure) Validate() error {
	resEnd, atomEnd := 0, 0
	for i, c := range s.Chains {
		if c.ResIdx < 0 || c.ResNum < 0 || c.ResIdx+c.ResNum > len(s.Residues) {
			return ef("Chain %d (%s) has residue range [%d, %d), but there "+
				"are %d residues: %w", i, c.Name, c.ResIdx, c.ResIdx+c.ResNum,
				len(s.Residues), ErrInvalidStructure)
		}
		if c.ResIdx < resEnd {
			return ef("Chain %d (%s) starts at residue %d, which overlaps "+
				"the previous chain ending at %d: %w", i, c.Name, c.ResIdx,
				resEnd, ErrInvalidStructure)
		}
		resEnd = c.ResIdx + c.ResNum

		var err error
		if atomEnd, err = s.validateResidues(i, c, atomEnd); err != nil {
			return err
		}
	}
	for i, atom := range s.Atoms {
		if !atom.Name.Valid() {
			return ef("Atom %d has an invalid name %v: %w",
				i, [4]uint8(atom.Name), ErrInvalidStructure)
		}
	}
	if err := s.validateBonds("bond", s.Bonds); err != nil {
		return err
	}
	return s.validateBonds("connection", s.Connections)
}

// validateResidues checks the residues of a chain whose atoms may not start
// before atomStart, and returns the end of the chain's atom range.
func (s *Structure) validateResidues(ci int, c Chain, atomStart int) (int, error) {
	next := -1
	for i, r := range s.ChainResidues(c) {
		ri := c.ResIdx + i
		if !printableName(r.Name) {
			return 0, ef("Residue %d of chain %d has the name %q, which is "+
				"not printable ASCII: %w", ri, ci, r.Name, ErrInvalidStructure)
		}
		if r.AtomIdx < 0 || r.AtomNum < 0 ||
			r.AtomIdx+r.AtomNum > len(s.Atoms) {
			return 0, ef("Residue %d (%s) of chain %d has atom range [%d, %d), "+
				"but there are %d atoms: %w", ri, r.Name, ci, r.AtomIdx,
				r.AtomIdx+r.AtomNum, len(s.Atoms), ErrInvalidStructure)
		}
		if next < 0 && r.AtomIdx < atomStart {
			return 0, ef("Chain %d (%s) starts at atom %d, which overlaps "+
				"the previous chain ending at atom %d: %w", ci, c.Name,
				r.AtomIdx, atomStart, ErrInvalidStructure)
		}
		if next >= 0 && r.AtomIdx != next {
			return 0, ef("Residue %d (%s) of chain %d starts at atom %d, but "+
				"the previous residue ends at atom %d: %w", ri, r.Name, ci,
				r.AtomIdx, next, ErrInvalidStructure)
		}
		next = r.AtomIdx + r.AtomNum
	}
	if next < 0 {
		return atomStart, nil
	}
	return next, nil
}

func printableName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= ' ' || name[i] > '~' {
			return false
		}
	}
	return true
}

func (s *Structure) validateBonds(kind string, bonds []Bond) error {
	for i, b := range bonds {
		if b.Atom1 < 0 || b.Atom1 >= len(s.Atoms) ||
			b.Atom2 < 0 || b.Atom2 >= len(s.Atoms) {
			return ef("The %s %d (%d, %d) refers to an atom outside of "+
				"[0, %d): %w", kind, i, b.Atom1, b.Atom2, len(s.Atoms),
				ErrInvalidStructure)
		}
	}
	return nil
}
