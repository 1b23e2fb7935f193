package assembly

import (
	"github.com/TuftsBCB/structure"
)

// RMSD computes the root mean square deviation between two conformations of
// the same assembly, e.g., two predictions for the same input. Only atoms
// that are present in both structures are used.
//
// An error is returned if the structures do not have the same number of
// atoms, or if no atom is present in both.
func RMSD(s1, s2 *Structure) (float64, error) {
	if len(s1.Atoms) != len(s2.Atoms) {
		return 0.0, ef("Cannot compare a structure with %d atoms to a "+
			"structure with %d atoms.", len(s1.Atoms), len(s2.Atoms))
	}

	struct1 := make([]structure.Coords, 0, len(s1.Atoms))
	struct2 := make([]structure.Coords, 0, len(s2.Atoms))
	for i := range s1.Atoms {
		a1, a2 := s1.Atoms[i], s2.Atoms[i]
		if !a1.Present || !a2.Present {
			continue
		}
		struct1 = append(struct1, a1.Coords)
		struct2 = append(struct2, a2.Coords)
	}
	if len(struct1) == 0 {
		return 0.0, ef("The structures have no present atoms in common.")
	}
	return structure.RMSD(struct1, struct2), nil
}
