/*
Package assembly provides the in-memory representation of a predicted
molecular assembly: chains, residues, atoms and bonds.

A Structure is a structure of arrays. Chains, residues and atoms are stored in
three flat slices, and each level addresses the next one with a start offset
and a count (no pointers). A chain owns the residues
Residues[ResIdx:ResIdx+ResNum], and a residue owns the atoms
Atoms[AtomIdx:AtomIdx+AtomNum]. Bonds refer to atoms by their index in the
flat atom slice.

Structures are normally built by a resolver outside of this module, either
directly or with a Builder, and are treated as read only by the code here.
Validate checks the range invariants above.
*/
package assembly
