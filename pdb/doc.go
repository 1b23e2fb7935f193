/*
Package pdb writes molecular assemblies in the fixed column PDB format.

Every present atom becomes an ATOM record, or a HETATM record if its chain is
not a polymer. Chains are separated by TER records, bonds are written as
CONECT records and the output is closed by an END record. Every line is
padded to 80 columns.

The B-factor column carries a per-residue confidence in [0, 1] scaled to
[0, 100]. Without confidences, every B-factor is 100.00.

A structure that cannot be represented (an unknown element, a coordinate too
wide for its column, too few confidences) is an error and nothing is
written. Such errors wrap ErrIndexOutOfRange or ErrLookupFailure.

Read parses the records written here, which is mostly useful for checking
output.
*/
package pdb
