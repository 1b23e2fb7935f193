/*
Package schema normalizes multi-entity sequence files into the canonical
entity list consumed by a schema resolver.

The input is FASTA-like, except that the header of every record names a chain
and an entity type, and optionally an MSA for proteins:

	>A|protein|msa/a.a3m
	MADQLTEEQIAEFKEAFSLF
	>B|dna
	ATGCATGC
	>L|ccd
	ATP
	>M|smiles
	CC(=O)Oc1ccccc1C(=O)O

Proteins, RNA and DNA become polymer entities; CCD and SMILES records both
become ligands. The result can be rendered as YAML with (*Schema).YAML, and
written back as records with WriteFasta.

This package does not resolve chemical components and does not check
sequence alphabets. Both are the job of the resolver.
*/
package schema
