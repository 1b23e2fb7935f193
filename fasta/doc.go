/*
Package fasta provides routines for reading and writing FASTA files. Every
record is represented as a seq.Sequence, where the name is the header line
(without the leading '>') and the residues are the concatenated sequence
lines.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

By default, sequences are checked to make sure they contain only valid
characters: a-z, A-Z, * and -. All lowercases letters are translated to their
upper case equivalent. Readers in trusted mode keep the sequence section
verbatim, which is how FASTA-like formats carrying non-sequence data (such as
SMILES strings) are read.
*/
package fasta
