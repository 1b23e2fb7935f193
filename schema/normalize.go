package schema

import (
	"errors"
	"io"
	"strings"

	"github.com/TuftsBCB/foldio/fasta"
)

// Record is a single record of the input file after its header has been
// interpreted. It only lives for the duration of Normalize.
type Record struct {
	ChainID string
	Kind    Kind
	Body    string

	// The MSA reference, empty when absent. Only set for proteins.
	MSA string
}

// ParseHeader interprets a record id of the form CHAIN_ID|ENTITY_TYPE or
// CHAIN_ID|ENTITY_TYPE|MSA_ID. The entity type is case insensitive. An empty
// third field is the same as no third field.
//
// The body of the returned record is empty.
func ParseHeader(id string) (Record, error) {
	if !strings.Contains(id, "|") {
		return Record{}, ef("Invalid record id '%s': %w", id, ErrMalformedHeader)
	}
	fields := strings.Split(id, "|")
	if len(fields) > 3 {
		return Record{}, ef("Record id '%s' has %d fields, expected 2 or 3: %w",
			id, len(fields), ErrMalformedHeader)
	}

	chainID, tag := fields[0], fields[1]
	if len(chainID) == 0 {
		return Record{}, ef("Record id '%s': %w", id, ErrEmptyChainID)
	}
	if len(tag) == 0 {
		return Record{}, ef("Record id '%s': %w", id, ErrEmptyEntityType)
	}
	kind, err := ParseKind(tag)
	if err != nil {
		return Record{}, err
	}

	rec := Record{ChainID: chainID, Kind: kind}
	if len(fields) == 3 && len(fields[2]) > 0 {
		if kind != Protein {
			return Record{}, ef("Record id '%s' (%s): %w",
				id, kind, ErrMsaNotAllowed)
		}
		rec.MSA = fields[2]
	}
	return rec, nil
}

// Entity converts the record to its canonical entity.
func (rec Record) Entity() Entity {
	switch rec.Kind {
	case Protein:
		return Entity{
			Type:          EntityProtein,
			ID:            rec.ChainID,
			Sequence:      rec.Body,
			Modifications: []Modification{},
			MSA:           rec.MSA,
		}
	case RNA:
		return Entity{
			Type:          EntityRNA,
			ID:            rec.ChainID,
			Sequence:      rec.Body,
			Modifications: []Modification{},
		}
	case DNA:
		return Entity{
			Type:          EntityDNA,
			ID:            rec.ChainID,
			Sequence:      rec.Body,
			Modifications: []Modification{},
		}
	case CCD:
		return Entity{Type: EntityLigand, ID: rec.ChainID, CCD: rec.Body}
	case SMILES:
		return Entity{Type: EntityLigand, ID: rec.ChainID, SMILES: rec.Body}
	}
	panic("unreachable")
}

// Normalize reads a multi-record FASTA-like file and returns the canonical
// schema for it. Each record looks like
//
//	>CHAIN_ID|ENTITY_TYPE|MSA_ID
//	SEQUENCE
//
// where ENTITY_TYPE is one of protein, rna, dna, ccd or smiles, and the
// MSA_ID is optional and only allowed on proteins. Only the first
// whitespace-delimited word of a header line is interpreted; the rest is a
// free-form description.
//
// Sequences are taken verbatim: their alphabet is not checked. A single bad
// header fails the whole file, and every header is checked before any entity
// is built. Text before the first header is a malformed header, and so is an
// empty header. Duplicate chain ids are not rejected.
func Normalize(r io.Reader) (*Schema, error) {
	fr := fasta.NewReader(r)
	fr.TrustSequences = true

	records := make([]Record, 0, 4)
	for {
		s, err := fr.Read()
		if err == io.EOF {
			break
		}
		if errors.Is(err, fasta.ErrMissingHeader) {
			return nil, ef("%w: %w", ErrMalformedHeader, err)
		}
		if err != nil {
			return nil, err
		}
		rec, err := ParseHeader(recordID(s.Name))
		if err != nil {
			return nil, ef("Record %d ('>%s'): %w", len(records)+1, s.Name, err)
		}
		rec.Body = string(s.Residues)
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ef("The input does not contain any records: %w", ErrNoRecords)
	}

	sch := &Schema{
		Sequences: make([]Entity, len(records)),
		Bonds:     []Bond{},
		Version:   Version,
	}
	for i, rec := range records {
		sch.Sequences[i] = rec.Entity()
	}
	return sch, nil
}

// NormalizeString is a convenience wrapper around Normalize.
func NormalizeString(text string) (*Schema, error) {
	return Normalize(strings.NewReader(text))
}

// recordID returns the first word of a header line.
func recordID(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
