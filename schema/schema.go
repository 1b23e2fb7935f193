package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	ef = fmt.Errorf
)

// Version is the schema version marker written into every Schema produced
// by this package.
const Version = 1

var (
	// ErrMalformedHeader is returned when a record id is not of the form
	// CHAIN_ID|ENTITY_TYPE[|MSA_ID].
	ErrMalformedHeader = errors.New("malformed header")

	// ErrUnknownEntityType is returned when the entity type of a header is
	// not one of protein, rna, dna, ccd or smiles.
	ErrUnknownEntityType = errors.New("unknown entity type")

	ErrEmptyChainID    = errors.New("empty chain id")
	ErrEmptyEntityType = errors.New("empty entity type")

	// ErrMsaNotAllowed is returned when an MSA reference is attached to
	// anything other than a protein.
	ErrMsaNotAllowed = errors.New("MSA reference is only allowed for proteins")

	// ErrNoRecords is returned when the input contains no records at all.
	ErrNoRecords = errors.New("no records")

	// ErrInvalidEntity is returned by Entity.Validate for entities that
	// could not have been produced by Normalize.
	ErrInvalidEntity = errors.New("invalid entity")
)

// Kind is the entity type tag found in the second field of a record header.
type Kind int

const (
	Protein Kind = iota
	RNA
	DNA
	CCD
	SMILES
)

var kindNames = []string{"protein", "rna", "dna", "ccd", "smiles"}

// ParseKind converts an entity type tag to a Kind. The comparison is case
// insensitive.
func ParseKind(tag string) (Kind, error) {
	lower := strings.ToLower(tag)
	for i, name := range kindNames {
		if lower == name {
			return Kind(i), nil
		}
	}
	return 0, ef("Invalid entity type '%s': %w", tag, ErrUnknownEntityType)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		panic(fmt.Sprintf("Unknown entity kind: %d", int(k)))
	}
	return kindNames[k]
}

// EntityType is the variant tag of a canonical entity.
type EntityType int

const (
	EntityProtein EntityType = iota
	EntityRNA
	EntityDNA
	EntityLigand
)

func (typ EntityType) String() string {
	switch typ {
	case EntityProtein:
		return "protein"
	case EntityRNA:
		return "rna"
	case EntityDNA:
		return "dna"
	case EntityLigand:
		return "ligand"
	}
	panic(fmt.Sprintf("Unknown entity type: %d", int(typ)))
}

// Polymer returns true for protein, RNA and DNA entities.
func (typ EntityType) Polymer() bool {
	return typ != EntityLigand
}

// Modification is a chemically modified residue of a polymer. The
// normalizer never produces any, but the schema carries the (empty) list.
type Modification struct {
	Position int    `yaml:"position"`
	CCD      string `yaml:"ccd"`
}

// Entity is one canonical entity handed to the schema resolver.
//
// Polymers (protein, RNA, DNA) carry a sequence and a list of modifications.
// Only proteins may carry an MSA reference. Ligands carry exactly one of a
// chemical component code (CCD) or a SMILES string.
type Entity struct {
	Type EntityType
	ID   string

	Sequence      string
	Modifications []Modification
	MSA           string

	CCD    string
	SMILES string
}

// Validate checks that the entity is well formed for its variant.
func (e Entity) Validate() error {
	if len(e.ID) == 0 {
		return ef("Entity has no id: %w", ErrInvalidEntity)
	}
	if strings.ContainsAny(e.ID, "| \t\r\n") {
		return ef("Entity id '%s' contains a delimiter: %w",
			e.ID, ErrInvalidEntity)
	}
	if len(e.MSA) > 0 && e.Type != EntityProtein {
		return ef("Entity '%s' (%s): %w", e.ID, e.Type, ErrMsaNotAllowed)
	}
	if strings.ContainsAny(e.MSA, "| \t\r\n") {
		return ef("MSA reference '%s' of entity '%s' contains a delimiter: %w",
			e.MSA, e.ID, ErrInvalidEntity)
	}
	if e.Type.Polymer() {
		if len(e.CCD) > 0 || len(e.SMILES) > 0 {
			return ef("Polymer entity '%s' has ligand fields: %w",
				e.ID, ErrInvalidEntity)
		}
		return nil
	}
	if len(e.Sequence) > 0 || len(e.Modifications) > 0 {
		return ef("Ligand entity '%s' has polymer fields: %w",
			e.ID, ErrInvalidEntity)
	}
	if (len(e.CCD) > 0) == (len(e.SMILES) > 0) {
		return ef("Ligand entity '%s' must have exactly one of a CCD code "+
			"or a SMILES string: %w", e.ID, ErrInvalidEntity)
	}
	return nil
}

// MarshalYAML renders the entity as a single-key mapping from its type to
// its fields, in the field order the resolver documents.
func (e Entity) MarshalYAML() (interface{}, error) {
	body := yaml.MapSlice{{Key: "id", Value: e.ID}}
	if e.Type.Polymer() {
		mods := e.Modifications
		if mods == nil {
			mods = []Modification{}
		}
		body = append(body,
			yaml.MapItem{Key: "sequence", Value: e.Sequence},
			yaml.MapItem{Key: "modifications", Value: mods})
		if e.Type == EntityProtein {
			var msa interface{}
			if len(e.MSA) > 0 {
				msa = e.MSA
			}
			body = append(body, yaml.MapItem{Key: "msa", Value: msa})
		}
	} else if len(e.SMILES) > 0 {
		body = append(body, yaml.MapItem{Key: "smiles", Value: e.SMILES})
	} else {
		body = append(body, yaml.MapItem{Key: "ccd", Value: e.CCD})
	}
	return yaml.MapSlice{{Key: e.Type.String(), Value: body}}, nil
}

// BondAtom addresses one atom of a bond by chain, residue index and atom
// name.
type BondAtom struct {
	ChainID string `yaml:"chain"`
	Residue int    `yaml:"residue"`
	Atom    string `yaml:"atom"`
}

// Bond is a covalent bond between two entities. Normalize always produces an
// empty list; the type exists so the document has the resolver's shape.
type Bond struct {
	Atom1 BondAtom `yaml:"atom1"`
	Atom2 BondAtom `yaml:"atom2"`
}

// Schema is the canonical document handed to the schema resolver.
// The order of Sequences is significant.
type Schema struct {
	Sequences []Entity `yaml:"sequences"`
	Bonds     []Bond   `yaml:"bonds"`
	Version   int      `yaml:"version"`
}

// YAML renders the schema in the YAML form the resolver reads.
func (s *Schema) YAML() ([]byte, error) {
	doc := *s
	if doc.Sequences == nil {
		doc.Sequences = []Entity{}
	}
	if doc.Bonds == nil {
		doc.Bonds = []Bond{}
	}
	return yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
}
