package pdb

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/TuftsBCB/structure"
)

// File is the content of PDB text as written by Marshal. Records other than
// ATOM, HETATM, TER and CONECT are ignored.
type File struct {
	Atoms []AtomRecord

	// Pairs of serial numbers, in the order of the CONECT records.
	Conects [][2]int

	// The number of TER records.
	Terminators int
}

// AtomRecord is a single ATOM or HETATM record. All string fields are
// trimmed of spaces.
type AtomRecord struct {
	Het       bool
	Serial    int
	Name      string
	ResName   string
	ChainTag  string
	ResSeq    int
	Occupancy float64
	BFactor   float64
	Element   string
	structure.Coords
}

// Atom returns the atom record with the serial number given, or nil.
func (f *File) Atom(serial int) *AtomRecord {
	for i := range f.Atoms {
		if f.Atoms[i].Serial == serial {
			return &f.Atoms[i]
		}
	}
	return nil
}

type pdbParser struct {
	file   *File
	line   []byte
	lineno int
}

// Read parses fixed column PDB records. It does not try to reconstruct
// chains or residues; it reports records in the order they appear.
func Read(r io.Reader) (*File, error) {
	parser := pdbParser{file: &File{}}

	breader := bufio.NewReaderSize(r, 1000)
	for {
		// Lines longer than the buffer only carry columns we don't read.
		line, _, err := breader.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != io.EOF && err != nil {
			return nil, err
		}
		parser.line = line
		parser.lineno++
		if err := parser.parseLine(); err != nil {
			return nil, ef("Error on line %d: %s", parser.lineno, err)
		}
	}
	return parser.file, nil
}

func (p *pdbParser) parseLine() error {
	switch p.cols(1, 6) {
	case "ATOM":
		return p.parseAtom(false)
	case "HETATM":
		return p.parseAtom(true)
	case "TER":
		p.file.Terminators++
	case "CONECT":
		from, err := p.atoi(7, 11)
		if err != nil {
			return err
		}
		// A CONECT record may list up to four bonded atoms.
		for c := 12; c <= 27; c += 5 {
			if len(p.cols(c, c+4)) == 0 {
				break
			}
			to, err := p.atoi(c, c+4)
			if err != nil {
				return err
			}
			p.file.Conects = append(p.file.Conects, [2]int{from, to})
		}
	}
	return nil
}

func (p *pdbParser) parseAtom(het bool) error {
	var err error
	atom := AtomRecord{
		Het:      het,
		Name:     p.cols(13, 16),
		ResName:  p.cols(18, 20),
		ChainTag: p.cols(22, 22),
		Element:  p.cols(77, 78),
	}
	if atom.Serial, err = p.atoi(7, 11); err != nil {
		return err
	}
	if atom.ResSeq, err = p.atoi(23, 26); err != nil {
		return err
	}
	if atom.X, err = p.atof(31, 38); err != nil {
		return err
	}
	if atom.Y, err = p.atof(39, 46); err != nil {
		return err
	}
	if atom.Z, err = p.atof(47, 54); err != nil {
		return err
	}
	if atom.Occupancy, err = p.atof(55, 60); err != nil {
		return err
	}
	if atom.BFactor, err = p.atof(61, 66); err != nil {
		return err
	}
	p.file.Atoms = append(p.file.Atoms, atom)
	return nil
}

func (p *pdbParser) atoi(start, end int) (int, error) {
	return strconv.Atoi(p.cols(start, end))
}

func (p *pdbParser) atof(start, end int) (float64, error) {
	return strconv.ParseFloat(p.cols(start, end), 64)
}

// cols returns the trimmed text in the 1-based, inclusive column range.
func (p *pdbParser) cols(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) || rs < 0 {
		return ""
	}
	if re > len(p.line) {
		re = len(p.line)
	}
	if re < rs {
		return ""
	}
	return string(bytes.TrimSpace(p.line[rs:re]))
}
