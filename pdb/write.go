package pdb

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/TuftsBCB/foldio/assembly"
)

var (
	ef = fmt.Errorf
)

var (
	// ErrIndexOutOfRange is wrapped by errors about values that do not fit
	// the structure or the output: a confidence index past the end of the
	// confidences, a bond to an atom that does not exist, or a number that
	// is too wide for its column.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLookupFailure is wrapped by errors about values that have no
	// representation in the output, like an unknown element or a coordinate
	// that is not a number.
	ErrLookupFailure = errors.New("lookup failure")
)

// LineWidth is the width every output line is padded to.
const LineWidth = 80

const (
	atomFormat = "%-6s%5d %-4s%1s%3s %1s%4d%1s   " +
		"%8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s"
	terFormat    = "TER   %5d      %3s %1s%4d"
	conectFormat = "CONECT%5d%5d"

	occupancy = 1.0
	maxSerial = 99999
	minResSeq = -999
	maxResSeq = 9999
)

// Writer writes structures as PDB text.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w}
}

// Write renders the structure and writes it in one piece. If the structure
// cannot be rendered, nothing is written.
//
// The confidences are per residue and are written to the B-factor column
// scaled by 100. Polymer residues take one slot each. Ligand atoms are
// counted after the last polymer residue seen (see bfactorCursor). When
// confidences is nil, every B-factor is 100.00.
func (w *Writer) Write(s *assembly.Structure, confidences []float64) error {
	text, err := Marshal(s, confidences)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w.w, text)
	return err
}

// Marshal renders the structure as PDB text. The returned text has one
// record per line, each padded to LineWidth, and ends with an END record
// followed by a blank (padded) line without a trailing newline.
func Marshal(s *assembly.Structure, confidences []float64) (string, error) {
	if err := s.Validate(); err != nil {
		return "", ef("%w: %w", ErrIndexOutOfRange, err)
	}
	e := &emitter{
		s:       s,
		cursor:  newBfactorCursor(confidences),
		serial:  1,
		serials: make([]int, len(s.Atoms)),
	}
	if err := e.chains(); err != nil {
		return "", err
	}
	if err := e.conects(); err != nil {
		return "", err
	}
	e.line("END")
	e.line("")

	var out strings.Builder
	for i, line := range e.lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(line)
	}
	return out.String(), nil
}

// emitter holds the state of a single rendering of a structure.
type emitter struct {
	s      *assembly.Structure
	cursor *bfactorCursor
	lines  []string

	// The next serial number, and the serial number of every atom by its
	// index in s.Atoms (0 for atoms that were not written).
	serial  int
	serials []int
}

func (e *emitter) line(format string, v ...interface{}) {
	line := fmt.Sprintf(format, v...)
	if n := LineWidth - len(line); n > 0 {
		line += strings.Repeat(" ", n)
	}
	e.lines = append(e.lines, line)
}

func (e *emitter) chains() error {
	for ci, c := range e.s.Chains {
		if len(c.Name) > 1 {
			return ef("Chain tag '%s' of chain %d does not fit in one "+
				"column: %w", c.Name, ci, ErrIndexOutOfRange)
		}
		if len(c.Name) == 1 && (c.Name[0] <= ' ' || c.Name[0] > '~') {
			return ef("Chain tag %q of chain %d is not printable: %w",
				c.Name, ci, ErrLookupFailure)
		}

		var last assembly.Residue
		for _, r := range e.s.ChainResidues(c) {
			if err := e.residue(c, r); err != nil {
				return err
			}
			if c.MolType.Polymer() {
				e.cursor.nextResidue()
			}
			last = r
		}

		if ci < len(e.s.Chains)-1 {
			if err := e.checkSerial(); err != nil {
				return err
			}
			resName := ""
			if c.ResNum > 0 {
				resName = displayName(c, last)
			}
			e.line(terFormat, e.serial, resName, c.Name, last.ResIdx+1)
			e.serial++
		}
	}
	return nil
}

func (e *emitter) residue(c assembly.Chain, r assembly.Residue) error {
	record := "ATOM"
	if !c.MolType.Polymer() {
		record = "HETATM"
	}
	resName := displayName(c, r)
	resSeq := r.ResIdx + 1
	if resSeq < minResSeq || resSeq > maxResSeq {
		return ef("Residue index %d of chain '%s' does not fit in 4 "+
			"columns: %w", resSeq, c.Name, ErrIndexOutOfRange)
	}

	for i, atom := range e.s.ResidueAtoms(r) {
		if !atom.Present {
			continue
		}
		index := r.AtomIdx + i

		var bfactor float64
		var err error
		if c.MolType.Polymer() {
			bfactor, err = e.cursor.polymer()
		} else {
			bfactor, err = e.cursor.ligand()
		}
		if err != nil {
			return ef("Atom %d (%s %d, chain '%s'): %w",
				index, resName, resSeq, c.Name, err)
		}

		element, err := assembly.ElementSymbol(atom.Element)
		if err != nil {
			return ef("Atom %d (%s %d, chain '%s'): %w: %w",
				index, resName, resSeq, c.Name, ErrLookupFailure, err)
		}
		for _, v := range []float64{atom.X, atom.Y, atom.Z} {
			if err := checkFixed(v, 8, 3); err != nil {
				return ef("Coordinates of atom %d (%s %d, chain '%s'): %w",
					index, resName, resSeq, c.Name, err)
			}
		}
		if err := checkFixed(bfactor, 6, 2); err != nil {
			return ef("B-factor of atom %d (%s %d, chain '%s'): %w",
				index, resName, resSeq, c.Name, err)
		}
		if err := e.checkSerial(); err != nil {
			return err
		}

		e.line(atomFormat,
			record, e.serial, atomName(atom.Name), "", resName, c.Name,
			resSeq, "",
			atom.X, atom.Y, atom.Z, occupancy, bfactor,
			strings.ToUpper(element), "")
		e.serials[index] = e.serial
		e.serial++
	}
	return nil
}

func (e *emitter) conects() error {
	for _, bonds := range [][]assembly.Bond{e.s.Bonds, e.s.Connections} {
		for _, b := range bonds {
			if b.Atom1 < 0 || b.Atom1 >= len(e.s.Atoms) ||
				b.Atom2 < 0 || b.Atom2 >= len(e.s.Atoms) {
				return ef("Bond %d-%d refers to an atom outside of %d "+
					"atoms: %w", b.Atom1, b.Atom2, len(e.s.Atoms),
					ErrIndexOutOfRange)
			}
			s1, s2 := e.serials[b.Atom1], e.serials[b.Atom2]
			if s1 == 0 || s2 == 0 {
				continue
			}
			e.line(conectFormat, s1, s2)
		}
	}
	return nil
}

func (e *emitter) checkSerial() error {
	if e.serial > maxSerial {
		return ef("Serial number %d does not fit in 5 columns: %w",
			e.serial, ErrIndexOutOfRange)
	}
	return nil
}

// displayName returns the residue name written for a residue: "LIG" for
// every ligand, or the first three characters of a polymer residue name.
// Residue names are ASCII (see assembly.Structure.Validate).
func displayName(c assembly.Chain, r assembly.Residue) string {
	if !c.MolType.Polymer() {
		return "LIG"
	}
	if len(r.Name) > 3 {
		return r.Name[:3]
	}
	return r.Name
}

// atomName returns the name as it is written in columns 13-16. Names of
// four characters start in column 13, shorter names in column 14.
func atomName(an assembly.AtomName) string {
	name := an.String()
	if len(name) == 4 {
		return name
	}
	return " " + name
}

// checkFixed returns an error if v cannot be written with the given width
// and precision.
func checkFixed(v float64, width, prec int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ef("%v is not a number: %w", v, ErrLookupFailure)
	}
	if s := fmt.Sprintf("%.*f", prec, v); len(s) > width {
		return ef("%s does not fit in %d columns: %w",
			s, width, ErrIndexOutOfRange)
	}
	return nil
}

// bfactorCursor maps atoms to slots of a per-residue confidence sequence.
//
// Polymer atoms read the slot of their residue, shifted by the number of
// ligand slots consumed so far. Ligand atoms first consume a slot and then
// read relative to the last polymer residue boundary, which is -1 before
// any polymer atom was written. Note that every ligand atom (not residue)
// consumes a slot.
type bfactorCursor struct {
	conf []float64

	residues     int
	ligandOffset int
	lastPolymer  int
}

func newBfactorCursor(conf []float64) *bfactorCursor {
	return &bfactorCursor{conf: conf, lastPolymer: -1}
}

func (c *bfactorCursor) polymer() (float64, error) {
	c.lastPolymer = c.residues
	return c.at(c.residues + c.ligandOffset)
}

func (c *bfactorCursor) ligand() (float64, error) {
	c.ligandOffset++
	return c.at(c.lastPolymer + c.ligandOffset)
}

// nextResidue is called after every residue of a polymer chain.
func (c *bfactorCursor) nextResidue() {
	c.residues++
}

func (c *bfactorCursor) at(i int) (float64, error) {
	if c.conf == nil {
		return 100, nil
	}
	if i < 0 || i >= len(c.conf) {
		return 0, ef("Confidence index %d is out of range for %d "+
			"confidences: %w", i, len(c.conf), ErrIndexOutOfRange)
	}
	return math.Round(c.conf[i]*100*100) / 100, nil
}
