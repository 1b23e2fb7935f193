package assembly

import (
	"errors"
	"strings"
)

// ErrAtomName is returned when a string cannot be encoded as an AtomName.
var ErrAtomName = errors.New("invalid atom name")

// atomNameBias is subtracted from every character of an atom name. Since a
// space is never part of a name, a zero slot means "unused".
const atomNameBias = 32

// AtomName is a compact fixed width encoding of an atom name of at most four
// printable characters. Each slot holds a character code minus 32, and zero
// slots are unused.
type AtomName [4]uint8

// EncodeAtomName encodes a name of one to four characters in the range
// '!'..'~'.
func EncodeAtomName(name string) (AtomName, error) {
	var an AtomName
	if len(name) == 0 || len(name) > len(an) {
		return an, ef("Atom name '%s' must have between 1 and %d "+
			"characters: %w", name, len(an), ErrAtomName)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c > '~' {
			return AtomName{}, ef("Atom name '%s' has an unprintable "+
				"character at position %d: %w", name, i, ErrAtomName)
		}
		an[i] = c - atomNameBias
	}
	return an, nil
}

// MustAtomName is like EncodeAtomName, but panics on error. It is meant for
// names known at compile time.
func MustAtomName(name string) AtomName {
	an, err := EncodeAtomName(name)
	if err != nil {
		panic(err)
	}
	return an
}

// String decodes the name, skipping unused slots.
func (an AtomName) String() string {
	var b strings.Builder
	for _, c := range an {
		if c != 0 {
			b.WriteByte(c + atomNameBias)
		}
	}
	return b.String()
}

// Valid returns true when the name decodes to a non-empty printable string.
func (an AtomName) Valid() bool {
	n := 0
	for _, c := range an {
		if c == 0 {
			continue
		}
		if c > '~'-atomNameBias {
			return false
		}
		n++
	}
	return n > 0
}
