package assembly

import (
	"errors"
	"strings"
)

// ErrUnknownElement is returned for atomic numbers and symbols that are not
// in the periodic table.
var ErrUnknownElement = errors.New("unknown element")

// elementSymbols is indexed by atomic number. Index 0 is unused.
var elementSymbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er",
	"Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// elementNumbers is the reverse of elementSymbols, keyed by upper case
// symbol. It is created in this package's 'init' function.
var elementNumbers = map[string]int{}

func init() {
	for z, sym := range elementSymbols {
		if z > 0 {
			elementNumbers[strings.ToUpper(sym)] = z
		}
	}
}

// ElementSymbol returns the symbol (e.g., "Fe") of the element with the
// atomic number given.
func ElementSymbol(z int) (string, error) {
	if z < 1 || z >= len(elementSymbols) {
		return "", ef("No element has atomic number %d: %w",
			z, ErrUnknownElement)
	}
	return elementSymbols[z], nil
}

// ElementNumber returns the atomic number of the element with the symbol
// given. The comparison is case insensitive.
func ElementNumber(symbol string) (int, error) {
	if z, ok := elementNumbers[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return z, nil
	}
	return 0, ef("No element has the symbol '%s': %w", symbol, ErrUnknownElement)
}
