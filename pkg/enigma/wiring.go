package enigma

import (
	"slices"

	"github.com/samber/lo"
)

// Rotor wirings of the Enigma I (1930)
const (
	RotorI   = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	RotorII  = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	RotorIII = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
)

// Turnover letters: the offset at which each rotor pushes its slower neighbour
const (
	TurnoverI   byte = 'Q'
	TurnoverII  byte = 'E'
	TurnoverIII byte = 'V'
)

// Reflector wirings
const (
	ReflectorA = "EJMZALYXVBWFCRQUONTSPIKHGD"
	ReflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	ReflectorC = "FVPJIAOYEDRZXWGCTKUQSBNMHL"
)

// RotorSpec describes a rotor by its wiring table and turnover letter
type RotorSpec struct {
	Wiring   string
	Turnover byte
}

var rotorCatalog = map[string]RotorSpec{
	"I":   {Wiring: RotorI, Turnover: TurnoverI},
	"II":  {Wiring: RotorII, Turnover: TurnoverII},
	"III": {Wiring: RotorIII, Turnover: TurnoverIII},
}

var reflectorCatalog = map[string]string{
	"A": ReflectorA,
	"B": ReflectorB,
	"C": ReflectorC,
}

// Returns the historical rotor with the given roman-numeral name ("I", "II" or "III")
func LookupRotor(name string) (RotorSpec, bool) {
	spec, ok := rotorCatalog[name]
	return spec, ok
}

// Returns the historical reflector wiring with the given name ("A", "B" or "C")
func LookupReflector(name string) (string, bool) {
	wiring, ok := reflectorCatalog[name]
	return wiring, ok
}

// Returns the names of the available rotors in catalog order
func RotorNames() []string {
	names := lo.Keys(rotorCatalog)
	slices.SortFunc(names, func(a, b string) int {
		return len(a) - len(b) // Roman numerals up to III sort by length
	})
	return names
}

// Returns the names of the available reflectors in alphabetical order
func ReflectorNames() []string {
	names := lo.Keys(reflectorCatalog)
	slices.Sort(names)
	return names
}
