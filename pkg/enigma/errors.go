package enigma

import "fmt"

// InvalidWiringError is returned when a wiring table is not a permutation of A-Z
type InvalidWiringError struct {
	Wiring string
	Reason string
}

func (err *InvalidWiringError) Error() string {
	return fmt.Sprintf("enigma: invalid wiring %q: %v", err.Wiring, err.Reason)
}

// InvalidReflectorError is returned when a reflector wiring is not a fixed-point-free involution
type InvalidReflectorError struct {
	Wiring string
	Reason string
}

func (err *InvalidReflectorError) Error() string {
	return fmt.Sprintf("enigma: invalid reflector %q: %v", err.Wiring, err.Reason)
}

// DuplicateLetterError is returned when a letter is used by more than one plugboard pair (or twice in the same pair)
type DuplicateLetterError struct {
	Letter byte
}

func (err *DuplicateLetterError) Error() string {
	return fmt.Sprintf("enigma: plugboard letter %q is used more than once", err.Letter)
}

// InvalidSymbolError is returned when a letter outside A-Z reaches the engine.
// Position is the index of the letter inside its sequence, or -1 for a lone letter
type InvalidSymbolError struct {
	Letter   byte
	Position int
}

func (err *InvalidSymbolError) Error() string {
	if err.Position < 0 {
		return fmt.Sprintf("enigma: invalid symbol %q: only A-Z are accepted", err.Letter)
	}
	return fmt.Sprintf("enigma: invalid symbol %q at position %d: only A-Z are accepted", err.Letter, err.Position)
}
