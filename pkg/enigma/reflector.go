package enigma

import "fmt"

// Reflector is a permutation that is its own inverse and maps no letter onto itself.
// Since backward and forward coincide, only Forward is exposed and the machine uses it on the way back as well
type Reflector struct {
	permutation *Permutation
}

// Builds a reflector from the images of A, B, ..., Z in order.
// Returns an *InvalidWiringError if the wiring is not a permutation and an *InvalidReflectorError if it is not a fixed-point-free involution
func NewReflector(wiring string) (*Reflector, error) {
	permutation, err := NewPermutation(wiring)
	if err != nil {
		return nil, err
	}

	for symbol := range AlphabetSize {
		image := permutation.Forward(symbol)
		if image == symbol {
			return nil, &InvalidReflectorError{
				Wiring: wiring,
				Reason: fmt.Sprintf("%c is wired to itself", SymbolToLetter(symbol)),
			}
		}
		if permutation.Forward(image) != symbol {
			return nil, &InvalidReflectorError{
				Wiring: wiring,
				Reason: fmt.Sprintf("not self-inverse, %c->%c but %c->%c", SymbolToLetter(symbol), SymbolToLetter(image), SymbolToLetter(image), SymbolToLetter(permutation.Forward(image))),
			}
		}
	}

	return &Reflector{permutation: permutation}, nil
}

func (reflector *Reflector) Forward(symbol int) int {
	return reflector.permutation.Forward(symbol)
}

func (reflector *Reflector) String() string {
	return reflector.permutation.String()
}
