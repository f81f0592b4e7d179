package enigma

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Permutation is a bijective mapping over the alphabet together with its inverse.
// It is immutable after construction and therefore safe to share between rotors, machines and goroutines
type Permutation struct {
	forward  [AlphabetSize]int
	backward [AlphabetSize]int
}

// Builds a permutation from the images of A, B, ..., Z in order (e.g. "EKMFLGDQVZNTOWYHXUSPAIBRCJ" maps A->E, B->K, ...).
// Returns an *InvalidWiringError if the wiring does not hold exactly 26 letters or if a letter is repeated
func NewPermutation(wiring string) (*Permutation, error) {
	if len(wiring) != AlphabetSize {
		return nil, &InvalidWiringError{
			Wiring: wiring,
			Reason: fmt.Sprintf("expected %d letters, got %d", AlphabetSize, len(wiring)),
		}
	}

	symbols, err := lettersToSymbols(wiring)
	var symbolErr *InvalidSymbolError
	if errors.As(err, &symbolErr) {
		return nil, &InvalidWiringError{
			Wiring: wiring,
			Reason: fmt.Sprintf("%q at position %d is not a letter between A and Z", symbolErr.Letter, symbolErr.Position),
		}
	}

	// With exactly 26 symbols in range, the absence of duplicates is equivalent to bijectivity
	if duplicates := lo.FindDuplicates(symbols); len(duplicates) > 0 {
		return nil, &InvalidWiringError{
			Wiring: wiring,
			Reason: fmt.Sprintf("not a bijection, %v appear more than once", symbolsToLetters(duplicates)),
		}
	}

	var images [AlphabetSize]int
	copy(images[:], symbols)
	return permutationFromImages(images), nil
}

// Images must already be a bijection
func permutationFromImages(images [AlphabetSize]int) *Permutation {
	permutation := &Permutation{forward: images}
	for input, output := range images {
		permutation.backward[output] = input
	}
	return permutation
}

func (permutation *Permutation) Forward(symbol int) int {
	return permutation.forward[symbol]
}

func (permutation *Permutation) Backward(symbol int) int {
	return permutation.backward[symbol]
}

// Returns the wiring in the same 26-letter form accepted by NewPermutation
func (permutation *Permutation) String() string {
	var builder strings.Builder
	for _, symbol := range permutation.forward {
		builder.WriteByte(SymbolToLetter(symbol))
	}
	return builder.String()
}
