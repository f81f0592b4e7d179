package enigma

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Pair is a single plugboard cable joining two letters, e.g. Pair{'A', 'E'}
type Pair [2]byte

func (pair Pair) String() string {
	return string(pair[:])
}

// PlugBoard is the identity permutation with a set of disjoint letter pairs swapped.
// Swapping disjoint pairs yields an involution, so Forward and Backward are the same operation
type PlugBoard struct {
	permutation *Permutation
	pairs       []Pair
}

// Builds a plugboard by swapping the images of each pair's letters, starting from the identity.
// Returns an *InvalidSymbolError for letters outside A-Z and a *DuplicateLetterError if a letter is used more than once
func NewPlugBoard(pairs []Pair) (*PlugBoard, error) {
	var images [AlphabetSize]int
	for symbol := range images {
		images[symbol] = symbol
	}

	used := make(map[byte]bool)
	for _, pair := range pairs {
		for _, letter := range pair {
			if _, err := LetterToSymbol(letter); err != nil {
				return nil, err
			}
			if used[letter] {
				return nil, &DuplicateLetterError{Letter: letter}
			}
			used[letter] = true
		}

		first, second := int(pair[0]-'A'), int(pair[1]-'A')
		images[first], images[second] = images[second], images[first]
	}

	return &PlugBoard{
		permutation: permutationFromImages(images),
		pairs:       slices.Clone(pairs),
	}, nil
}

// Parses plugboard pairs written as two-letter groups separated by spaces or commas, e.g. "AE MY" or "ae,my".
// An empty string yields no pairs
func ParsePairs(text string) ([]Pair, error) {
	groups := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	pairs := make([]Pair, 0, len(groups))
	for _, group := range groups {
		letters := strings.ToUpper(group) // May change the byte length, e.g. "ı" becomes "I"
		if len(letters) != 2 {
			return nil, fmt.Errorf("enigma: plugboard pair %q must have exactly two letters", group)
		}
		for i := range len(letters) {
			if _, err := LetterToSymbol(letters[i]); err != nil {
				return nil, err
			}
		}
		pairs = append(pairs, Pair{letters[0], letters[1]})
	}
	return pairs, nil
}

func (plugboard *PlugBoard) Forward(symbol int) int {
	return plugboard.permutation.Forward(symbol)
}

func (plugboard *PlugBoard) Backward(symbol int) int {
	return plugboard.permutation.Backward(symbol)
}

// Returns a copy of the pairs the plugboard was built from
func (plugboard *PlugBoard) Pairs() []Pair {
	return slices.Clone(plugboard.pairs)
}

func (plugboard *PlugBoard) String() string {
	groups := make([]string, len(plugboard.pairs))
	for i, pair := range plugboard.pairs {
		groups[i] = pair.String()
	}
	return strings.Join(groups, " ")
}
