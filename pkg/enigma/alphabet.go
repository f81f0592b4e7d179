package enigma

import "fmt"

// Number of symbols in the machine's alphabet (A-Z)
const AlphabetSize = 26

// Converts an uppercase letter into its alphabet symbol, where 'A' is 0 and 'Z' is 25
func LetterToSymbol(letter byte) (int, error) {
	return symbolAt(letter, -1)
}

// Converts an alphabet symbol back into its uppercase letter.
// Panics if symbol is outside [0, AlphabetSize), since symbols are only produced by the engine itself
func SymbolToLetter(symbol int) byte {
	if symbol < 0 || symbol >= AlphabetSize {
		panic(fmt.Sprintf("enigma: symbol %d is outside the alphabet", symbol))
	}
	return byte('A' + symbol)
}

func symbolAt(letter byte, position int) (int, error) {
	if letter < 'A' || letter > 'Z' {
		return 0, &InvalidSymbolError{Letter: letter, Position: position}
	}
	return int(letter - 'A'), nil
}

func lettersToSymbols(letters string) ([]int, error) {
	symbols := make([]int, len(letters))
	for i := range len(letters) {
		symbol, err := symbolAt(letters[i], i)
		if err != nil {
			return nil, err
		}
		symbols[i] = symbol
	}
	return symbols, nil
}

func symbolsToLetters(symbols []int) string {
	letters := make([]byte, len(symbols))
	for i, symbol := range symbols {
		letters[i] = SymbolToLetter(symbol)
	}
	return string(letters)
}

// Reduces any integer into the alphabet's range, wrapping Z->A and A->Z
func wrap(symbol int) int {
	return ((symbol % AlphabetSize) + AlphabetSize) % AlphabetSize
}
