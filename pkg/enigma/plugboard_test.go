package enigma

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugBoardFlow(t *testing.T) {
	plugboard, err := NewPlugBoard([]Pair{{'A', 'E'}, {'M', 'Y'}})
	require.NoError(t, err)

	assert.Equal(t, 4, plugboard.Forward(0))   // A -> E
	assert.Equal(t, 0, plugboard.Forward(4))   // E -> A
	assert.Equal(t, 24, plugboard.Forward(12)) // M -> Y
	assert.Equal(t, 12, plugboard.Forward(24)) // Y -> M
	assert.Equal(t, 1, plugboard.Forward(1))   // Unplugged letters map to themselves
	assert.Equal(t, "EBCDAFGHIJKLYNOPQRSTUVWXMZ", plugboard.permutation.String())
	assert.Equal(t, "AE MY", plugboard.String())
}

func TestPlugBoardSwapsInSequence(t *testing.T) {
	single, err := NewPlugBoard([]Pair{{'A', 'E'}})
	require.NoError(t, err)
	assert.Equal(t, "EBCDAFGHIJKLMNOPQRSTUVWXYZ", single.permutation.String())

	empty, err := NewPlugBoard(nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", empty.permutation.String())
	assert.Empty(t, empty.Pairs())
}

func TestPlugBoardIsInvolutionNonDeterministic(t *testing.T) {
	for range 50 {
		// Arrange
		pairs := randomPairs(rand.Intn(14))
		plugboard, err := NewPlugBoard(pairs)
		require.NoError(t, err)

		// Act & Assert
		for symbol := range AlphabetSize {
			assert.Equal(t, symbol, plugboard.Forward(plugboard.Forward(symbol)))
			assert.Equal(t, plugboard.Forward(symbol), plugboard.Backward(symbol))
		}
		assert.Equal(t, pairs, plugboard.Pairs())
	}
}

func TestNewPlugBoardRejectsDuplicateLetters(t *testing.T) {
	cases := []struct {
		name   string
		pairs  []Pair
		letter byte
	}{
		{"AcrossPairs", []Pair{{'A', 'E'}, {'E', 'M'}}, 'E'},
		{"WithinPair", []Pair{{'A', 'A'}}, 'A'},
		{"RepeatedPair", []Pair{{'A', 'E'}, {'A', 'E'}}, 'A'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plugboard, err := NewPlugBoard(tc.pairs)

			var duplicateErr *DuplicateLetterError
			assert.Nil(t, plugboard)
			require.True(t, errors.As(err, &duplicateErr), "error must be DuplicateLetterError, got %v", err)
			assert.Equal(t, tc.letter, duplicateErr.Letter)
		})
	}
}

func TestNewPlugBoardRejectsInvalidLetters(t *testing.T) {
	_, err := NewPlugBoard([]Pair{{'a', 'E'}})

	var symbolErr *InvalidSymbolError
	assert.True(t, errors.As(err, &symbolErr))
	assert.Equal(t, byte('a'), symbolErr.Letter)
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs("AE MY")
	assert.Nil(t, err)
	assert.Equal(t, []Pair{{'A', 'E'}, {'M', 'Y'}}, pairs)

	pairs, err = ParsePairs(" po,ml  IU\tkj ")
	assert.Nil(t, err)
	assert.Equal(t, []Pair{{'P', 'O'}, {'M', 'L'}, {'I', 'U'}, {'K', 'J'}}, pairs)

	pairs, err = ParsePairs("")
	assert.Nil(t, err)
	assert.Empty(t, pairs)

	_, err = ParsePairs("AE MYZ")
	assert.NotNil(t, err)
}

func TestParsePairsNonAsciiLetters(t *testing.T) {
	// Upper-casing shrinks these to a single byte
	for _, text := range []string{"ſ", "AE ı"} {
		assert.NotPanics(t, func() {
			_, err := ParsePairs(text)
			assert.Error(t, err, text)
		})
	}

	_, err := ParsePairs("AE é")
	var symbolErr *InvalidSymbolError
	assert.True(t, errors.As(err, &symbolErr))
}

// Returns count disjoint pairs drawn at random
func randomPairs(count int) []Pair {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rand.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })

	pairs := make([]Pair, count)
	for i := range count {
		pairs[i] = Pair{letters[2*i], letters[2*i+1]}
	}
	return pairs
}
