package enigma

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationFlow(t *testing.T) {
	permutation, err := NewPermutation(RotorI)
	require.NoError(t, err)

	assert.Equal(t, 4, permutation.Forward(0))   // A -> E
	assert.Equal(t, 13, permutation.Forward(10)) // K -> N
	assert.Equal(t, 0, permutation.Backward(4))  // E -> A
	assert.Equal(t, 10, permutation.Backward(13))
	assert.Equal(t, RotorI, permutation.String())
}

func TestPermutationRoundTripDeterministic(t *testing.T) {
	for _, wiring := range []string{RotorI, RotorII, RotorIII, ReflectorA, ReflectorB, ReflectorC} {
		// Arrange
		permutation, err := NewPermutation(wiring)
		require.NoError(t, err)

		for symbol := range AlphabetSize {
			// Act
			image := permutation.Forward(symbol)

			// Assert
			assert.Equal(t, symbol, permutation.Backward(image))
			assert.Equal(t, image, permutation.Backward(permutation.Forward(image)))
		}
	}
}

func TestPermutationRoundTripNonDeterministic(t *testing.T) {
	for range 50 {
		// Arrange
		wiring := randomWiring()
		permutation, err := NewPermutation(wiring)
		require.NoError(t, err)

		// Act & Assert
		for symbol := range AlphabetSize {
			assert.Equal(t, symbol, permutation.Backward(permutation.Forward(symbol)))
			assert.Equal(t, symbol, permutation.Forward(permutation.Backward(symbol)))
		}
		assert.Equal(t, wiring, permutation.String())
	}
}

func TestNewPermutationRejectsInvalidWirings(t *testing.T) {
	cases := []struct {
		name   string
		wiring string
	}{
		{"Empty", ""},
		{"TooShort", RotorI[:25]},
		{"TooLong", RotorI + "A"},
		{"Lowercase", strings.ToLower(RotorI)},
		{"NonLetter", "EKMFLGDQVZNTOWYHXUSPAIBRC1"},
		{"Duplicate", "EKMFLGDQVZNTOWYHXUSPAIBRCE"},
		{"Identity with a repeat", "AACDEFGHIJKLMNOPQRSTUVWXYZ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			permutation, err := NewPermutation(tc.wiring)

			var wiringErr *InvalidWiringError
			assert.Nil(t, permutation)
			assert.True(t, errors.As(err, &wiringErr), "error must be InvalidWiringError, got %v", err)
			assert.Equal(t, tc.wiring, wiringErr.Wiring)
		})
	}
}

func randomWiring() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rand.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
	return string(letters)
}
