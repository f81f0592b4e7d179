package main

import (
	"slices"

	"github.com/samber/lo"
)

// Returns every sequence of slots distinct indices in [0, size), in lexicographic order.
// Positions are filled from left to right, skipping the indices already placed
func distinctSequences(size, slots int) [][]int {
	sequences := make([][]int, 0)
	sequence := make([]int, 0, slots)
	used := make([]bool, size)

	var extend func()
	extend = func() {
		if len(sequence) == slots {
			sequences = append(sequences, slices.Clone(sequence))
			return
		}

		for index := range size {
			if used[index] {
				continue
			}
			used[index] = true
			sequence = append(sequence, index)

			extend()

			sequence = sequence[:len(sequence)-1]
			used[index] = false
		}
	}

	extend()
	return sequences
}

// Returns every way of placing slots distinct rotors taken from names, following the order of names
func rotorOrders(names []string, slots int) [][]string {
	return lo.Map(distinctSequences(len(names), slots), func(sequence []int, _ int) []string {
		return lo.Map(sequence, func(index int, _ int) string { return names[index] })
	})
}
