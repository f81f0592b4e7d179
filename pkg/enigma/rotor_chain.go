package enigma

import "github.com/samber/lo"

const noNext = -1

// RotorChain owns a set of shifters ordered from the fastest to the slowest one.
// Carry only flows towards slower rotors, so the link to the next rotor is just an index into the same array.
// A chain is mutable state and is not safe for concurrent use
type RotorChain struct {
	rotors []*RotorShifter
	next   []int // Index of the slower neighbour, noNext for the slowest rotor
}

// Links the given shifters, fastest first, so that each one carries into the following one
func NewRotorChain(fastToSlow ...*RotorShifter) *RotorChain {
	next := make([]int, len(fastToSlow))
	for i := range next {
		next[i] = i + 1
	}
	if len(next) > 0 {
		next[len(next)-1] = noNext
	}

	return &RotorChain{
		rotors: fastToSlow,
		next:   next,
	}
}

func (chain *RotorChain) Len() int {
	return len(chain.rotors)
}

// Returns the i-th rotor, where 0 is the fastest
func (chain *RotorChain) Rotor(i int) *RotorShifter {
	return chain.rotors[i]
}

// Performs one keypress: the fastest rotor steps (carrying as needed), and every double-stepping rotor that sat
// on its turnover before the keypress advances itself unless the carry already moved it
func (chain *RotorChain) Step() {
	if len(chain.rotors) == 0 {
		return
	}

	// Decided before anything moves, as the pawls engage simultaneously
	doubleSteppers := lo.Filter(lo.Range(len(chain.rotors)), func(i int, _ int) bool {
		rotor := chain.rotors[i]
		return i > 0 && rotor.doubleStep && chain.next[i] != noNext && rotor.AtTurnover()
	})

	stepped := make([]bool, len(chain.rotors))
	chain.step(0, stepped)

	for _, i := range doubleSteppers {
		if !stepped[i] {
			chain.step(i, stepped)
		}
	}
}

// Steps the i-th rotor once following the base rule: if it sits on its turnover, its slower neighbour steps first;
// then its own offset advances by one, wrapping Z->A
func (chain *RotorChain) StepRotor(i int) {
	chain.step(i, make([]bool, len(chain.rotors)))
}

func (chain *RotorChain) step(i int, stepped []bool) {
	rotor := chain.rotors[i]
	if next := chain.next[i]; next != noNext && rotor.AtTurnover() {
		chain.step(next, stepped)
	}
	rotor.offset = wrap(rotor.offset + 1)
	stepped[i] = true
}

// Returns a unique index in [0, 26^Len) for the current offsets, the fastest rotor being the least significant digit
func (chain *RotorChain) Position() int {
	position := 0
	for i := len(chain.rotors) - 1; i >= 0; i-- {
		position = position*AlphabetSize + chain.rotors[i].offset
	}
	return position
}

// Restores the offsets encoded by Position. No carry takes place
func (chain *RotorChain) SetPosition(position int) {
	position = ((position % chain.positions()) + chain.positions()) % chain.positions()
	for _, rotor := range chain.rotors {
		rotor.offset = position % AlphabetSize
		position = position / AlphabetSize
	}
}

func (chain *RotorChain) positions() int {
	positions := 1
	for range chain.rotors {
		positions *= AlphabetSize
	}
	return positions
}
