package enigma

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
)

// Number of rotor slots in a machine
const Rotors = 3

// Machine composes a plugboard, three rotors and a reflector into the full signal path:
//
//	in -> plugboard -> rotor3 -> rotor2 -> rotor1 -> reflector -> rotor1 -> rotor2 -> rotor3 -> plugboard -> out
//
// where rotor1 is the leftmost (slowest) rotor and rotor3 the rightmost (fastest) one.
// Every processed letter moves the rotors, so a Machine is a single unit of mutable state and is not safe for
// concurrent use. Encrypting and decrypting are the same operation from the same initial offsets
type Machine struct {
	plugboard *PlugBoard
	reflector *Reflector
	chain     *RotorChain // Fastest rotor first
	initial   int         // Chain position restored by Reset
}

type machineConfig struct {
	offsets    string
	doubleStep bool
}

// Option customizes a machine built by NewMachine
type Option func(config *machineConfig) error

// Sets every rotor to the same initial offset letter (the default is 'A')
func WithStartLetter(letter byte) Option {
	return func(config *machineConfig) error {
		if _, err := LetterToSymbol(letter); err != nil {
			return err
		}
		config.offsets = strings.Repeat(string(letter), Rotors)
		return nil
	}
}

// Sets the initial offsets from left (slowest) to right (fastest), e.g. "ADU"
func WithOffsets(offsets string) Option {
	return func(config *machineConfig) error {
		if _, err := parseOffsets(offsets); err != nil {
			return err
		}
		config.offsets = offsets
		return nil
	}
}

// Enables the historical double-step anomaly on the middle rotor
func WithDoubleStep() Option {
	return func(config *machineConfig) error {
		config.doubleStep = true
		return nil
	}
}

// Assembles a machine from three rotors given from left (slowest) to right (fastest), a reflector wiring and the
// plugboard pairs. All rotors start at 'A' unless an option says otherwise.
// Every table is validated here, so a machine that was built successfully cannot fail while processing letters
func NewMachine(rotors [Rotors]RotorSpec, reflectorWiring string, pairs []Pair, options ...Option) (*Machine, error) {
	config := machineConfig{offsets: strings.Repeat("A", Rotors)}
	for _, option := range options {
		if err := option(&config); err != nil {
			return nil, err
		}
	}
	offsets, _ := parseOffsets(config.offsets) // Already validated by the option

	//** Build components
	plugboard, err := NewPlugBoard(pairs)
	if err != nil {
		return nil, err
	}

	reflector, err := NewReflector(reflectorWiring)
	if err != nil {
		return nil, err
	}

	var shifters [Rotors]*RotorShifter
	for i, spec := range rotors {
		wiring, err := NewPermutation(spec.Wiring)
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i+1, err)
		}
		shifters[i], err = NewRotorShifter(wiring, offsets[i], spec.Turnover)
		if err != nil {
			return nil, fmt.Errorf("rotor %d turnover: %w", i+1, err)
		}
	}
	shifters[1].SetDoubleStep(config.doubleStep)

	return Assemble(shifters[0], shifters[1], shifters[2], reflector, plugboard), nil
}

// Composes already built components. rotor1 is the leftmost (slowest) rotor and rotor3 the rightmost (fastest) one;
// the machine takes ownership of the shifters and records their current offsets as the ones restored by Reset.
// Reflectors and plugboards are immutable and may be shared between machines
func Assemble(rotor1, rotor2, rotor3 *RotorShifter, reflector *Reflector, plugboard *PlugBoard) *Machine {
	chain := NewRotorChain(rotor3, rotor2, rotor1)
	return &Machine{
		plugboard: plugboard,
		reflector: reflector,
		chain:     chain,
		initial:   chain.Position(),
	}
}

// Encrypts (or decrypts) a single letter. The rotors step before the substitution is computed,
// so the letter is transformed with the offsets reached after stepping.
// Returns an *InvalidSymbolError, without moving any rotor, if the letter is outside A-Z
func (machine *Machine) ProcessSymbol(letter byte) (byte, error) {
	symbol, err := LetterToSymbol(letter)
	if err != nil {
		return 0, err
	}
	return SymbolToLetter(machine.processSymbol(symbol)), nil
}

func (machine *Machine) processSymbol(symbol int) int {
	machine.chain.Step()
	fast, middle, slow := machine.chain.Rotor(0), machine.chain.Rotor(1), machine.chain.Rotor(2)

	//** Forward pass
	signal := machine.plugboard.Forward(symbol)
	signal = slow.Flow(middle.Flow(fast.Flow(signal)))

	//** Reflection
	signal = machine.reflector.Forward(signal)

	//** Reverse pass
	signal = fast.ReverseFlow(middle.ReverseFlow(slow.ReverseFlow(signal)))
	return machine.plugboard.Backward(signal)
}

// Returns a lazy sequence with one output letter per input letter.
// The sequence is single-use: every element consumed permanently moves the rotors, so iterating it again (or
// replaying the same input) produces different letters unless the offsets are reset first.
// If an input letter is outside A-Z, an *InvalidSymbolError is yielded for it and the sequence stops
func (machine *Machine) Stream(letters iter.Seq[byte]) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		position := 0
		for letter := range letters {
			symbol, err := symbolAt(letter, position)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(SymbolToLetter(machine.processSymbol(symbol)), nil) {
				return
			}
			position++
		}
	}
}

// Adapts a string of letters into the sequence consumed by Stream
func Letters(text string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := range len(text) {
			if !yield(text[i]) {
				return
			}
		}
	}
}

// Transforms a whole text of uppercase letters into a text of the same length.
// The input is validated before any rotor moves, so on error the machine is left untouched
func (machine *Machine) ProcessText(text string) (string, error) {
	symbols, err := lettersToSymbols(text)
	if err != nil {
		return "", err
	}

	for i, symbol := range symbols {
		symbols[i] = machine.processSymbol(symbol)
	}
	return symbolsToLetters(symbols), nil
}

// Moves the rotors as a keypress would, without transforming any letter
func (machine *Machine) Step() {
	machine.chain.Step()
}

// Returns the current offsets from left (slowest) to right (fastest), e.g. "AAB"
func (machine *Machine) Offsets() string {
	offsets := make([]byte, Rotors)
	for i := range Rotors {
		offsets[i] = machine.chain.Rotor(Rotors - 1 - i).Offset()
	}
	return string(offsets)
}

// Sets the offsets from left (slowest) to right (fastest). No carry takes place
func (machine *Machine) SetOffsets(offsets string) error {
	letters, err := parseOffsets(offsets)
	if err != nil {
		return err
	}
	for i, letter := range letters {
		lo.Must0(machine.chain.Rotor(Rotors - 1 - i).SetOffset(letter)) // Validated by parseOffsets
	}
	return nil
}

// Restores the offsets the machine was assembled with
func (machine *Machine) Reset() {
	machine.chain.SetPosition(machine.initial)
}

// Returns the index of the current rotor offsets in [0, 26^3), see RotorChain.Position
func (machine *Machine) Position() int {
	return machine.chain.Position()
}

func (machine *Machine) Reflector() *Reflector {
	return machine.reflector
}

func (machine *Machine) PlugBoard() *PlugBoard {
	return machine.plugboard
}

// Returns the rotor in the given slot, where 1 is the leftmost (slowest) and 3 the rightmost (fastest) rotor
func (machine *Machine) Rotor(slot int) *RotorShifter {
	return machine.chain.Rotor(Rotors - slot)
}

func parseOffsets(offsets string) ([]byte, error) {
	if len(offsets) != Rotors {
		return nil, fmt.Errorf("enigma: expected %d rotor offsets, got %q", Rotors, offsets)
	}
	if _, err := lettersToSymbols(offsets); err != nil {
		return nil, err
	}
	return []byte(offsets), nil
}
