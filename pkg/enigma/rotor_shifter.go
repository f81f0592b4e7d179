package enigma

// RotorShifter turns a wiring permutation into a rotor: it applies a rotational offset around the wiring
// and knows the turnover offset at which it pushes its slower neighbour.
// The wiring is shared and never mutated; the offset changes on every step.
// Stepping (and therefore carry propagation) is driven by the RotorChain that owns the shifter
type RotorShifter struct {
	wiring     *Permutation
	offset     int
	turnover   int
	doubleStep bool
}

// Builds a shifter at the given offset letter with the given turnover letter.
// Returns an *InvalidSymbolError if either letter is outside A-Z
func NewRotorShifter(wiring *Permutation, offset, turnover byte) (*RotorShifter, error) {
	offsetSymbol, err := LetterToSymbol(offset)
	if err != nil {
		return nil, err
	}
	turnoverSymbol, err := LetterToSymbol(turnover)
	if err != nil {
		return nil, err
	}

	return &RotorShifter{
		wiring:   wiring,
		offset:   offsetSymbol,
		turnover: turnoverSymbol,
	}, nil
}

// Follows the signal through the rotor on its way towards the reflector
func (shifter *RotorShifter) Flow(symbol int) int {
	return wrap(shifter.wiring.Forward(wrap(symbol+shifter.offset)) - shifter.offset)
}

// Follows the signal through the rotor on its way back from the reflector. For any fixed offset, ReverseFlow(Flow(x)) == x
func (shifter *RotorShifter) ReverseFlow(symbol int) int {
	return wrap(shifter.wiring.Backward(wrap(symbol+shifter.offset)) - shifter.offset)
}

func (shifter *RotorShifter) Offset() byte {
	return SymbolToLetter(shifter.offset)
}

// Moves the rotor to the given offset letter. Unlike stepping, it never pushes the next rotor
func (shifter *RotorShifter) SetOffset(letter byte) error {
	symbol, err := LetterToSymbol(letter)
	if err != nil {
		return err
	}
	shifter.offset = symbol
	return nil
}

func (shifter *RotorShifter) Turnover() byte {
	return SymbolToLetter(shifter.turnover)
}

func (shifter *RotorShifter) SetTurnover(letter byte) error {
	symbol, err := LetterToSymbol(letter)
	if err != nil {
		return err
	}
	shifter.turnover = symbol
	return nil
}

// Checks whether the rotor currently sits on its turnover offset (i.e. the next step will carry)
func (shifter *RotorShifter) AtTurnover() bool {
	return shifter.offset == shifter.turnover
}

func (shifter *RotorShifter) DoubleStep() bool {
	return shifter.doubleStep
}

// Enables or disables the double-step anomaly for this rotor: when enabled and the rotor sits on its turnover
// at the moment a key is pressed, it advances itself (carrying into its slower neighbour) even if its faster
// neighbour does not push it. Meant for the middle rotor only; it has no effect on the fastest rotor
func (shifter *RotorShifter) SetDoubleStep(enabled bool) {
	shifter.doubleStep = enabled
}

func (shifter *RotorShifter) Wiring() *Permutation {
	return shifter.wiring
}
