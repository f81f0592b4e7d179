// Package enigma emulates the signal path of a three-rotor Enigma cipher machine.
//
// The building block is Permutation, a bijection over A-Z with its inverse. Reflector and PlugBoard are
// involutions built on top of it, RotorShifter wraps a wiring with a rotating offset and a turnover letter,
// and RotorChain owns the shifters (fastest first) and implements stepping with notch-triggered carry.
// Machine composes one plugboard, three rotors and one reflector:
//
//	machine, err := enigma.NewMachine(
//		[enigma.Rotors]enigma.RotorSpec{
//			{Wiring: enigma.RotorI, Turnover: enigma.TurnoverI},
//			{Wiring: enigma.RotorII, Turnover: enigma.TurnoverII},
//			{Wiring: enigma.RotorIII, Turnover: enigma.TurnoverIII},
//		},
//		enigma.ReflectorA,
//		[]enigma.Pair{{'A', 'E'}, {'M', 'Y'}},
//	)
//	ciphertext, err := machine.ProcessText("HELLO") // "KSUBR"
//
// The cipher is reciprocal: running the ciphertext through a machine reset to the same initial offsets
// yields the plaintext back.
//
// All wiring tables are validated on construction. Once a machine is assembled it can only fail on input
// letters outside A-Z; normalizing free text is left to the caller.
package enigma
