package enigma_test

import (
	"fmt"

	"github.com/limaJavier/enigma/pkg/enigma"
)

func ExampleNewMachine() {
	rotors := [enigma.Rotors]enigma.RotorSpec{
		{Wiring: enigma.RotorI, Turnover: enigma.TurnoverI},
		{Wiring: enigma.RotorII, Turnover: enigma.TurnoverII},
		{Wiring: enigma.RotorIII, Turnover: enigma.TurnoverIII},
	}
	pairs := []enigma.Pair{{'A', 'E'}, {'M', 'Y'}}

	machine, err := enigma.NewMachine(rotors, enigma.ReflectorA, pairs)
	if err != nil {
		panic(err)
	}

	ciphertext, _ := machine.ProcessText("HELLO")
	machine.Reset()
	plaintext, _ := machine.ProcessText(ciphertext)

	fmt.Println(ciphertext, plaintext, machine.Offsets())
	// Output: KSUBR HELLO AAF
}

func ExampleMachine_Stream() {
	rotors := [enigma.Rotors]enigma.RotorSpec{
		{Wiring: enigma.RotorI, Turnover: enigma.TurnoverI},
		{Wiring: enigma.RotorII, Turnover: enigma.TurnoverII},
		{Wiring: enigma.RotorIII, Turnover: enigma.TurnoverIII},
	}
	machine, _ := enigma.NewMachine(rotors, enigma.ReflectorB, nil)

	for letter, err := range machine.Stream(enigma.Letters("AAAAA")) {
		if err != nil {
			panic(err)
		}
		fmt.Printf("%c", letter)
	}
	fmt.Println()
	// Output: BDZGO
}
