package settings

import (
	"fmt"
	"strings"

	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/samber/lo"
)

// RawRotor is a rotor as written in a settings file: either a catalog name ("I", "II", "III") or a custom wiring
// with its turnover letter. A turnover given next to a name overrides the catalog's one
type RawRotor struct {
	Name     string `mapstructure:"name"`
	Wiring   string `mapstructure:"wiring"`
	Turnover string `mapstructure:"turnover"`
}

// RawSettings holds the machine settings as decoded from defaults, files, environment and flags, before validation
type RawSettings struct {
	Rotors          []RawRotor `mapstructure:"rotors"`           // From left (slowest) to right (fastest)
	Reflector       string     `mapstructure:"reflector"`        // Catalog name ("A", "B", "C")
	ReflectorWiring string     `mapstructure:"reflector_wiring"` // Custom wiring, takes precedence over Reflector
	Plugboard       []string   `mapstructure:"plugboard"`        // Two-letter groups, e.g. ["AE", "MY"] or ["AE MY"]
	Start           string     `mapstructure:"start"`            // Initial offsets from left to right, or a single letter for all rotors
	DoubleStep      bool       `mapstructure:"double_step"`
}

// Settings is a validated machine configuration
type Settings struct {
	Rotors        [enigma.Rotors]enigma.RotorSpec // From left (slowest) to right (fastest)
	RotorNames    [enigma.Rotors]string           // Catalog names, empty for custom rotors
	Reflector     string                          // Wiring
	ReflectorName string                          // Catalog name, empty for a custom wiring
	Plugboard     []enigma.Pair
	Start         string // Initial offsets from left to right
	DoubleStep    bool
}

// Returns the settings of the reference machine: rotors I, II, III, reflector A, plugboard AE MY, all rotors at 'A'
func Default() RawSettings {
	return RawSettings{
		Rotors:    ParseRotorList("I,II,III"),
		Reflector: "A",
		Plugboard: []string{"AE", "MY"},
		Start:     "AAA",
	}
}

// Parses a comma or space separated list of rotor names, e.g. "I,II,III"
func ParseRotorList(list string) []RawRotor {
	names := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	return lo.Map(names, func(name string, _ int) RawRotor {
		return RawRotor{Name: name}
	})
}

func ProcessRawSettings(raw RawSettings) (Settings, error) {
	settings := Settings{DoubleStep: raw.DoubleStep}

	//** Manage rotors
	if len(raw.Rotors) != enigma.Rotors {
		return Settings{}, fmt.Errorf("exactly %d rotors are required, got %d", enigma.Rotors, len(raw.Rotors))
	}
	for i, rawRotor := range raw.Rotors {
		spec, name, err := processRawRotor(rawRotor)
		if err != nil {
			return Settings{}, fmt.Errorf("rotor %d: %w", i+1, err)
		}
		settings.Rotors[i] = spec
		settings.RotorNames[i] = name
	}

	//** Manage reflector
	if raw.ReflectorWiring != "" {
		settings.Reflector = strings.ToUpper(strings.TrimSpace(raw.ReflectorWiring))
	} else {
		name := strings.ToUpper(strings.TrimSpace(raw.Reflector))
		wiring, ok := enigma.LookupReflector(name)
		if !ok {
			return Settings{}, fmt.Errorf("unknown reflector %q: allowed values are %v", raw.Reflector, enigma.ReflectorNames())
		}
		settings.Reflector = wiring
		settings.ReflectorName = name
	}

	//** Manage plugboard
	pairs, err := enigma.ParsePairs(strings.Join(raw.Plugboard, " "))
	if err != nil {
		return Settings{}, err
	}
	if _, err := enigma.NewPlugBoard(pairs); err != nil {
		return Settings{}, err
	}
	settings.Plugboard = pairs

	//** Manage start offsets
	start := strings.ToUpper(strings.TrimSpace(raw.Start))
	switch len(start) {
	case 0:
		start = strings.Repeat("A", enigma.Rotors)
	case 1:
		start = strings.Repeat(start, enigma.Rotors)
	case enigma.Rotors:
	default:
		return Settings{}, fmt.Errorf("start must hold one letter or %d letters, got %q", enigma.Rotors, raw.Start)
	}
	settings.Start = start

	return settings, nil
}

func processRawRotor(raw RawRotor) (enigma.RotorSpec, string, error) {
	name := strings.ToUpper(strings.TrimSpace(raw.Name))
	wiring := strings.ToUpper(strings.TrimSpace(raw.Wiring))
	turnover := strings.ToUpper(strings.TrimSpace(raw.Turnover))

	var spec enigma.RotorSpec
	switch {
	case name != "" && wiring != "":
		return enigma.RotorSpec{}, "", fmt.Errorf("rotor %q cannot also define a custom wiring", raw.Name)
	case name != "":
		catalogSpec, ok := enigma.LookupRotor(name)
		if !ok {
			return enigma.RotorSpec{}, "", fmt.Errorf("unknown rotor %q: allowed values are %v", raw.Name, enigma.RotorNames())
		}
		spec = catalogSpec
	case wiring != "":
		if turnover == "" {
			return enigma.RotorSpec{}, "", fmt.Errorf("custom rotor %q requires a turnover letter", raw.Wiring)
		}
		spec.Wiring = wiring
	default:
		return enigma.RotorSpec{}, "", fmt.Errorf("a rotor requires either a name or a wiring")
	}

	if turnover != "" {
		if len(turnover) != 1 {
			return enigma.RotorSpec{}, "", fmt.Errorf("turnover must be a single letter, got %q", raw.Turnover)
		}
		spec.Turnover = turnover[0]
	}
	return spec, name, nil
}

// Assembles a machine from the settings. Wiring tables are validated here, so errors are the typed errors of package enigma
func (settings Settings) Build() (*enigma.Machine, error) {
	options := []enigma.Option{enigma.WithOffsets(settings.Start)}
	if settings.DoubleStep {
		options = append(options, enigma.WithDoubleStep())
	}
	return enigma.NewMachine(settings.Rotors, settings.Reflector, settings.Plugboard, options...)
}

// Returns a short human readable description, e.g. "I-II-III/A/AE MY/AAA"
func (settings Settings) String() string {
	rotors := lo.Map(settings.RotorNames[:], func(name string, _ int) string {
		return lo.Ternary(name == "", "custom", name)
	})
	reflector := lo.Ternary(settings.ReflectorName == "", "custom", settings.ReflectorName)
	plugboard := strings.Join(lo.Map(settings.Plugboard, func(pair enigma.Pair, _ int) string { return pair.String() }), " ")
	return fmt.Sprintf("%v/%v/%v/%v", strings.Join(rotors, "-"), reflector, plugboard, settings.Start)
}
