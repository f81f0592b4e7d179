package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/limaJavier/enigma/internal/observability"
	"github.com/limaJavier/enigma/internal/text"
	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/limaJavier/enigma/pkg/settings"
	"go.uber.org/zap"
)

// Longest input line accepted, in bytes
const maxLineLength = 16 * 1024 * 1024

func main() {
	// Define arguments
	settingsPathPtr := flag.String("settings", "", "Path to a JSON or YAML settings file; if empty, the defaults and ENIGMA_* environment variables are used")
	flag.String("rotors", "I,II,III", fmt.Sprintf("Rotors from left (slowest) to right (fastest). Allowed names are: %v", enigma.RotorNames()))
	flag.String("reflector", "A", fmt.Sprintf("Reflector. Allowed names are: %v", enigma.ReflectorNames()))
	flag.String("plugboard", "AE MY", "Plugboard pairs separated by spaces or commas, e.g. \"AE MY\"; empty for no pairs")
	flag.String("start", "AAA", "Initial rotor offsets from left to right, or a single letter for all rotors")
	flag.Bool("double-step", false, "Enable the double-step anomaly on the middle rotor")
	groupPtr := flag.Int("group", 0, "Print output in groups of this many letters; 0 prints each line unbroken")
	logLevelPtr := flag.String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
	flag.Parse()

	logger, err := observability.NewLogger(*logLevelPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Resolve settings: defaults < file < environment < flags
	raw, err := settings.Resolve(*settingsPathPtr, logger)
	if err != nil {
		logger.Fatal("cannot resolve settings", zap.Error(err))
	}

	setFlags := make(map[string]string)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = f.Value.String() })
	if err := overlayFlags(&raw, setFlags); err != nil {
		logger.Fatal("invalid flag", zap.Error(err))
	}

	machineSettings, err := settings.ProcessRawSettings(raw)
	if err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}
	machine, err := machineSettings.Build()
	if err != nil {
		logger.Fatal("cannot assemble machine", zap.Error(err))
	}
	logger.Info("machine assembled", zap.Stringer("settings", machineSettings), zap.Bool("double_step", machineSettings.DoubleStep))

	if err := run(machine, os.Stdin, os.Stdout, *groupPtr); err != nil {
		logger.Fatal("an error occurred while processing input", zap.Error(err))
	}
}

// Applies the machine flags given on the command line over the resolved settings
func overlayFlags(raw *settings.RawSettings, setFlags map[string]string) error {
	for name, value := range setFlags {
		switch name {
		case "rotors":
			raw.Rotors = settings.ParseRotorList(value)
		case "reflector":
			raw.Reflector = value
			raw.ReflectorWiring = ""
		case "plugboard":
			raw.Plugboard = []string{value}
		case "start":
			raw.Start = value
		case "double-step":
			doubleStep, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("double-step: %w", err)
			}
			raw.DoubleStep = doubleStep
		}
	}
	return nil
}

// Reads input line by line and, for every line, writes the cleaned letters followed by their transformation.
// The rotors keep moving across lines
func run(machine *enigma.Machine, input io.Reader, output io.Writer, group int) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	writer := bufio.NewWriter(output)
	for scanner.Scan() {
		cleaned := text.Clean(scanner.Text())

		var transformed strings.Builder
		for letter, err := range machine.Stream(enigma.Letters(cleaned)) {
			if err != nil {
				return err
			}
			transformed.WriteByte(letter)
		}

		fmt.Fprintln(writer, text.Group(cleaned, group))
		fmt.Fprintln(writer, text.Group(transformed.String(), group))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return writer.Flush()
}
