package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/limaJavier/enigma/internal/observability"
	"github.com/limaJavier/enigma/internal/text"
	"github.com/limaJavier/enigma/pkg/enigma"
	"github.com/limaJavier/enigma/pkg/settings"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// VectorConfig is one machine configuration to measure
type VectorConfig struct {
	Order      []string // Rotor names from left (slowest) to right (fastest)
	Reflector  string
	Plugboard  string
	Start      string
	DoubleStep bool
}

type VectorResult struct {
	Config     VectorConfig
	Message    string
	Ciphertext string
	Reciprocal bool // Decrypting the ciphertext from the same start restores the message
	Period     int  // Keypresses until the rotor offsets repeat
}

func main() {
	messagePtr := flag.String("message", "HELLO", "Message to encrypt with every configuration")
	startPtr := flag.String("start", "AAA", "Initial rotor offsets from left to right")
	plugboardPtr := flag.String("plugboard", "AE MY", "Plugboard pairs shared by every configuration")
	ordersPtr := flag.String("orders", "", "Comma separated rotor orders to measure, e.g. \"I-II-III,III-II-I\"; if empty, every order is measured")
	outFilePathPtr := flag.String("out", "", "Path to the CSV file where the results will be written; if empty, they'll be written into the Standard Output")
	logLevelPtr := flag.String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL or info")
	flag.Parse()

	logger, err := observability.NewLogger(*logLevelPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Validate arguments
	message := text.Clean(*messagePtr)
	if message == "" {
		logger.Fatal("the message must contain at least one letter", zap.String("message", *messagePtr))
	}
	orders := rotorOrders(enigma.RotorNames(), enigma.Rotors)
	if *ordersPtr != "" {
		if orders, err = parseRotorOrders(*ordersPtr); err != nil {
			logger.Fatal("invalid rotor orders", zap.Error(err))
		}
	}

	configs := getConfigs(orders, enigma.ReflectorNames(), *plugboardPtr, *startPtr)
	results := make([]VectorResult, 0, len(configs))
	for _, config := range configs {
		logger.Debug("measuring configuration",
			zap.Strings("order", config.Order),
			zap.String("reflector", config.Reflector),
			zap.Bool("double_step", config.DoubleStep),
		)

		result, err := measure(config, message)
		if err != nil {
			logger.Fatal("cannot measure configuration", zap.Strings("order", config.Order), zap.String("reflector", config.Reflector), zap.Error(err))
		}
		if !result.Reciprocal {
			logger.Error("configuration is not reciprocal", zap.Strings("order", config.Order), zap.String("reflector", config.Reflector))
		}
		results = append(results, result)
	}

	// Verify out file is empty, if so then write the results to the Standard Output
	output := io.Writer(os.Stdout)
	if *outFilePathPtr != "" {
		file, err := os.Create(*outFilePathPtr)
		if err != nil {
			logger.Fatal("cannot create CSV file", zap.Error(err))
		}
		defer file.Close()
		output = file
	}
	if err := toCsv(results, output); err != nil {
		logger.Fatal("cannot write CSV", zap.Error(err))
	}
	logger.Info("vectors written", zap.Int("configurations", len(results)))
}

// Parses rotor orders such as "I-II-III,III-II-I"
func parseRotorOrders(list string) ([][]string, error) {
	orders := make([][]string, 0)
	for _, order := range strings.Split(list, ",") {
		parsed, err := parseRotorOrder(order)
		if err != nil {
			return nil, err
		}
		orders = append(orders, parsed)
	}
	return orders, nil
}

func parseRotorOrder(order string) ([]string, error) {
	names := strings.Split(strings.ToUpper(strings.TrimSpace(order)), "-")
	if len(names) != enigma.Rotors {
		return nil, fmt.Errorf("rotor order %q must name %d rotors", order, enigma.Rotors)
	}
	for _, name := range names {
		if _, ok := enigma.LookupRotor(name); !ok {
			return nil, fmt.Errorf("unknown rotor %q in order %q: allowed values are %v", name, order, enigma.RotorNames())
		}
	}
	return names, nil
}

func getConfigs(orders [][]string, reflectors []string, plugboard, start string) []VectorConfig {
	configs := make([]VectorConfig, 0, len(orders)*len(reflectors)*2)
	for _, order := range orders {
		for _, reflector := range reflectors {
			for _, doubleStep := range []bool{false, true} {
				configs = append(configs, VectorConfig{
					Order:      order,
					Reflector:  reflector,
					Plugboard:  plugboard,
					Start:      start,
					DoubleStep: doubleStep,
				})
			}
		}
	}
	return configs
}

func measure(config VectorConfig, message string) (VectorResult, error) {
	machineSettings, err := settings.ProcessRawSettings(settings.RawSettings{
		Rotors:     settings.ParseRotorList(strings.Join(config.Order, ",")),
		Reflector:  config.Reflector,
		Plugboard:  []string{config.Plugboard},
		Start:      config.Start,
		DoubleStep: config.DoubleStep,
	})
	if err != nil {
		return VectorResult{}, err
	}
	machine, err := machineSettings.Build()
	if err != nil {
		return VectorResult{}, err
	}

	ciphertext, err := machine.ProcessText(message)
	if err != nil {
		return VectorResult{}, err
	}
	machine.Reset()
	plaintext, err := machine.ProcessText(ciphertext)
	if err != nil {
		return VectorResult{}, err
	}
	machine.Reset()

	return VectorResult{
		Config:     config,
		Message:    message,
		Ciphertext: ciphertext,
		Reciprocal: plaintext == message,
		Period:     measurePeriod(machine),
	}, nil
}

// Returns the length of the cycle the rotor offsets eventually fall into; offsets are restored afterwards.
// Starting offsets outside the cycle (reachable only before the first double step) are not counted
func measurePeriod(machine *enigma.Machine) int {
	offsets := machine.Offsets()
	defer func() { lo.Must0(machine.SetOffsets(offsets)) }()

	seen := make(map[int]int)
	for keypress := 0; ; keypress++ {
		position := machine.Position()
		if first, ok := seen[position]; ok {
			return keypress - first
		}
		seen[position] = keypress
		machine.Step()
	}
}

func toCsv(results []VectorResult, output io.Writer) error {
	writer := csv.NewWriter(output)

	header := []string{"Order", "Reflector", "Plugboard", "Start", "DoubleStep", "Message", "Ciphertext", "Reciprocal", "Period"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			strings.Join(result.Config.Order, "-"),
			result.Config.Reflector,
			result.Config.Plugboard,
			result.Config.Start,
			fmt.Sprintf("%v", result.Config.DoubleStep),
			result.Message,
			result.Ciphertext,
			fmt.Sprintf("%v", result.Reciprocal),
			fmt.Sprintf("%d", result.Period),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
