package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ENIGMA_"

// Resolves raw settings from the defaults, the settings file (skipped when path is empty) and the ENIGMA_*
// environment variables, each layer overriding the keys it defines
func Resolve(path string, logger *zap.Logger) (RawSettings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw := Default()
	if path != "" {
		if err := DecodeFile(path, &raw); err != nil {
			return RawSettings{}, err
		}
		logger.Debug("settings file applied", zap.String("path", path))
	}

	if err := ApplyEnv(&raw, os.LookupEnv, logger); err != nil {
		return RawSettings{}, err
	}
	return raw, nil
}

// Resolves and validates the settings, see Resolve
func Load(path string, logger *zap.Logger) (Settings, error) {
	raw, err := Resolve(path, logger)
	if err != nil {
		return Settings{}, err
	}
	return ProcessRawSettings(raw)
}

// Overlays a JSON (.json) or YAML (.yaml, .yml) settings file onto raw
func DecodeFile(path string, raw *RawSettings) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings %s: %w", path, err)
	}

	var document map[string]any
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".json":
		err = json.Unmarshal(bytes, &document)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &document)
	default:
		return fmt.Errorf("unsupported settings format %q: use .json, .yaml or .yml", extension)
	}
	if err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := Decode(document, raw); err != nil {
		return fmt.Errorf("decode settings %s: %w", path, err)
	}
	return nil
}

// Overlays a generic document (as produced by a JSON or YAML parser) onto raw.
// Keys absent from the document keep their current values; lists present in the document replace the current ones
func Decode(document map[string]any, raw *RawSettings) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       rotorHook,
		WeaklyTypedInput: true, // Allows `plugboard: "AE MY"` and `double_step: "true"`
		ZeroFields:       true,
		ErrorUnused:      true,
		Result:           raw,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(document)
}

// Lets rotors be written as plain names, either one by one (["I", "II", "III"]) or as a single list ("I,II,III")
var rotorHook mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	switch to {
	case reflect.TypeOf(RawRotor{}):
		return RawRotor{Name: data.(string)}, nil
	case reflect.TypeOf([]RawRotor{}):
		return ParseRotorList(data.(string)), nil
	}
	return data, nil
}

// Overlays the ENIGMA_ROTORS, ENIGMA_REFLECTOR, ENIGMA_PLUGBOARD, ENIGMA_START and ENIGMA_DOUBLE_STEP variables onto raw
func ApplyEnv(raw *RawSettings, lookup func(key string) (string, bool), logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	get := func(name string) (string, bool) {
		value, ok := lookup(envPrefix + name)
		if ok {
			logger.Debug("environment override", zap.String("variable", envPrefix+name))
		}
		return strings.TrimSpace(value), ok
	}

	if value, ok := get("ROTORS"); ok && value != "" {
		raw.Rotors = ParseRotorList(value)
	}
	if value, ok := get("REFLECTOR"); ok && value != "" {
		raw.Reflector = value
		raw.ReflectorWiring = ""
	}
	if value, ok := get("PLUGBOARD"); ok {
		raw.Plugboard = []string{value} // An empty value clears the plugboard
	}
	if value, ok := get("START"); ok && value != "" {
		raw.Start = value
	}
	if value, ok := get("DOUBLE_STEP"); ok && value != "" {
		doubleStep, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%vDOUBLE_STEP: %w", envPrefix, err)
		}
		raw.DoubleStep = doubleStep
	}
	return nil
}
