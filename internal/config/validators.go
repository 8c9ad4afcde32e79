package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/noshow/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

var (
	validatorsMu sync.RWMutex
	validators   = make(map[string]Validator)
)

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	if _, exists := validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	validators[key] = validator
}

func getValidator(key string) Validator {
	validatorsMu.RLock()
	defer validatorsMu.RUnlock()
	return validators[key]
}

// fallback warns about a rejected value and returns the default in its place.
func fallback(key, value, rule, defaultValue string) (string, error) {
	colors.Warning(fmt.Sprintf("invalid %s value '%s': %s; using default: %s", key, value, rule, defaultValue))
	return defaultValue, nil
}

// PositiveIntValidator accepts integers greater than zero.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return fallback(key, value, "must be a positive integer", defaultValue)
		}
		return value, nil
	}
}

// EnumValidator accepts one of allowed, compared case-insensitively, and
// returns it lowercased.
func EnumValidator(allowed ...string) Validator {
	sorted := slices.Sorted(slices.Values(allowed))
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		lower := strings.ToLower(value)
		if !slices.Contains(allowed, lower) {
			return fallback(key, value, "must be one of: "+strings.Join(sorted, ", "), defaultValue)
		}
		return lower, nil
	}
}

// BoolValidator normalizes 1/yes/on and 0/no/off to "true" and "false".
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			return fallback(key, value, "must be one of: 1, true, yes, on, 0, false, no, off", defaultValue)
		}
		return normalized, nil
	}
}

// DurationValidator accepts Go durations (30s, 5m, 2h) and stores them in
// canonical form. With allowEmpty an empty value stays empty, which disables
// the setting.
func DurationValidator(allowEmpty bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			if allowEmpty {
				return value, nil
			}
			return defaultValue, nil
		}
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fallback(key, value, "must be a Go-style duration (e.g. 30s, 5m)", defaultValue)
		}
		return d.String(), nil
	}
}

func initValidators() {
	boolean := BoolValidator()
	for key, v := range map[string]Validator{
		"unresolved_policy": EnumValidator("keep", "elide"),
		"export_format":     EnumValidator("xlsx", "csv"),
		"debug":             boolean,
		"quiet":             boolean,
		"logging_enabled":   boolean,
		"logging_level":     EnumValidator("debug", "info", "warn", "error"),
		"logging_max_files": PositiveIntValidator(),
	} {
		RegisterValidator(key, v)
	}
	registerDedupValidators()
}

// normalizeBool converts various boolean representations to "true"/"false".
// Unknown spellings are returned unchanged for the validator to reject.
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}
