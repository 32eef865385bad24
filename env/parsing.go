// Package env contains code for reading configuration from environment variables
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// lookup returns the variable's value, or ok=false if it's unset or empty.
func lookup(varName string) (value string, ok bool) {
	value = os.Getenv(varName)
	return value, len(strings.TrimSpace(value)) > 0
}

func parse[T any](
	varName, kind string, defaultValue T, parser func(value string) (T, error),
) (T, error) {
	value, ok := lookup(varName)
	if !ok {
		return defaultValue, nil
	}
	parsed, err := parser(value)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(
			err, "unparsable value %s for %s environment variable %s", value, kind, varName,
		)
	}
	return parsed, nil
}

// GetBool parses a boolean which defaults to false. Only "true" and "false" are accepted, in
// lowercase, uppercase, or title case.
func GetBool(varName string) (bool, error) {
	return parse(varName, "boolean", false, func(value string) (bool, error) {
		switch value {
		default:
			return false, errors.New("unknown boolean")
		case "TRUE", "true", "True":
			return true, nil
		case "FALSE", "false", "False":
			return false, nil
		}
	})
}

func GetInt64(varName string, defaultValue int64) (int64, error) {
	const (
		base  = 10
		width = 64 // bits
	)
	return parse(varName, "int64", defaultValue, func(value string) (int64, error) {
		return strconv.ParseInt(value, base, width)
	})
}

func GetString(varName string, defaultValue string) string {
	value, ok := lookup(varName)
	if !ok {
		return defaultValue
	}
	return value
}

// GetStrings parses a comma-separated list. Surrounding whitespace is trimmed from each element
// and empty elements are dropped, so that "a, b,," yields [a b]. Order is preserved.
func GetStrings(varName string, defaultValue []string) []string {
	value, ok := lookup(varName)
	if !ok {
		return defaultValue
	}

	parsed := make([]string, 0, strings.Count(value, ",")+1)
	for _, elem := range strings.Split(value, ",") {
		if elem = strings.TrimSpace(elem); elem != "" {
			parsed = append(parsed, elem)
		}
	}
	return parsed
}
