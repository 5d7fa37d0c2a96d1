package utils

import (
	"os"
	"strconv"
	"strings"
)

// EnvOrDefault returns the trimmed value of the environment variable, or
// def when unset or blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// EnvIntOrDefault is EnvOrDefault for integer values.
func EnvIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
