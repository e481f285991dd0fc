// Package config provides environment lookups and the gameplay tuning file.
package config

import "os"

// Environment variables understood by the binaries.
const (
	EnvTuningFile = "OCTOSHOT_TUNING"
	EnvLogLevel   = "OCTOSHOT_LOG_LEVEL"
	EnvLogFile    = "OCTOSHOT_LOG_FILE"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// TuningFromEnv loads the tuning file named by OCTOSHOT_TUNING, or returns
// DefaultTuning when the variable is unset or empty.
func TuningFromEnv() (Tuning, error) {
	path := GetEnv(EnvTuningFile, "")
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}
