package debug

import (
	"os"
	"strconv"
)

// EnvDebug enables debug output when set to a true value ("1", "true", ...).
const EnvDebug = "SESSIONIFY_DEBUG"

// Config holds debug mode configuration
type Config struct {
	// Enabled is the global debug on/off switch
	Enabled bool
}

// FromEnv reads the debug configuration from environment variables.
func FromEnv() Config {
	return Config{
		Enabled: parseBool(os.Getenv(EnvDebug), false),
	}
}

func parseBool(s string, defaultVal bool) bool {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return val
}
