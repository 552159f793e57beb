package config

import (
	"os"
	"strings"
)

// DefaultCASEnv overrides default_cas when set.
const DefaultCASEnv = "SESSIONIFY_DEFAULT_CAS"

// ApplyEnvOverrides overrides config values with environment variables if set.
func ApplyEnvOverrides(cfg *TrustConfig) {
	if cfg == nil {
		return
	}
	if name := strings.TrimSpace(os.Getenv(DefaultCASEnv)); name != "" {
		cfg.DefaultCAS = name
	}
}
