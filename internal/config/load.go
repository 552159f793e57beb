package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sufield/sessionify/internal/domain"
)

const (
	// ConfigPathEnv names the environment variable that overrides the default config path.
	ConfigPathEnv = "SESSIONIFY_CONFIG"

	defaultConfigDir  = ".cas"
	defaultConfigFile = "config.json"
)

// Load reads and parses a trust configuration file.
//
// Files with a .json extension are decoded as JSON, everything else as YAML.
// Errors wrap domain.ErrConfiguration and name the offending path.
func Load(path string) (*TrustConfig, error) {
	// Clean the path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - Config file path is trusted (from admin/user)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file %q: %w", domain.ErrConfiguration, cleanPath, err)
	}

	var cfg TrustConfig
	if strings.EqualFold(filepath.Ext(cleanPath), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file %q: %w", domain.ErrConfiguration, cleanPath, err)
	}

	return &cfg, nil
}

// DefaultPath returns $HOME/.cas/config.json.
func DefaultPath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("%w: HOME environment variable not set; cannot locate %s/%s", domain.ErrConfiguration, defaultConfigDir, defaultConfigFile)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigFile), nil
}

// ResolvePath picks the config file path: the explicit argument if non-empty,
// then SESSIONIFY_CONFIG, then DefaultPath.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path, nil
	}
	return DefaultPath()
}

// LoadDefault resolves the config path (see ResolvePath), loads the file and
// applies environment overrides.
func LoadDefault(explicit string) (*TrustConfig, error) {
	path, err := ResolvePath(explicit)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}
