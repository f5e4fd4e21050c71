package llm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/notequiz/config.yaml, falling
// back to ~/.config/notequiz/config.yaml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notequiz", "config.yaml"), nil
}

// LoadConfig resolves the effective configuration: defaults, then the YAML
// file at path, then NOTEQUIZ_* environment variables. A missing file is not
// an error unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				return ApplyEnv(cfg), nil
			}
			return Config{}, err
		}
	}

	return ApplyEnv(cfg), nil
}

// mergeFile decodes the YAML file at path over cfg. Keys absent from the
// file keep their current values.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
