package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVanguard loads the Vertical Vanguard configuration.
// Search order: customPath -> ~/.vanguard/configs/vanguard.yaml ->
// ./configs/vanguard.yaml -> embedded default.
//
// User YAML is decoded over the defaults, so a partial file only overrides
// the fields it names. Every loaded config is validated; a config the
// simulation cannot run with is an error here, never later.
func LoadVanguard(customPath string) (VanguardConfig, error) {
	// Try custom path first; a broken explicit config is an error, not a
	// fallback.
	if customPath != "" {
		cfg := DefaultVanguardConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("vanguard.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := DefaultVanguardConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				if err := cfg.Validate(); err != nil {
					return cfg, fmt.Errorf("invalid config %s: %w", userCfgPath, err)
				}
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/vanguard.yaml"); err == nil {
		cfg := DefaultVanguardConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("invalid config configs/vanguard.yaml: %w", err)
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultVanguardConfig()
	if err := yaml.Unmarshal(defaultVanguardYAML, &cfg); err != nil {
		return DefaultVanguardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vanguard", "configs", filename)
}
