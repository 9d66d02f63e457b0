package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBomber loads the bomber configuration.
// Search order: customPath -> ~/.bomber/configs/bomber.yaml ->
// ./configs/bomber.yaml -> embedded default.
func LoadBomber(customPath string) (BomberConfig, error) {
	var cfg BomberConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bomber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bomber.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBomberYAML, &cfg); err != nil {
		return DefaultBomberConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}
