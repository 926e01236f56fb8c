package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHanoi loads the puzzle configuration.
// Search order: customPath -> ~/.hanoi/configs/hanoi.yaml -> ./configs/hanoi.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadHanoi(customPath string) (HanoiConfig, error) {
	cfg := DefaultHanoiConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hanoi.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parseHanoi(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hanoi.yaml")); err == nil {
		if parsed, ok := parseHanoi(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parseHanoi(defaultHanoiYAML); ok {
		return parsed, nil
	}
	return DefaultHanoiConfig(), nil // Fallback to hardcoded if embed fails
}

// parseHanoi decodes data over the defaults. ok is false for malformed YAML,
// which lets the search fall through to the next location.
func parseHanoi(data []byte) (HanoiConfig, bool) {
	cfg := DefaultHanoiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HanoiConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", "configs", filename)
}
