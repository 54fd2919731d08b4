package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch loads the match configuration.
// Search order: customPath -> ~/.qothello/configs/match.yaml -> ./configs/match.yaml -> embedded default
func LoadMatch(customPath string) (MatchConfig, error) {
	var cfg MatchConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/match.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg)
		}
	}

	// Use embedded default YAML
	cfg = MatchConfig{}
	if err := yaml.Unmarshal(defaultMatchYAML, &cfg); err != nil {
		return DefaultMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg)
}

// Load resolves the configuration for a run: the YAML file found by
// LoadMatch, then the named preset if one was given.
func Load(customPath string, preset string) (MatchConfig, error) {
	cfg, err := LoadMatch(customPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, err := ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		ApplyPreset(&cfg, p)
	}
	return cfg, cfg.Validate()
}

// normalize fills defaults for omitted fields and validates the result.
func normalize(cfg MatchConfig) (MatchConfig, error) {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultMatchConfig().Tiers
	}
	if cfg.PassPolicy == "" {
		cfg.PassPolicy = PassForced
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg MatchConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qothello", "configs", filename)
}
