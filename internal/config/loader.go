package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadBlockfall when no file overrode the defaults.
const SourceEmbedded = "embedded"

// LoadBlockfall loads the configuration of a variant and reports where it came from.
// Search order: customPath -> ~/.blockfall/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
//
// A file only needs the keys it changes; everything else keeps the variant's
// default. The result is validated.
func LoadBlockfall(variant, customPath string) (BlockfallConfig, string, error) {
	cfg, err := DefaultBlockfallConfig(variant)
	if err != nil {
		return cfg, "", err
	}
	filename := variant + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return validated(candidate, path)
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil {
		cfg, _ = DefaultBlockfallConfig(variant) // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

func validated(cfg BlockfallConfig, source string) (BlockfallConfig, string, error) {
	if err := ValidateBlockfall(cfg); err != nil {
		return cfg, source, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg BlockfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
