package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in defaults in Loaded.Source.
const SourceEmbedded = "embedded"

// Loaded is a validated configuration and the file it came from.
type Loaded struct {
	Config BreakoutConfig
	Source string
}

// LoadBreakout loads the block breaker configuration and reports which source
// was used. Search order: customPath -> ~/.blockbreak/configs/breakout.{yaml,toml}
// -> ./configs/breakout.yaml -> embedded default.
// Only a custom path produces read or parse errors; broken files further down
// the search order are skipped.
func LoadBreakout(customPath string) (Loaded, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Loaded{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	candidates := []string{
		userConfigPath("breakout.yaml"),
		userConfigPath("breakout.toml"),
		filepath.Join("configs", "breakout.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return Loaded{Config: cfg, Source: path}, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("breakout.yaml", defaultBreakoutYAML)
	if err != nil {
		return Loaded{Config: DefaultBreakoutConfig(), Source: SourceEmbedded}, nil // Fallback to hardcoded if embed fails
	}
	return Loaded{Config: cfg, Source: SourceEmbedded}, nil
}

// decode parses data on top of the defaults, so a file may set only some keys.
// The format is chosen by the file extension; anything but .toml is YAML.
func decode(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes cfg as "yaml" or "toml".
func Encode(w io.Writer, cfg BreakoutConfig, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown config format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockbreak", "configs", filename)
}
