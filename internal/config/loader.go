package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the model file.
const ConfigFileName = "cgegen.yaml"

// ConfigFileNameAlt is the alternate name of the model file.
const ConfigFileNameAlt = "cgegen.yml"

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
)

// findConfigFile finds the model file to use.
// Priority: explicit path > cgegen.yaml > cgegen.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}

// GetConfigFileUsed returns the path of the model file loaded by the last
// Load call, or empty string if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Reset resets the koanf instance. Used for testing.
func Reset() {
	k = koanf.New(".")
	configFileUsed = ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > model file > defaults
func Load(cfgFile string, flags *pflag.FlagSet, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"backend": DefaultBackend,
		"output":  DefaultOutput,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load the model file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		logger.Debug("loading model file", "path", configFileUsed)
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading model file %s: %w", configFileUsed, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("model file not found: %s", cfgFile)
	}

	// 3. Load environment variables (CGEGEN_ prefix)
	// Transform: CGEGEN_BACKEND -> backend
	if err := k.Load(env.Provider("CGEGEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CGEGEN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and model file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	logger.Debug("configuration loaded",
		"backend", cfg.Backend,
		"technologies", len(cfg.Technologies),
		"dimensions", len(cfg.Coords))

	return &cfg, nil
}

// LoadFromFile loads and validates a model file directly, without flag or
// environment layering. Used by callers that already resolved a path.
func LoadFromFile(path string, logger *slog.Logger) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model file not found: %s", filepath.Clean(path))
	}
	cfg, err := Load(path, nil, logger)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
