package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	applog "lineup/internal/log"
)

const (
	EnvPrefix = "LINEUP_"

	DefaultDBPath     = "calendar.db"
	DefaultConfigFile = "lineup.yaml"
)

type Config struct {
	// Database
	DBPath string `koanf:"db_path"`

	// Output
	LogLevel string `koanf:"log_level"`
	Color    string `koanf:"color"`
}

func Defaults() Config {
	return Config{
		DBPath:   DefaultDBPath,
		LogLevel: "warn",
		Color:    "auto",
	}
}

// Load layers struct defaults, the optional YAML file at path and LINEUP_*
// environment variables, later sources overriding earlier ones. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), v
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, "database path cannot be empty")
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validColors := []string{"auto", "always", "never"}
	isValidColor := false
	for _, mode := range validColors {
		if c.Color == mode {
			isValidColor = true
			break
		}
	}
	if !isValidColor {
		errs = append(errs, fmt.Sprintf("invalid color mode '%s': must be one of %v", c.Color, validColors))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
