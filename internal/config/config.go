// Package config loads tareas settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	appDir         = "tareas"
	configFileName = "config.toml"

	// EnvTheme overrides the theme from the file.
	EnvTheme = "TAREAS_THEME"
)

// Config is the on-disk configuration. Zero values mean "use the default".
type Config struct {
	Theme       string `toml:"theme" validate:"oneof=classic neon mono"`
	NoColor     bool   `toml:"no_color"`
	ButtonColor string `toml:"button_color" validate:"omitempty,hexcolor"`
	Log         Log    `toml:"log"`
}

// Log controls where diagnostic output goes. The TUI owns the terminal, so
// logs are only written when File is set.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: "classic",
		Log:   Log{Level: "info"},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s %q (%s)", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Path returns the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return configFileName
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDir, configFileName)
}

// Load reads path on top of the defaults, applies env overrides and validates.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	loadFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
}
