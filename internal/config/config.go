// Package config holds the CLI defaults read from the environment or a YAML
// file.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the set of defaults the CLI starts from. Flags override it.
type Config struct {
	Format   string `yaml:"format" env:"FORMATKIT_FORMAT" env-default:"text" env-description:"Output format: text or json"`
	Verbose  bool   `yaml:"verbose" env:"FORMATKIT_VERBOSE" env-default:"false" env-description:"Enable debug logging"`
	Locale   string `yaml:"locale" env:"FORMATKIT_LOCALE" env-default:"en" env-description:"BCP 47 tag used for thousands separators"`
	Currency string `yaml:"currency" env:"FORMATKIT_CURRENCY" env-default:"$" env-description:"Default currency symbol"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{Format: FormatText, Locale: "en", Currency: "$"}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a YAML file; environment variables override its values.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the format name and the locale tag.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("invalid format %q (must be %q or %q)", c.Format, FormatText, FormatJSON)
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	return nil
}

// Tag parses Locale as a BCP 47 language tag.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Usage describes the recognized environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
