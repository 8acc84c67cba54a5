package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"razertr/pkg/locale"
)

type Config struct {
	Locale          string
	TranslationsDir string
	DatabaseURL     string
	LogLevel        string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}

	cfg := &Config{
		Locale:          os.Getenv("LOCALE"),
		TranslationsDir: os.Getenv("TRANSLATIONS_DIR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills defaults and checks every field. It is exported so that
// command line overrides can be validated again.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = locale.Detect()
	}
	if _, err := locale.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: LOCALE invalid (%q): %w", c.Locale, err)
	}

	if c.TranslationsDir != "" {
		info, err := os.Stat(c.TranslationsDir)
		if err != nil {
			return fmt.Errorf("config: TRANSLATIONS_DIR invalid (%q): %w", c.TranslationsDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: TRANSLATIONS_DIR (%q) is not a directory", c.TranslationsDir)
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "":
		c.LogLevel = "info"
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	default:
		return fmt.Errorf("config: LOG_LEVEL invalid (%q)", c.LogLevel)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// the database is optional; catalogs come from files then
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
