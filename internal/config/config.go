package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds quizzer runtime configuration.
type Config struct {
	// BankURL is the base URL of the question bank service.
	BankURL string

	// BankTimeout bounds a single bank fetch. Default: 10s.
	BankTimeout time.Duration

	// BankRetries is the number of fetch attempts for transient failures.
	BankRetries int

	// ServeAddr is the listen address for `quizzer serve`.
	ServeAddr string

	// BankDir is the directory `quizzer serve` reads <code>.json files from.
	BankDir string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BankURL:     "http://localhost:8080",
		BankTimeout: 10 * time.Second,
		BankRetries: 3,
		ServeAddr:   ":8080",
		BankDir:     "banks",
	}
}

// Load reads an optional .env file in the working directory and then
// builds a Config from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return ConfigFromEnv()
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv("QUIZZER_BANK_URL"); u != "" {
		cfg.BankURL = u
	}
	if t := os.Getenv("QUIZZER_BANK_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return cfg, fmt.Errorf("QUIZZER_BANK_TIMEOUT: %w", err)
		}
		cfg.BankTimeout = d
	}
	if r := os.Getenv("QUIZZER_BANK_RETRIES"); r != "" {
		n, err := strconv.Atoi(r)
		if err != nil {
			return cfg, fmt.Errorf("QUIZZER_BANK_RETRIES: %w", err)
		}
		cfg.BankRetries = n
	}
	if a := os.Getenv("QUIZZER_SERVE_ADDR"); a != "" {
		cfg.ServeAddr = a
	}
	if d := os.Getenv("QUIZZER_BANK_DIR"); d != "" {
		cfg.BankDir = d
	}

	return cfg, nil
}

// Validate checks that the bank URL is absolute http(s) and the fetch
// limits are sane.
func (c Config) Validate() error {
	u, err := url.Parse(c.BankURL)
	if err != nil {
		return fmt.Errorf("invalid bank URL %q: %w", c.BankURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("bank URL %q must use http or https", c.BankURL)
	}
	if u.Host == "" {
		return fmt.Errorf("bank URL %q has no host", c.BankURL)
	}
	if c.BankTimeout <= 0 {
		return fmt.Errorf("bank timeout must be positive, got %s", c.BankTimeout)
	}
	if c.BankRetries < 1 {
		return fmt.Errorf("bank retries must be at least 1, got %d", c.BankRetries)
	}
	return nil
}
