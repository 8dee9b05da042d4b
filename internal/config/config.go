package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.courier/config.toml.
type Config struct {
	DefaultSession string `toml:"default_session"`

	// Region is the default phone-number region used when formatting
	// spoken confirmations.
	Region string `toml:"region"`

	// DraftTTLMinutes expires abandoned drafts after this many minutes.
	// Zero disables expiry, which is the default: a draft with no further
	// input is kept until the user finishes or discards it.
	DraftTTLMinutes int `toml:"draft_ttl_minutes"`

	// Vocab overrides or extends the built-in vocabulary word lists
	// (yes, no, email, sms, klat, call).
	Vocab map[string][]string `toml:"vocab"`

	// Dialogs overrides the built-in dialog templates by name.
	Dialogs map[string]string `toml:"dialogs"`

	// Contacts is the local contact book served by the loopback contact
	// service: contact name -> address type -> address.
	Contacts map[string]map[string]string `toml:"contacts"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DefaultSession: "main",
		Region:         "US",
	}
}

// DraftTTL returns the draft expiry as a duration, zero when disabled.
func (c *Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLMinutes) * time.Minute
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		cfg.Region = "US"
	}
	return &cfg, nil
}

// LoadOrDefault reads config from path, falling back to defaults when the
// file is missing or unreadable.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
