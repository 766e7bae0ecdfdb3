package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mira/kith/internal/book"
	"github.com/mira/kith/internal/domain"
)

type Config struct {
	// Contact validation settings
	Contacts ContactsConfig `yaml:"contacts"`

	// Birthday query settings
	Birthdays BirthdaysConfig `yaml:"birthdays"`

	// Front-end settings
	UI UIConfig `yaml:"ui"`
}

type ContactsConfig struct {
	PhoneRule domain.PhoneRule `yaml:"phone_rule"` // "local10" or "e164"
}

type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days"` // Default lookahead for the birthdays command
}

type UIConfig struct {
	Plain bool `yaml:"plain"` // Skip the TUI even on a terminal
}

// DefaultConfigPath returns ~/.config/kith/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "kith", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "kith", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Contacts: ContactsConfig{
			PhoneRule: domain.DefaultPhoneRule,
		},
		Birthdays: BirthdaysConfig{
			WindowDays: book.DefaultWindowDays,
		},
		UI: UIConfig{
			Plain: false,
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML over the defaults so omitted keys keep their values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	if !c.Contacts.PhoneRule.Valid() {
		return fmt.Errorf("config: unknown phone_rule %q (want %q or %q)",
			c.Contacts.PhoneRule, domain.PhoneRuleLocal, domain.PhoneRuleE164)
	}
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("config: window_days cannot be negative")
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
