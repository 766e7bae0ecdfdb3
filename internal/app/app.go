package app

import (
	"fmt"

	"github.com/mira/kith/internal/book"
	"github.com/mira/kith/internal/config"
	"github.com/mira/kith/internal/service"
)

// App is the dependency injection container for all application components.
// The book lives in memory only; every session starts with an empty
// directory and nothing is written to disk.
type App struct {
	Config *config.Config
	Book   *book.Book

	// Services
	Contacts *service.ContactService
}

// New creates a new App instance from the default config path
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewFromPath creates an App from an explicit config file
func NewFromPath(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := book.New()
	contacts := service.NewContactService(b, cfg.Contacts.PhoneRule)

	return &App{
		Config:   cfg,
		Book:     b,
		Contacts: contacts,
	}, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
