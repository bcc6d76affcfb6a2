package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	historyLimit int
	logger       *slog.Logger
	actor        string
}

// WithHistoryLimit bounds the number of events kept per card
func WithHistoryLimit(n int) Option {
	return func(cfg *appConfig) {
		cfg.historyLimit = n
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithActor attributes recorded events to name instead of the login name
func WithActor(name string) Option {
	return func(cfg *appConfig) {
		cfg.actor = name
	}
}
