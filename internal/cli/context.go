package cli

import (
	"context"
	"errors"
)

type cliKey struct{}

// ErrNoCLI is returned when a command runs without an initialized CLI
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI stores c on ctx for subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
