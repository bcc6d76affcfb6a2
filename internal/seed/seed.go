// Package seed loads the initial cards and clients, either from the
// built-in demo data or from a YAML file.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/bidboard/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoCards indicates a seed file that defines no cards
	ErrNoCards = errors.New("seed file defines no cards")

	// ErrInvalidData wraps every decode or validation failure
	ErrInvalidData = errors.New("invalid seed data")
)

// Data is the content of a seed file
type Data struct {
	Cards   []models.Card   `yaml:"cards"`
	Clients []models.Client `yaml:"clients"`
}

// Default returns the built-in demo data
func Default() Data {
	return Data{
		Cards:   DefaultCards(),
		Clients: DefaultClients(),
	}
}

// Load reads seed data from path. An empty path returns Default.
// Clients are optional in the file and fall back to the demo list.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML seed data and validates every card
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if len(data.Cards) == 0 {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidData, ErrNoCards)
	}
	for _, c := range data.Cards {
		if err := c.Validate(); err != nil {
			return Data{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
	}
	if len(data.Clients) == 0 {
		data.Clients = DefaultClients()
	}
	return data, nil
}
