package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/pipeline"
	"github.com/thenoetrevino/bidboard/internal/seed"
	clientservice "github.com/thenoetrevino/bidboard/internal/services/client"
	rfpservice "github.com/thenoetrevino/bidboard/internal/services/rfp"
	"github.com/thenoetrevino/bidboard/internal/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	// Drag-and-drop core: registry, geometry and drag session
	Board *pipeline.Board

	// Event system for history and live updates
	Bus *events.Bus

	// Service layer (business logic)
	RFPService    rfpservice.Service
	ClientService clientservice.Service

	unsubscribe []func()
}

// New creates a new App from seed data with all services initialized.
// Every committed move on the board is recorded on the bus.
func New(data seed.Data, opts ...Option) (*App, error) {
	cfg := appConfig{
		historyLimit: events.DefaultHistoryLimit,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	board, err := pipeline.NewBoard(data.Cards)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	bus := events.NewBus(cfg.historyLimit)
	bus.SetActor(user.Resolve(cfg.actor))
	bus.Track(data.Cards...)
	board.OnCardMove(bus)

	rfps := rfpservice.NewService(board, bus)
	a := &App{
		Board:         board,
		Bus:           bus,
		RFPService:    rfps,
		ClientService: clientservice.NewService(data.Clients, rfps, bus),
	}

	logger := cfg.logger
	a.unsubscribe = append(a.unsubscribe, bus.Subscribe(func(e events.Event) {
		logger.Debug("event", "type", e.Type, "card_id", e.CardID,
			"client_id", e.ClientID, "sequence_id", e.SequenceID)
	}))

	logger.Info("app initialized", "cards", board.Registry().Len(), "clients", len(data.Clients))
	return a, nil
}

// Subscribe registers h on the event bus until Close
func (a *App) Subscribe(h events.Handler) {
	a.unsubscribe = append(a.unsubscribe, a.Bus.Subscribe(h))
}

// Close detaches every subscription made through the App and ends any drag
func (a *App) Close() error {
	for _, unsub := range a.unsubscribe {
		unsub()
	}
	a.unsubscribe = nil
	a.Board.EndDrag()
	return nil
}
