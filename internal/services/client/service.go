package client

import (
	"fmt"
	"net/mail"
	"slices"
	"strconv"
	"strings"

	"github.com/thenoetrevino/bidboard/internal/events"
	"github.com/thenoetrevino/bidboard/internal/models"
)

// Service defines all client-related business operations
type Service interface {
	List() []models.Client
	Get(id string) (models.Client, error)
	Create(req CreateClientRequest) (models.Client, error)
	Update(req UpdateClientRequest) (models.Client, error)
	Delete(id string) error

	// RFPCount returns how many cards name this client
	RFPCount(name string) int
}

// CardLister is the part of the rfp service the client service reads from
type CardLister interface {
	ListCards() []models.Card
}

// CreateClientRequest encapsulates all data needed to create a client
type CreateClientRequest struct {
	Name          string
	ContactPerson string
	Email         string
}

// UpdateClientRequest encapsulates all data needed to update a client
// Fields with pointers are optional - nil means don't update
type UpdateClientRequest struct {
	ID            string
	Name          *string
	ContactPerson *string
	Email         *string
}

type service struct {
	clients     []models.Client
	cards       CardLister
	eventClient events.EventPublisher
}

// NewService creates a new client service seeded with clients
func NewService(seed []models.Client, cards CardLister, eventClient events.EventPublisher) Service {
	return &service{
		clients:     slices.Clone(seed),
		cards:       cards,
		eventClient: eventClient,
	}
}

func (s *service) List() []models.Client {
	return slices.Clone(s.clients)
}

func (s *service) Get(id string) (models.Client, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Client{}, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	return s.clients[i], nil
}

func (s *service) Create(req CreateClientRequest) (models.Client, error) {
	c := models.Client{
		ID:            s.nextID(),
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.TrimSpace(req.Email),
	}
	if err := s.validate(c); err != nil {
		return models.Client{}, err
	}

	s.clients = append(s.clients, c)
	s.publish(c.ID, "Client "+c.Name+" added")
	return c, nil
}

func (s *service) Update(req UpdateClientRequest) (models.Client, error) {
	i := s.indexOf(req.ID)
	if i < 0 {
		return models.Client{}, fmt.Errorf("%w: %s", ErrClientNotFound, req.ID)
	}

	c := s.clients[i]
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.ContactPerson != nil {
		c.ContactPerson = strings.TrimSpace(*req.ContactPerson)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if err := s.validate(c); err != nil {
		return models.Client{}, err
	}

	s.clients[i] = c
	s.publish(c.ID, "Client "+c.Name+" updated")
	return c, nil
}

func (s *service) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	name := s.clients[i].Name
	s.clients = slices.Delete(s.clients, i, i+1)
	s.publish(id, "Client "+name+" deleted")
	return nil
}

func (s *service) RFPCount(name string) int {
	if s.cards == nil {
		return 0
	}
	n := 0
	for _, card := range s.cards.ListCards() {
		if card.Client == name {
			n++
		}
	}
	return n
}

// validate checks required fields, email syntax and name uniqueness
func (s *service) validate(c models.Client) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.ContactPerson == "" {
		return ErrEmptyContactPerson
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	for _, other := range s.clients {
		if other.ID != c.ID && strings.EqualFold(other.Name, c.Name) {
			return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
		}
	}
	return nil
}

// ValidateEmail accepts a bare address such as jane@example.com
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func (s *service) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.clients, func(c models.Client) bool { return c.ID == id })
}

// nextID returns CLInnn with nnn one above the highest numeric suffix in use
func (s *service) nextID() string {
	highest := 0
	for _, c := range s.clients {
		suffix, ok := strings.CutPrefix(c.ID, "CLI")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("CLI%03d", highest+1)
}

func (s *service) publish(clientID, message string) {
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventClientChanged,
		ClientID: clientID,
		Message:  message,
	})
}
