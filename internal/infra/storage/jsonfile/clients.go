package jsonfile

import (
	"context"
	"strings"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
)

// ClientStore is the client-collection view of the JSON store.
type ClientStore struct {
	s *Store
}

// Create appends a new client, enforcing the unique-email invariant.
func (cs *ClientStore) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	for _, rec := range cs.s.data.Clients {
		if strings.EqualFold(rec.Email, c.Email) {
			return nil, clientRepo.ErrDuplicateEmail
		}
	}

	now := time.Now()
	c.ID = cs.s.nextID("clients")
	c.CreatedAt = now
	c.UpdatedAt = now

	cs.s.data.Clients = append(cs.s.data.Clients, clientToRecord(c))
	if err := cs.s.saveLocked(); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID fetches a client by id.
func (cs *ClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	for i := range cs.s.data.Clients {
		if cs.s.data.Clients[i].ID == id {
			return clientFromRecord(&cs.s.data.Clients[i]), nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

// List returns clients ordered by name, optionally filtered by a
// case-insensitive name/email substring.
func (cs *ClientStore) List(ctx context.Context, q string) ([]*domain.Client, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	needle := strings.ToLower(q)
	clients := make([]*domain.Client, 0)
	for i := range cs.s.data.Clients {
		rec := &cs.s.data.Clients[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.FullName), needle) &&
			!strings.Contains(strings.ToLower(rec.Email), needle) {
			continue
		}
		clients = append(clients, clientFromRecord(rec))
	}
	sortClientsByName(clients)
	return clients, nil
}

// Update overwrites the mutable fields of a client.
func (cs *ClientStore) Update(ctx context.Context, c *domain.Client) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	for i := range cs.s.data.Clients {
		rec := &cs.s.data.Clients[i]
		if rec.ID != c.ID && strings.EqualFold(rec.Email, c.Email) {
			return clientRepo.ErrDuplicateEmail
		}
	}

	for i := range cs.s.data.Clients {
		if cs.s.data.Clients[i].ID == c.ID {
			c.UpdatedAt = time.Now()
			updated := clientToRecord(c)
			updated.CreatedAt = cs.s.data.Clients[i].CreatedAt
			cs.s.data.Clients[i] = updated
			return cs.s.saveLocked()
		}
	}
	return clientRepo.ErrClientNotFound
}

// Delete removes a client.
func (cs *ClientStore) Delete(ctx context.Context, id int64) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	for i := range cs.s.data.Clients {
		if cs.s.data.Clients[i].ID == id {
			cs.s.data.Clients = append(cs.s.data.Clients[:i], cs.s.data.Clients[i+1:]...)
			return cs.s.saveLocked()
		}
	}
	return clientRepo.ErrClientNotFound
}

// Count returns the total number of clients.
func (cs *ClientStore) Count(ctx context.Context) (int64, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()
	return int64(len(cs.s.data.Clients)), nil
}

func clientToRecord(c *domain.Client) clientRecord {
	return clientRecord{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Age:       c.Age,
		Notes:     c.Notes,
		CreatedAt: formatTimestamp(c.CreatedAt),
		UpdatedAt: formatTimestamp(c.UpdatedAt),
	}
}

func clientFromRecord(rec *clientRecord) *domain.Client {
	return &domain.Client{
		ID:        rec.ID,
		FullName:  rec.FullName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Age:       rec.Age,
		Notes:     rec.Notes,
		CreatedAt: parseTimestamp(rec.CreatedAt),
		UpdatedAt: parseTimestamp(rec.UpdatedAt),
	}
}
