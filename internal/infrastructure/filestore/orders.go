package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
)

type ordersEnvelope struct {
	Orders    []domain.StoredOrder `json:"orders"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// OrderStore is the append-only checkout ledger in orders.json.
type OrderStore struct {
	mu   sync.Mutex
	path string
}

func NewOrderStore(dataDir string) *OrderStore {
	return &OrderStore{path: filepath.Join(dataDir, "orders.json")}
}

// Append assigns a fresh id to the payload and persists it.
func (s *OrderStore) Append(_ context.Context, payload domain.OrderPayload) (*domain.StoredOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.read()
	if err != nil {
		return nil, err
	}
	stored := domain.StoredOrder{ID: id.New(), OrderPayload: payload}
	orders = append(orders, stored)
	if err := s.write(orders); err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns every stored order in insertion order. No pagination.
func (s *OrderStore) List(_ context.Context) ([]domain.StoredOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *OrderStore) read() ([]domain.StoredOrder, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []domain.StoredOrder{}, nil
	}
	var envelope ordersEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Orders != nil {
		return envelope.Orders, nil
	}
	var bare []domain.StoredOrder
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return []domain.StoredOrder{}, nil
}

func (s *OrderStore) write(orders []domain.StoredOrder) error {
	if orders == nil {
		orders = []domain.StoredOrder{}
	}
	return writeFile(s.path, ordersEnvelope{Orders: orders, UpdatedAt: time.Now().UTC()})
}
