package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
)

type usersEnvelope struct {
	Users     []domain.StoredUser `json:"users"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// UserStore persists account records in users.json.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json")}
}

// FindByEmail returns the user with this exact email, or nil. Callers
// normalize emails to lowercase before any store call.
func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends a new user. Uniqueness is the caller's pre-check
// responsibility; the store itself does not enforce it.
func (s *UserStore) Create(_ context.Context, payload domain.CreateUserPayload) (*domain.StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := domain.StoredUser{
		ID:        id.New(),
		Email:     payload.Email,
		Password:  payload.Password,
		Name:      payload.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	users = append(users, u)
	if err := s.write(users); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword overwrites the password hash for the user with this
// email and bumps updatedAt.
func (s *UserStore) UpdatePassword(_ context.Context, email, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == email {
			users[i].Password = newHash
			users[i].UpdatedAt = time.Now().UTC()
			return s.write(users)
		}
	}
	return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (s *UserStore) read() ([]domain.StoredUser, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var envelope usersEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Users != nil {
		return envelope.Users, nil
	}
	var bare []domain.StoredUser
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return nil, nil
}

func (s *UserStore) write(users []domain.StoredUser) error {
	if users == nil {
		users = []domain.StoredUser{}
	}
	return writeFile(s.path, usersEnvelope{Users: users, UpdatedAt: time.Now().UTC()})
}
