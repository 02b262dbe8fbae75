package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
	"github.com/matchday-api/internal/pkg/token"
)

type resetsEnvelope struct {
	Tokens    []domain.PasswordResetToken `json:"tokens"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// ResetStore persists password reset tokens in password-resets.json.
// Structurally parallel to CodeStore, but tokens are looked up by the
// secret alone — a 256-bit token needs no email scoping.
type ResetStore struct {
	mu   sync.Mutex
	path string
}

func NewResetStore(dataDir string) *ResetStore {
	return &ResetStore{path: filepath.Join(dataDir, "password-resets.json")}
}

// Create generates a fresh reset token for email and appends it.
func (s *ResetStore) Create(_ context.Context, email string, ttl time.Duration) (*domain.PasswordResetToken, error) {
	secret, err := token.NewResetToken()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rt := domain.PasswordResetToken{
		ID:        id.New(),
		Email:     email,
		Token:     secret,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		Used:      false,
	}
	tokens = append(tokens, rt)
	if err := s.write(tokens); err != nil {
		return nil, err
	}
	return &rt, nil
}

// FindValid returns the first unused, unexpired record holding this
// token in insertion order, or nil.
func (s *ResetStore) FindValid(_ context.Context, secret string) (*domain.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range tokens {
		t := &tokens[i]
		if t.Token == secret && !t.Used && t.ExpiresAt.After(now) {
			return t, nil
		}
	}
	return nil, nil
}

// MarkUsed flags the token with the given id as consumed. Unknown ids
// are a silent no-op.
func (s *ResetStore) MarkUsed(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return err
	}
	for i := range tokens {
		if tokens[i].ID == tokenID {
			tokens[i].Used = true
			break
		}
	}
	return s.write(tokens)
}

func (s *ResetStore) read() ([]domain.PasswordResetToken, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var envelope resetsEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Tokens != nil {
		return envelope.Tokens, nil
	}
	var bare []domain.PasswordResetToken
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return nil, nil
}

func (s *ResetStore) write(tokens []domain.PasswordResetToken) error {
	if tokens == nil {
		tokens = []domain.PasswordResetToken{}
	}
	return writeFile(s.path, resetsEnvelope{Tokens: tokens, UpdatedAt: time.Now().UTC()})
}
