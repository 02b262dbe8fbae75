package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
	"github.com/matchday-api/internal/pkg/otp"
)

type codesEnvelope struct {
	Codes     []domain.VerificationCode `json:"codes"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// CodeStore persists login verification codes in verification-codes.json.
type CodeStore struct {
	mu   sync.Mutex
	path string
}

func NewCodeStore(dataDir string) *CodeStore {
	return &CodeStore{path: filepath.Join(dataDir, "verification-codes.json")}
}

// Create generates a fresh 6-digit code for email and appends it.
// Outstanding codes for the same email are left untouched.
func (s *CodeStore) Create(_ context.Context, email string, ttl time.Duration) (*domain.VerificationCode, error) {
	code, err := otp.NewCode()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	vc := domain.VerificationCode{
		ID:        id.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		Verified:  false,
	}
	codes = append(codes, vc)
	if err := s.write(codes); err != nil {
		return nil, err
	}
	return &vc, nil
}

// FindValid returns the first unverified, unexpired code matching
// (email, code) in insertion order, or nil when there is no match.
func (s *CodeStore) FindValid(_ context.Context, email, code string) (*domain.VerificationCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range codes {
		c := &codes[i]
		if c.Email == email && c.Code == code && !c.Verified && c.ExpiresAt.After(now) {
			return c, nil
		}
	}
	return nil, nil
}

// MarkVerified flags the code with the given id as consumed. Unknown ids
// are a silent no-op, which also makes the call idempotent.
func (s *CodeStore) MarkVerified(_ context.Context, codeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.read()
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].ID == codeID {
			codes[i].Verified = true
			break
		}
	}
	return s.write(codes)
}

func (s *CodeStore) read() ([]domain.VerificationCode, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var envelope codesEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Codes != nil {
		return envelope.Codes, nil
	}
	// Older files held a bare array.
	var bare []domain.VerificationCode
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return nil, nil
}

func (s *CodeStore) write(codes []domain.VerificationCode) error {
	if codes == nil {
		codes = []domain.VerificationCode{}
	}
	return writeFile(s.path, codesEnvelope{Codes: codes, UpdatedAt: time.Now().UTC()})
}
