package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
	"github.com/matchday-api/internal/pkg/token"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Tab layout: A id, B email, C token, D expiresAt, E createdAt, F used.
const (
	resetsTab       = "PasswordResets"
	resetsDataRange = resetsTab + "!A2:F"
)

// ResetStore keeps password reset tokens in the PasswordResets tab.
type ResetStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewResetStore(svc *sheetsapi.Service, spreadsheetID string) *ResetStore {
	return &ResetStore{svc: svc, spreadsheetID: spreadsheetID}
}

// Create generates a fresh reset token and appends a row for it.
func (s *ResetStore) Create(ctx context.Context, email string, ttl time.Duration) (*domain.PasswordResetToken, error) {
	secret, err := token.NewResetToken()
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
	row := []interface{}{rt.ID, rt.Email, rt.Token, formatTime(rt.ExpiresAt), formatTime(rt.CreatedAt), boolCell(false)}
	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, resetsTab+"!A1", &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("append reset token row: %w", err)
	}
	return &rt, nil
}

// FindValid scans all rows top to bottom and returns the first unused,
// unexpired record holding this token. The token alone is the key.
func (s *ResetStore) FindValid(ctx context.Context, secret string) (*domain.PasswordResetToken, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, resetsDataRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read reset token rows: %w", err)
	}
	now := time.Now()
	for _, row := range resp.Values {
		expiresAt := parseTime(cellString(row, 3))
		if cellString(row, 2) == secret &&
			cellString(row, 5) != "true" &&
			expiresAt.After(now) {
			return &domain.PasswordResetToken{
				ID:        cellString(row, 0),
				Email:     cellString(row, 1),
				Token:     secret,
				ExpiresAt: expiresAt,
				CreatedAt: parseTime(cellString(row, 4)),
				Used:      false,
			}, nil
		}
	}
	return nil, nil
}

// MarkUsed locates the row holding this id and flips column F to "true".
// A missing id is a silent no-op.
func (s *ResetStore) MarkUsed(ctx context.Context, tokenID string) error {
	return updateStatusColumn(ctx, s.svc, s.spreadsheetID, resetsTab, resetsDataRange, tokenID)
}
