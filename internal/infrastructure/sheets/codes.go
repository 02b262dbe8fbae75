package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
	"github.com/matchday-api/internal/pkg/otp"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Tab layout: A id, B email, C code, D expiresAt, E createdAt, F verified.
const (
	codesTab       = "VerificationCodes"
	codesDataRange = codesTab + "!A2:F"
)

// CodeStore keeps login verification codes in the VerificationCodes tab.
type CodeStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewCodeStore(svc *sheetsapi.Service, spreadsheetID string) *CodeStore {
	return &CodeStore{svc: svc, spreadsheetID: spreadsheetID}
}

// Create generates a fresh 6-digit code and appends a row for it.
// Earlier rows for the same email are never touched.
func (s *CodeStore) Create(ctx context.Context, email string, ttl time.Duration) (*domain.VerificationCode, error) {
	code, err := otp.NewCode()
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
	row := []interface{}{vc.ID, vc.Email, vc.Code, formatTime(vc.ExpiresAt), formatTime(vc.CreatedAt), boolCell(false)}
	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, codesTab+"!A1", &sheetsapi.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("append verification code row: %w", err)
	}
	return &vc, nil
}

// FindValid scans all rows top to bottom and returns the first
// unverified, unexpired code matching (email, code), or nil.
func (s *CodeStore) FindValid(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, codesDataRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read verification code rows: %w", err)
	}
	now := time.Now()
	for _, row := range resp.Values {
		expiresAt := parseTime(cellString(row, 3))
		if cellString(row, 1) == email &&
			cellString(row, 2) == code &&
			cellString(row, 5) != "true" &&
			expiresAt.After(now) {
			return &domain.VerificationCode{
				ID:        cellString(row, 0),
				Email:     email,
				Code:      code,
				ExpiresAt: expiresAt,
				CreatedAt: parseTime(cellString(row, 4)),
				Verified:  false,
			}, nil
		}
	}
	return nil, nil
}

// MarkVerified locates the row holding this id and flips column F to
// "true". A missing id is a silent no-op.
func (s *CodeStore) MarkVerified(ctx context.Context, codeID string) error {
	return updateStatusColumn(ctx, s.svc, s.spreadsheetID, codesTab, codesDataRange, codeID)
}

// updateStatusColumn finds the row whose first cell equals recordID and
// writes "true" into its column F. Shared by the code and reset stores,
// whose tabs have the same shape.
func updateStatusColumn(ctx context.Context, svc *sheetsapi.Service, spreadsheetID, tab, dataRange, recordID string) error {
	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, dataRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read %s rows: %w", tab, err)
	}
	for i, row := range resp.Values {
		if cellString(row, 0) != recordID {
			continue
		}
		// Data rows start at sheet row 2.
		cell := fmt.Sprintf("%s!F%d", tab, i+2)
		_, err = svc.Spreadsheets.Values.
			Update(spreadsheetID, cell, &sheetsapi.ValueRange{Values: [][]interface{}{{"true"}}}).
			ValueInputOption("RAW").
			Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("update %s status: %w", tab, err)
		}
		return nil
	}
	return nil
}
