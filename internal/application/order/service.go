package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/infrastructure/sns"
)

// PlaceResult is everything the checkout response needs: the stored id
// plus diagnostics about which backend took the order.
type PlaceResult struct {
	Order    *domain.StoredOrder
	Source   string
	Message  string
	SheetURL string
}

type Service interface {
	Place(ctx context.Context, payload domain.OrderPayload) (*PlaceResult, error)
	List(ctx context.Context) ([]domain.StoredOrder, error)
	// Source and SheetURL report which backend is active — diagnostics
	// only, never used for validation branching.
	Source() string
	SheetURL() string
}

type orderStore interface {
	Append(ctx context.Context, payload domain.OrderPayload) (*domain.StoredOrder, error)
	List(ctx context.Context) ([]domain.StoredOrder, error)
}

type service struct {
	store         orderStore
	notifier      sns.OrderNotifier // nil when SNS is not configured
	sheetsEnabled bool
	sheetURL      string
}

func NewService(store orderStore, notifier sns.OrderNotifier, sheetsEnabled bool, sheetURL string) Service {
	return &service{store: store, notifier: notifier, sheetsEnabled: sheetsEnabled, sheetURL: sheetURL}
}

func (s *service) Place(ctx context.Context, payload domain.OrderPayload) (*PlaceResult, error) {
	if len(payload.Items) == 0 || payload.User.Email == "" {
		return nil, fmt.Errorf("invalid order payload: %w", domain.ErrBadRequest)
	}

	stored, err := s.store.Append(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// The order is already durable; a lost notification is only noise.
		if err := s.notifier.OrderPlaced(ctx, stored); err != nil {
			slog.Warn("order notification failed", "order_id", stored.ID, "err", err)
		}
	}

	message := "Order placed successfully. (Connect Google Sheets to auto-sync.)"
	if s.sheetsEnabled {
		message = "Order synced to Google Sheets."
	}
	return &PlaceResult{
		Order:    stored,
		Source:   s.Source(),
		Message:  message,
		SheetURL: s.sheetURL,
	}, nil
}

func (s *service) List(ctx context.Context) ([]domain.StoredOrder, error) {
	return s.store.List(ctx)
}

func (s *service) Source() string {
	if s.sheetsEnabled {
		return "sheets"
	}
	return "local"
}

func (s *service) SheetURL() string { return s.sheetURL }
