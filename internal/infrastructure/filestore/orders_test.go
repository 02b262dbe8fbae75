package filestore

import (
	"context"
	"testing"

	"github.com/matchday-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload(email string) domain.OrderPayload {
	return domain.OrderPayload{
		User: domain.OrderUser{Email: email},
		Items: []domain.CartItem{
			{ID: "kit-aurora-home", Name: "Aurora FC Home", Price: 89.99, Quantity: 1, Size: "M"},
		},
		Totals:   domain.OrderTotals{Subtotal: 89.99, Total: 94.99, Shipping: 5},
		PlacedAt: "2026-09-01T10:00:00Z",
	}
}

func TestOrderStore_AppendAssignsID(t *testing.T) {
	s := NewOrderStore(t.TempDir())

	stored, err := s.Append(context.Background(), testPayload("a@b.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "a@b.com", stored.User.Email)
}

func TestOrderStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewOrderStore(t.TempDir())
	ctx := context.Background()

	first, err := s.Append(ctx, testPayload("first@b.com"))
	require.NoError(t, err)
	second, err := s.Append(ctx, testPayload("second@b.com"))
	require.NoError(t, err)

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestOrderStore_EmptyListIsNotNil(t *testing.T) {
	s := NewOrderStore(t.TempDir())

	orders, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
