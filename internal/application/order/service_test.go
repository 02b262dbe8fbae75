package order

import (
	"context"
	"errors"
	"testing"

	"github.com/matchday-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Append(ctx context.Context, payload domain.OrderPayload) (*domain.StoredOrder, error) {
	args := m.Called(ctx, payload)
	if o, _ := args.Get(0).(*domain.StoredOrder); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) List(ctx context.Context) ([]domain.StoredOrder, error) {
	args := m.Called(ctx)
	if o, _ := args.Get(0).([]domain.StoredOrder); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) OrderPlaced(ctx context.Context, order *domain.StoredOrder) error {
	return m.Called(ctx, order).Error(0)
}

func validPayload() domain.OrderPayload {
	return domain.OrderPayload{
		User:  domain.OrderUser{Email: "buyer@x.com"},
		Items: []domain.CartItem{{ID: "kit-aurora-home", Quantity: 1}},
	}
}

func TestPlace_RejectsEmptyItemsOrEmail(t *testing.T) {
	svc := NewService(nil, nil, false, "")

	_, err := svc.Place(context.Background(), domain.OrderPayload{
		User: domain.OrderUser{Email: "buyer@x.com"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	_, err = svc.Place(context.Background(), domain.OrderPayload{
		Items: []domain.CartItem{{ID: "kit-aurora-home"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestPlace_LocalBackend(t *testing.T) {
	store := &mockOrderStore{}
	store.On("Append", mock.Anything, mock.Anything).Return(&domain.StoredOrder{ID: "ord1"}, nil)

	svc := NewService(store, nil, false, "")
	result, err := svc.Place(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, "ord1", result.Order.ID)
	assert.Equal(t, "local", result.Source)
	assert.Contains(t, result.Message, "Connect Google Sheets")
	assert.Empty(t, result.SheetURL)
}

func TestPlace_SheetsBackend(t *testing.T) {
	store := &mockOrderStore{}
	store.On("Append", mock.Anything, mock.Anything).Return(&domain.StoredOrder{ID: "ord1"}, nil)

	svc := NewService(store, nil, true, "https://docs.google.com/spreadsheets/d/abc/edit")
	result, err := svc.Place(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, "sheets", result.Source)
	assert.Equal(t, "Order synced to Google Sheets.", result.Message)
	assert.NotEmpty(t, result.SheetURL)
}

func TestPlace_NotifierFailureIsNotFatal(t *testing.T) {
	store := &mockOrderStore{}
	notifier := &mockNotifier{}
	store.On("Append", mock.Anything, mock.Anything).Return(&domain.StoredOrder{ID: "ord1"}, nil)
	notifier.On("OrderPlaced", mock.Anything, mock.Anything).Return(errors.New("sns down"))

	svc := NewService(store, notifier, false, "")
	result, err := svc.Place(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, "ord1", result.Order.ID)
	notifier.AssertExpectations(t)
}

func TestList_PassesThrough(t *testing.T) {
	store := &mockOrderStore{}
	store.On("List", mock.Anything).Return([]domain.StoredOrder{{ID: "ord1"}}, nil)

	svc := NewService(store, nil, false, "")
	orders, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord1", orders[0].ID)
}
