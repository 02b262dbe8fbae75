package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/matchday-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ReturnsCopyOfSeed(t *testing.T) {
	svc := NewService(nil)

	products := svc.List(context.Background())
	require.NotEmpty(t, products)

	products[0].Name = "mutated"
	again := svc.List(context.Background())
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestGet_KnownAndUnknown(t *testing.T) {
	svc := NewService(nil)

	seed := svc.List(context.Background())
	p, err := svc.Get(context.Background(), seed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seed[0].ID, p.ID)

	_, err = svc.Get(context.Background(), "no-such-kit")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestImages_NotConfigured(t *testing.T) {
	svc := NewService(nil)
	seed := svc.List(context.Background())

	_, _, err := svc.GetImage(context.Background(), seed[0].ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = svc.UploadImage(context.Background(), seed[0].ID, nil, "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}
