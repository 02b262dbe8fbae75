package filestore

import (
	"context"
	"errors"
	"testing"

	"github.com/matchday-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_FindByEmail_MissingReturnsNil(t *testing.T) {
	s := NewUserStore(t.TempDir())

	u, err := s.FindByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserStore_CreateAndFind(t *testing.T) {
	s := NewUserStore(t.TempDir())
	ctx := context.Background()

	name := "Ada"
	created, err := s.Create(ctx, domain.CreateUserPayload{
		Email:    "a@b.com",
		Password: "hash",
		Name:     &name,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := s.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Name)
	assert.Equal(t, "Ada", *found.Name)
}

func TestUserStore_UpdatePassword(t *testing.T) {
	s := NewUserStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Create(ctx, domain.CreateUserPayload{Email: "a@b.com", Password: "old"})
	require.NoError(t, err)

	require.NoError(t, s.UpdatePassword(ctx, "a@b.com", "new"))

	found, err := s.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "new", found.Password)
}

func TestUserStore_UpdatePassword_UnknownEmail(t *testing.T) {
	s := NewUserStore(t.TempDir())

	err := s.UpdatePassword(context.Background(), "nobody@x.com", "new")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
