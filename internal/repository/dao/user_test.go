package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDAO_Insert(t *testing.T) {
	db := newTestDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user, err := d.Insert(ctx, User{Email: "a@b.co", Password: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UUID)
	assert.Equal(t, "initial", user.Level)

	_, err = d.Insert(ctx, User{Email: "a@b.co", Password: "hash"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserDAO_Find(t *testing.T) {
	db := newTestDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user, err := d.Insert(ctx, User{Email: "a@b.co", Password: "hash", FirstName: "Ana"})
	require.NoError(t, err)

	got, err := d.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, got.UUID)

	got, err = d.FindByUUID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)

	_, err = d.FindByEmail(ctx, "nobody@b.co")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = d.FindByUUID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDAO_Update(t *testing.T) {
	db := newTestDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user, err := d.Insert(ctx, User{Email: "a@b.co", Password: "hash", FirstName: "Ana"})
	require.NoError(t, err)

	got, err := d.Update(ctx, user.UUID, map[string]any{"first_name": "Anna", "phone": "+4912345"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, "+4912345", got.Phone)
	assert.Equal(t, "a@b.co", got.Email)

	_, err = d.Update(ctx, "missing", map[string]any{"first_name": "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
