package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceapp/events-api/internal/domain"
)

func TestFavouriteDAO_InsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	d := NewFavouriteDAO(db)
	ctx := context.Background()

	event := seedEvent(t, db, Event{Title: "x", Type: "social", Date: day(2030, 1, 1)})

	first, err := d.Insert(ctx, "user-1", event.UUID)
	require.NoError(t, err)
	second, err := d.Insert(ctx, "user-1", event.UUID)
	require.NoError(t, err)

	assert.Equal(t, first.UUID, second.UUID)

	var count int64
	require.NoError(t, db.Model(&FavouriteEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavouriteDAO_UniqueIndex(t *testing.T) {
	db := newTestDB(t)

	event := seedEvent(t, db, Event{Title: "x", Type: "social", Date: day(2030, 1, 1)})
	require.NoError(t, db.Omit("Event").Create(&FavouriteEvent{UUID: "f1", UserUUID: "u", EventUUID: event.UUID}).Error)

	err := db.Omit("Event").Create(&FavouriteEvent{UUID: "f2", UserUUID: "u", EventUUID: event.UUID}).Error
	assert.True(t, isUniqueViolation(err, "uni_favourite_user_event"))
}

func TestFavouriteDAO_FindByUser(t *testing.T) {
	db := newTestDB(t)
	d := NewFavouriteDAO(db)
	ctx := context.Background()

	past := seedEvent(t, db, Event{Title: "Past Social", Type: "social", City: "lahore", Date: day(2020, 1, 1)})
	future := seedEvent(t, db, Event{Title: "Future Concert", Type: "concert", City: "karachi", Date: day(2030, 1, 1)})

	_, err := d.Insert(ctx, "me", past.UUID)
	require.NoError(t, err)
	_, err = d.Insert(ctx, "me", future.UUID)
	require.NoError(t, err)
	_, err = d.Insert(ctx, "someone-else", future.UUID)
	require.NoError(t, err)

	favs, err := d.FindByUser(ctx, "me", nil)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	for _, f := range favs {
		assert.Equal(t, "me", f.UserUUID)
		assert.Equal(t, f.EventUUID, f.Event.UUID)
	}

	favs, err = d.FindByUser(ctx, "me", []Predicate{
		{Field: domain.FieldType, Op: domain.OpMemberOf, Value: []string{"concert"}},
	})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, future.UUID, favs[0].EventUUID)
	assert.Equal(t, "Future Concert", favs[0].Event.Title)

	favs, err = d.FindByUser(ctx, "me", []Predicate{
		{Field: domain.FieldDate, Op: domain.OpEquals, Value: day(2020, 1, 1)},
	})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, past.UUID, favs[0].EventUUID)
}

func TestFavouriteDAO_DeleteForUser(t *testing.T) {
	db := newTestDB(t)
	d := NewFavouriteDAO(db)
	ctx := context.Background()

	event := seedEvent(t, db, Event{Title: "x", Type: "social", Date: day(2030, 1, 1)})
	fav, err := d.Insert(ctx, "owner", event.UUID)
	require.NoError(t, err)

	t.Run("unknown id leaves storage untouched", func(t *testing.T) {
		err := d.DeleteForUser(ctx, "missing", "owner")
		assert.ErrorIs(t, err, ErrFavouriteNotFound)

		var count int64
		require.NoError(t, db.Model(&FavouriteEvent{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("another user cannot remove it", func(t *testing.T) {
		err := d.DeleteForUser(ctx, fav.UUID, "intruder")
		assert.ErrorIs(t, err, ErrFavouriteNotFound)
	})

	t.Run("owner removes it", func(t *testing.T) {
		require.NoError(t, d.DeleteForUser(ctx, fav.UUID, "owner"))

		var count int64
		require.NoError(t, db.Model(&FavouriteEvent{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}
