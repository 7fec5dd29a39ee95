package dao

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedEvent(t *testing.T, db *gorm.DB, e Event) Event {
	t.Helper()

	created, err := NewEventDAO(db).Insert(context.Background(), e)
	require.NoError(t, err)
	return created
}

func seedImage(t *testing.T, db *gorm.DB, eventID, url string, at time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&EventImage{
		UUID:      uuid.NewString(),
		EventUUID: eventID,
		ImageURL:  url,
		CreatedAt: at,
	}).Error)
}

func seedTickets(t *testing.T, db *gorm.DB, eventID string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&Ticket{
			UUID:      uuid.NewString(),
			EventUUID: eventID,
			UserUUID:  uuid.NewString(),
		}).Error)
	}
}
