package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFavouriteNotFound = errors.New("favourite not found")
)

type FavouriteEvent struct {
	UUID      string `gorm:"primaryKey;size:36"`
	UserUUID  string `gorm:"size:36;not null;uniqueIndex:uni_favourite_user_event"`
	EventUUID string `gorm:"size:36;not null;uniqueIndex:uni_favourite_user_event"`
	Event     Event  `gorm:"foreignKey:EventUUID;references:UUID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FavouriteDAO struct {
	db *gorm.DB
}

func NewFavouriteDAO(db *gorm.DB) *FavouriteDAO {
	return &FavouriteDAO{
		db: db,
	}
}

// Insert saves a favourite. A (user, event) pair is stored once: inserting it
// again returns the existing row.
func (d *FavouriteDAO) Insert(ctx context.Context, userID, eventID string) (FavouriteEvent, error) {
	existing, err := d.findByPair(ctx, userID, eventID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrFavouriteNotFound) {
		return FavouriteEvent{}, err
	}

	fav := FavouriteEvent{
		UUID:      uuid.NewString(),
		UserUUID:  userID,
		EventUUID: eventID,
	}

	result := d.db.WithContext(ctx).Omit("Event").Create(&fav)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_favourite_user_event") {
			// Lost a race with a concurrent insert of the same pair.
			return d.findByPair(ctx, userID, eventID)
		}

		return FavouriteEvent{}, result.Error
	}

	return fav, nil
}

func (d *FavouriteDAO) findByPair(ctx context.Context, userID, eventID string) (FavouriteEvent, error) {
	var fav FavouriteEvent

	result := d.db.WithContext(ctx).First(&fav, "user_uuid = ? AND event_uuid = ?", userID, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return FavouriteEvent{}, ErrFavouriteNotFound
		}

		return FavouriteEvent{}, result.Error
	}

	return fav, nil
}

// FindByUser returns the user's favourites whose event matches every predicate,
// with the event preloaded and its images left empty.
func (d *FavouriteDAO) FindByUser(ctx context.Context, userID string, preds []Predicate) ([]FavouriteEvent, error) {
	tx := d.db.WithContext(ctx).
		Model(&FavouriteEvent{}).
		Joins("JOIN events ON events.uuid = favourite_events.event_uuid").
		Where("favourite_events.user_uuid = ?", userID)

	tx, err := applyPredicates(tx, "events", preds)
	if err != nil {
		return nil, err
	}

	var favs []FavouriteEvent
	result := tx.Preload("Event").Order("favourite_events.created_at DESC").Find(&favs)
	if result.Error != nil {
		return nil, result.Error
	}

	return favs, nil
}

// DeleteForUser removes a favourite owned by userID.
func (d *FavouriteDAO) DeleteForUser(ctx context.Context, id, userID string) error {
	result := d.db.WithContext(ctx).Where("uuid = ? AND user_uuid = ?", id, userID).Delete(&FavouriteEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavouriteNotFound
	}

	return nil
}
