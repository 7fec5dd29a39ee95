package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Pass struct {
	UUID        string `gorm:"primaryKey;size:36"`
	EventUUID   string `gorm:"size:36;not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null;default:0"`
	Quantity    int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Room struct {
	UUID      string `gorm:"primaryKey;size:36"`
	EventUUID string `gorm:"size:36;not null;index"`
	Name      string `gorm:"not null"`
	Capacity  int
	Price     float64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Food is the meal plan offered for a congress. One per event.
type Food struct {
	UUID        string `gorm:"primaryKey;size:36"`
	EventUUID   string `gorm:"size:36;not null;uniqueIndex"`
	Description string
	Price       float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Food is not a countable noun for GORM's pluralizer.
func (Food) TableName() string {
	return "foods"
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

// FindPass returns the first pass of an event, or nil when it has none.
func (d *BookingDAO) FindPass(ctx context.Context, eventID string) (*Pass, error) {
	var pass Pass

	result := d.db.WithContext(ctx).Where("event_uuid = ?", eventID).Order("created_at ASC").First(&pass)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &pass, nil
}

func (d *BookingDAO) FindPasses(ctx context.Context, eventID string) ([]Pass, error) {
	var passes []Pass

	result := d.db.WithContext(ctx).Where("event_uuid = ?", eventID).Order("created_at ASC").Find(&passes)
	if result.Error != nil {
		return nil, result.Error
	}

	return passes, nil
}

func (d *BookingDAO) FindRooms(ctx context.Context, eventID string) ([]Room, error) {
	var rooms []Room

	result := d.db.WithContext(ctx).Where("event_uuid = ?", eventID).Order("created_at ASC").Find(&rooms)
	if result.Error != nil {
		return nil, result.Error
	}

	return rooms, nil
}

// FindFood returns the meal plan of an event, or nil when it has none.
func (d *BookingDAO) FindFood(ctx context.Context, eventID string) (*Food, error) {
	var food Food

	result := d.db.WithContext(ctx).Where("event_uuid = ?", eventID).First(&food)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &food, nil
}
