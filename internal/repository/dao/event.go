package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type Event struct {
	UUID             string    `gorm:"primaryKey;size:36"`
	Title            string    `gorm:"not null"`
	Type             string    `gorm:"size:20;not null;index"`
	Style            string    `gorm:"index"`
	Date             time.Time `gorm:"type:date;not null;index"`
	City             string    `gorm:"index"`
	Province         string
	Address          string
	Description      string
	Latitude         float64
	Longitude        float64
	TotalTickets     int `gorm:"not null;default:0"`
	Organizer        string
	OrganizerDetails string
	Images           []EventImage `gorm:"foreignKey:EventUUID;references:UUID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EventImage struct {
	UUID      string `gorm:"primaryKey;size:36"`
	EventUUID string `gorm:"size:36;not null;index"`
	ImageURL  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Ticket struct {
	UUID      string `gorm:"primaryKey;size:36"`
	EventUUID string `gorm:"size:36;not null;index"`
	UserUUID  string `gorm:"size:36;not null;index"`
	CreatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	event.UUID = uuid.NewString()
	for i := range event.Images {
		event.Images[i].UUID = uuid.NewString()
	}

	if err := d.db.WithContext(ctx).Create(&event).Error; err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByUUID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "uuid = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindType loads only the type column of an event.
func (d *EventDAO) FindType(ctx context.Context, id string) (string, error) {
	var event Event

	result := d.db.WithContext(ctx).Select("uuid", "type").First(&event, "uuid = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrEventNotFound
		}

		return "", result.Error
	}

	return event.Type, nil
}

// FindAll returns the events matching every predicate, with their images in upload order.
func (d *EventDAO) FindAll(ctx context.Context, preds []Predicate) ([]Event, error) {
	tx, err := applyPredicates(d.db.WithContext(ctx).Model(&Event{}), "events", preds)
	if err != nil {
		return nil, err
	}

	var events []Event
	result := tx.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_images.created_at ASC")
		}).
		Order("events.date ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// FirstImages returns the earliest uploaded image of each given event, keyed by event uuid.
func (d *EventDAO) FirstImages(ctx context.Context, eventIDs []string) (map[string]EventImage, error) {
	firsts := make(map[string]EventImage, len(eventIDs))
	if len(eventIDs) == 0 {
		return firsts, nil
	}

	var images []EventImage
	result := d.db.WithContext(ctx).
		Where("event_uuid IN ?", eventIDs).
		Order("created_at ASC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, img := range images {
		if _, ok := firsts[img.EventUUID]; !ok {
			firsts[img.EventUUID] = img
		}
	}

	return firsts, nil
}

func (d *EventDAO) CountTickets(ctx context.Context, eventID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).Where("event_uuid = ?", eventID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
